package model

import "time"

// QnaRecord is an entry in the imported question/answer archive.
type QnaRecord struct {
	ID        uint64 `gorm:"primaryKey"`
	Question  string `gorm:"type:longtext;not null"`
	Answer    string `gorm:"type:longtext"`
	Source    string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (QnaRecord) TableName() string {
	return "qna_records"
}
