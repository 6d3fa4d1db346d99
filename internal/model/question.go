package model

import "time"

// Question is a reader-submitted question awaiting an answer.
type Question struct {
	ID         uint64     `gorm:"primaryKey"`
	Name       string     `gorm:"type:varchar(255)"`
	Email      string     `gorm:"type:varchar(255)"`
	Text       string     `gorm:"type:longtext;not null"`
	Answer     *string    `gorm:"type:longtext"`
	AnsweredAt *time.Time `gorm:""`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Question) TableName() string {
	return "questions"
}
