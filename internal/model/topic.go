package model

import "time"

type Topic struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	IsDeleted   bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Topic) TableName() string {
	return "topics"
}
