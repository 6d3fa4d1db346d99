package model

import "time"

type Book struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Author      string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	CoverKey    string `gorm:"type:varchar(255)"`
	PdfKey      string `gorm:"type:varchar(255)"`
	IsDeleted   bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Book) TableName() string {
	return "books"
}
