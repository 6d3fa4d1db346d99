package model

import "time"

type Article struct {
	ID        uint64  `gorm:"primaryKey"`
	Title     string  `gorm:"type:varchar(255);not null"`
	Slug      string  `gorm:"type:varchar(255);uniqueIndex:idx_article_slug"`
	Content   string  `gorm:"type:longtext"`
	WriterID  *uint64 `gorm:"index"`
	CoverKey  string  `gorm:"type:varchar(255)"`
	ThumbKey  string  `gorm:"type:varchar(255)"`
	Likes     int64   `gorm:"not null;default:0"`
	Views     int64   `gorm:"not null;default:0"`
	IsDeleted bool    `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Writer *Writer `gorm:"foreignKey:WriterID;references:ID"`
}

func (Article) TableName() string {
	return "articles"
}
