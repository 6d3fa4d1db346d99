package model

import "time"

type Scholar struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Bio         string `gorm:"type:text"`
	PortraitKey string `gorm:"type:varchar(255)"`
	IsDeleted   bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Scholar) TableName() string {
	return "scholars"
}
