package model

import "time"

// Fatwa statuses. Website submissions start pending and only become
// visible once a scholar answers them.
const (
	FatwaStatusPending  int8 = 0
	FatwaStatusAnswered int8 = 1
)

type Fatwa struct {
	ID        uint64  `gorm:"primaryKey"`
	Title     string  `gorm:"type:varchar(255);not null"`
	Slug      string  `gorm:"type:varchar(255);index"`
	Question  string  `gorm:"type:longtext"`
	Answer    string  `gorm:"type:longtext"`
	ScholarID *uint64 `gorm:"index"`
	Status    int8    `gorm:"type:tinyint;not null;default:0"`
	Likes     int64   `gorm:"not null;default:0"`
	Views     int64   `gorm:"not null;default:0"`
	IsDeleted bool    `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Scholar *Scholar `gorm:"foreignKey:ScholarID;references:ID"`
}

func (Fatwa) TableName() string {
	return "fatwas"
}
