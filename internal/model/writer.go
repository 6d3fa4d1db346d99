package model

import "time"

// Writer rows are removed physically on delete, so there is no
// is_deleted column here.
type Writer struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Bio       string `gorm:"type:text"`
	PhotoKey  string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Writer) TableName() string {
	return "writers"
}
