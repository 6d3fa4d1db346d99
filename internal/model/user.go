package model

import "time"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex:idx_user_email"`
	Password  string `gorm:"type:varchar(255)"`
	Role      string `gorm:"type:varchar(30);default:EDITOR"`
	IsDeleted bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
