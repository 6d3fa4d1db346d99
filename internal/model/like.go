package model

import "time"

// Like is one anonymous like event. The composite primary key is the
// only idempotence mechanism: a second insert for the same visitor
// fails with a duplicate-key error and is treated as a no-op.
type Like struct {
	TargetKind string `gorm:"type:varchar(16);primaryKey"`
	TargetID   uint64 `gorm:"primaryKey"`
	AnonHash   string `gorm:"type:char(64);primaryKey"`
	CreatedAt  time.Time
}

func (Like) TableName() string {
	return "likes"
}
