package model

import "time"

// View is one counted anonymous view. The unique index dedupes views
// per visitor per UTC calendar day; view_date is stored as the day
// string so the index never depends on connection time zones.
type View struct {
	ID         uint64 `gorm:"primaryKey"`
	TargetKind string `gorm:"type:varchar(16);uniqueIndex:uq_view_once,priority:1"`
	TargetID   uint64 `gorm:"uniqueIndex:uq_view_once,priority:2"`
	AnonHash   string `gorm:"type:char(64);uniqueIndex:uq_view_once,priority:3"`
	ViewDate   string `gorm:"type:char(10);uniqueIndex:uq_view_once,priority:4"`
	CreatedAt  time.Time
}

func (View) TableName() string {
	return "views"
}
