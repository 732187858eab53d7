package models

import "time"

// WeightEntry is one measurement per user per calendar day. The composite
// unique index enforces the one-entry-per-day invariant at the database level.
type WeightEntry struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_weight_user_day"`
	MeasuredAt time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weight_user_day"`
	WeightKg   float64   `gorm:"not null"`
	Notes      string
	CreatedAt  time.Time
}

const (
	MinWeightKg = 30.0
	MaxWeightKg = 300.0
)
