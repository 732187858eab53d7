package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	AwarenessGaining     = "gaining"
	AwarenessMaintaining = "maintaining"
	AwarenessLosing      = "losing"
	AwarenessUnknown     = "unknown"
)

const (
	HighestLevel = 1
	LowestLevel  = 5
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	Gender   string `gorm:"not null;default:''"`
	HeightCm int
	Age      int

	CurrentWeightKg  *float64
	GoalWeightKg     *float64
	StartingWeightKg *float64

	CurrentLevel   int `gorm:"not null;default:1"`
	LevelChangedAt *time.Time

	CalorieAwareness   string `gorm:"not null;default:unknown"`
	KnownCalorieIntake *int

	DietaryRestrictions string

	IntakeCompleted bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

func IsValidGender(value string) bool {
	return value == GenderMale || value == GenderFemale
}

func IsValidCalorieAwareness(value string) bool {
	switch value {
	case AwarenessGaining, AwarenessMaintaining, AwarenessLosing, AwarenessUnknown:
		return true
	default:
		return false
	}
}

func IsValidLevel(level int) bool {
	return level >= HighestLevel && level <= LowestLevel
}
