package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

const (
	MinPlanDay = 1
	MaxPlanDay = 10
)

// MealPlan is a single pre-built day plan, keyed by (level, day number, gender).
// The catalog holds 100 of these: 5 levels x 10 days x 2 genders.
type MealPlan struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Level     int    `gorm:"not null;uniqueIndex:uidx_plan_key" json:"level"`
	DayNumber int    `gorm:"not null;uniqueIndex:uidx_plan_key" json:"day_number"`
	Gender    string `gorm:"not null;uniqueIndex:uidx_plan_key" json:"gender"`

	TotalKcal    int     `gorm:"not null" json:"total_kcal"`
	TotalProtein float64 `gorm:"not null" json:"total_protein"`
	TotalCarbs   float64 `gorm:"not null" json:"total_carbs"`
	TotalFat     float64 `gorm:"not null" json:"total_fat"`

	Name        string `json:"name"`
	Description string `json:"description"`

	Meals []Meal `gorm:"constraint:OnDelete:CASCADE" json:"meals"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Meal struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	MealPlanID uint   `gorm:"not null;index" json:"meal_plan_id"`
	MealType   string `gorm:"not null" json:"meal_type"`
	OrderIndex int    `gorm:"not null;default:0" json:"order_index"`

	Instructions string `json:"instructions"`

	TotalKcal    int     `gorm:"not null;default:0" json:"total_kcal"`
	TotalProtein float64 `gorm:"not null;default:0" json:"total_protein"`
	TotalCarbs   float64 `gorm:"not null;default:0" json:"total_carbs"`
	TotalFat     float64 `gorm:"not null;default:0" json:"total_fat"`

	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

// Ingredient is a single line within a meal, e.g. "400 g Minutenschnitzel".
// Unit is free text from the plan catalog ("g", "ml", "EL", "Stück").
type Ingredient struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	MealID uint `gorm:"not null;index" json:"meal_id"`

	ProductName string  `gorm:"not null" json:"product_name"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	Unit        string  `gorm:"not null" json:"unit"`

	Kcal    int     `gorm:"not null;default:0" json:"kcal"`
	Protein float64 `gorm:"not null;default:0" json:"protein"`
	Carbs   float64 `gorm:"not null;default:0" json:"carbs"`
	Fat     float64 `gorm:"not null;default:0" json:"fat"`

	OrderIndex int `gorm:"not null;default:0" json:"order_index"`
}

func IsValidMealType(value string) bool {
	switch value {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

func IsValidPlanDay(day int) bool {
	return day >= MinPlanDay && day <= MaxPlanDay
}
