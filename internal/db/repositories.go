package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	WeightEntries *WeightEntryRepository
	MealPlans     *MealPlanRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		WeightEntries: NewWeightEntryRepository(database),
		MealPlans:     NewMealPlanRepository(database),
	}
}
