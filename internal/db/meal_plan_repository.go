package db

import (
	"github.com/StephanBK/sloth/internal/models"
	"gorm.io/gorm"
)

type MealPlanRepository struct {
	database *gorm.DB
}

func NewMealPlanRepository(database *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{database: database}
}

func (repo *MealPlanRepository) ListByLevelAndGender(level int, gender string) ([]models.MealPlan, error) {
	plans := make([]models.MealPlan, 0)
	if err := repo.database.
		Where("level = ? AND gender = ?", level, gender).
		Order("day_number ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *MealPlanRepository) FindByID(planID uint) (models.MealPlan, bool, error) {
	plan := models.MealPlan{}
	result := repo.database.
		Preload("Meals", func(query *gorm.DB) *gorm.DB {
			return query.Order("meals.order_index ASC, meals.id ASC")
		}).
		Preload("Meals.Ingredients", func(query *gorm.DB) *gorm.DB {
			return query.Order("ingredients.order_index ASC, ingredients.id ASC")
		}).
		Where("id = ?", planID).
		Limit(1).
		Find(&plan)
	if result.Error != nil {
		return models.MealPlan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealPlan{}, false, nil
	}
	return plan, true, nil
}

// FindForDays loads the plans for a day-number selection with meals and
// ingredients preloaded. Day numbers with no matching plan are simply absent
// from the result.
func (repo *MealPlanRepository) FindForDays(level int, gender string, dayNumbers []int) ([]models.MealPlan, error) {
	if len(dayNumbers) == 0 {
		return []models.MealPlan{}, nil
	}

	plans := make([]models.MealPlan, 0, len(dayNumbers))
	if err := repo.database.
		Preload("Meals", func(query *gorm.DB) *gorm.DB {
			return query.Order("meals.order_index ASC, meals.id ASC")
		}).
		Preload("Meals.Ingredients", func(query *gorm.DB) *gorm.DB {
			return query.Order("ingredients.order_index ASC, ingredients.id ASC")
		}).
		Where("level = ? AND gender = ? AND day_number IN ?", level, gender, dayNumbers).
		Order("day_number ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *MealPlanRepository) Create(plan *models.MealPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *MealPlanRepository) ExistsByKey(level int, dayNumber int, gender string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.MealPlan{}).
		Where("level = ? AND day_number = ? AND gender = ?", level, dayNumber, gender).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
