package services

import (
	"errors"

	"github.com/StephanBK/sloth/internal/models"
)

var (
	ErrMealPlanMissing  = errors.New("meal plan not found")
	ErrMealPlanKeyTaken = errors.New("meal plan for level, day and gender exists")
	ErrInvalidPlanDay   = errors.New("invalid plan day")
	ErrInvalidPlanInput = errors.New("invalid meal plan input")
)

type MealPlanCatalogRepository interface {
	ListByLevelAndGender(level int, gender string) ([]models.MealPlan, error)
	FindByID(planID uint) (models.MealPlan, bool, error)
	FindForDays(level int, gender string, dayNumbers []int) ([]models.MealPlan, error)
	Create(plan *models.MealPlan) error
	ExistsByKey(level int, dayNumber int, gender string) (bool, error)
}

// MealPlanService serves the plan catalog and builds shopping lists from a
// day selection.
type MealPlanService struct {
	plans MealPlanCatalogRepository
}

func NewMealPlanService(plans MealPlanCatalogRepository) *MealPlanService {
	return &MealPlanService{plans: plans}
}

func (service *MealPlanService) ListPlans(level int, gender string) ([]models.MealPlan, error) {
	if !models.IsValidLevel(level) {
		return nil, ErrInvalidLevel
	}
	if !models.IsValidGender(gender) {
		return nil, ErrIntakeInvalidGender
	}
	return service.plans.ListByLevelAndGender(level, gender)
}

func (service *MealPlanService) FetchPlan(planID uint) (models.MealPlan, error) {
	plan, found, err := service.plans.FindByID(planID)
	if err != nil {
		return models.MealPlan{}, err
	}
	if !found {
		return models.MealPlan{}, ErrMealPlanMissing
	}
	return plan, nil
}

// BuildGroceryList aggregates the ingredients of the selected plan days into
// a shopping list. Duplicate day numbers collapse; an empty selection yields
// an empty list rather than an error.
func (service *MealPlanService) BuildGroceryList(level int, gender string, dayNumbers []int, checked map[string]bool) ([]AggregatedGroceryItem, error) {
	if !models.IsValidLevel(level) {
		return nil, ErrInvalidLevel
	}
	if !models.IsValidGender(gender) {
		return nil, ErrIntakeInvalidGender
	}

	unique := make([]int, 0, len(dayNumbers))
	seen := make(map[int]bool, len(dayNumbers))
	for _, dayNumber := range dayNumbers {
		if !models.IsValidPlanDay(dayNumber) {
			return nil, ErrInvalidPlanDay
		}
		if seen[dayNumber] {
			continue
		}
		seen[dayNumber] = true
		unique = append(unique, dayNumber)
	}
	if len(unique) == 0 {
		return []AggregatedGroceryItem{}, nil
	}

	plans, err := service.plans.FindForDays(level, gender, unique)
	if err != nil {
		return nil, err
	}
	return AggregateGroceries(plans, checked), nil
}

// CreatePlan inserts a new catalog entry. The (level, day, gender) key must
// be free. Per-meal totals are derived from the ingredients, never trusted
// from the payload.
func (service *MealPlanService) CreatePlan(plan *models.MealPlan) error {
	if !models.IsValidLevel(plan.Level) || !models.IsValidGender(plan.Gender) {
		return ErrInvalidPlanInput
	}
	if !models.IsValidPlanDay(plan.DayNumber) {
		return ErrInvalidPlanDay
	}

	taken, err := service.plans.ExistsByKey(plan.Level, plan.DayNumber, plan.Gender)
	if err != nil {
		return err
	}
	if taken {
		return ErrMealPlanKeyTaken
	}

	for index := range plan.Meals {
		recomputeMealTotals(&plan.Meals[index])
	}
	return service.plans.Create(plan)
}

func recomputeMealTotals(meal *models.Meal) {
	meal.TotalKcal = 0
	meal.TotalProtein = 0
	meal.TotalCarbs = 0
	meal.TotalFat = 0
	for _, ingredient := range meal.Ingredients {
		meal.TotalKcal += ingredient.Kcal
		meal.TotalProtein += ingredient.Protein
		meal.TotalCarbs += ingredient.Carbs
		meal.TotalFat += ingredient.Fat
	}
}
