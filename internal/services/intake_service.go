package services

import (
	"errors"
	"strings"
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

var (
	ErrIntakeInvalidGender    = errors.New("invalid gender")
	ErrIntakeInvalidAwareness = errors.New("invalid calorie awareness")
	ErrIntakeInvalidHeight    = errors.New("height out of range")
	ErrIntakeInvalidAge       = errors.New("age out of range")
	ErrIntakeInvalidIntake    = errors.New("calorie intake out of range")
	ErrInvalidLevel           = errors.New("invalid level")
)

const (
	MinHeightCm = 100
	MaxHeightCm = 250
	MinAge      = 16
	MaxAge      = 100
	MinKcal     = 800
	MaxKcal     = 5000
)

// IntakeInput carries the answers of the calorie-awareness questionnaire.
type IntakeInput struct {
	Gender              string
	HeightCm            int
	Age                 int
	CurrentWeightKg     float64
	GoalWeightKg        float64
	CalorieAwareness    string
	KnownCalorieIntake  *int
	DietaryRestrictions string
}

// IntakeResult is the advisor's verdict after the questionnaire: the level
// the profile was set to and the explanation shown to the user.
type IntakeResult struct {
	Level     int    `json:"level"`
	KcalDaily int    `json:"kcal_daily"`
	Rationale string `json:"rationale"`
}

type IntakeUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

// IntakeService completes the questionnaire and manages level changes on the
// profile. Level changes always restamp LevelChangedAt so stall-driven drops
// measure hold time from the last change.
type IntakeService struct {
	users   IntakeUserRepository
	entries WeightLogRepository
}

func NewIntakeService(users IntakeUserRepository, entries WeightLogRepository) *IntakeService {
	return &IntakeService{
		users:   users,
		entries: entries,
	}
}

func ValidateIntakeInput(input IntakeInput) error {
	if !models.IsValidGender(input.Gender) {
		return ErrIntakeInvalidGender
	}
	if !models.IsValidCalorieAwareness(input.CalorieAwareness) {
		return ErrIntakeInvalidAwareness
	}
	if input.HeightCm < MinHeightCm || input.HeightCm > MaxHeightCm {
		return ErrIntakeInvalidHeight
	}
	if input.Age < MinAge || input.Age > MaxAge {
		return ErrIntakeInvalidAge
	}
	if input.CurrentWeightKg < models.MinWeightKg || input.CurrentWeightKg > models.MaxWeightKg {
		return ErrWeightOutOfRange
	}
	if input.GoalWeightKg < models.MinWeightKg || input.GoalWeightKg > models.MaxWeightKg {
		return ErrWeightOutOfRange
	}
	if input.KnownCalorieIntake != nil && (*input.KnownCalorieIntake < MinKcal || *input.KnownCalorieIntake > MaxKcal) {
		return ErrIntakeInvalidIntake
	}
	return nil
}

// CompleteIntake stores the questionnaire answers, captures the starting
// weight and assigns the recommended level. Whether reruns are allowed is the
// caller's decision; an earlier logged measurement keeps precedence as
// starting weight.
func (service *IntakeService) CompleteIntake(userID uint, input IntakeInput, now time.Time, location *time.Location) (IntakeResult, error) {
	if err := ValidateIntakeInput(input); err != nil {
		return IntakeResult{}, err
	}

	level, rationale, err := RecommendInitialLevel(input.Gender, input.CalorieAwareness, input.KnownCalorieIntake, input.CurrentWeightKg)
	if err != nil {
		return IntakeResult{}, err
	}

	startingWeight := input.CurrentWeightKg
	earliest, found, err := service.entries.FindEarliestForUser(userID)
	if err != nil {
		return IntakeResult{}, err
	}
	if found {
		startingWeight = earliest.WeightKg
	}

	changedAt := DateAtLocation(now, location)
	updates := map[string]any{
		"gender":               input.Gender,
		"height_cm":            input.HeightCm,
		"age":                  input.Age,
		"current_weight_kg":    input.CurrentWeightKg,
		"goal_weight_kg":       input.GoalWeightKg,
		"starting_weight_kg":   startingWeight,
		"calorie_awareness":    input.CalorieAwareness,
		"known_calorie_intake": input.KnownCalorieIntake,
		"dietary_restrictions": strings.TrimSpace(input.DietaryRestrictions),
		"current_level":        level,
		"level_changed_at":     changedAt,
		"intake_completed":     true,
	}
	if err := service.users.UpdateByID(userID, updates); err != nil {
		return IntakeResult{}, err
	}

	kcal, err := LevelKcal(input.Gender, level)
	if err != nil {
		return IntakeResult{}, err
	}
	return IntakeResult{Level: level, KcalDaily: kcal, Rationale: rationale}, nil
}

// ChangeLevel sets the profile to a new level and restamps the hold clock.
// The caller uses this both for accepting a drop recommendation and for a
// manual switch.
func (service *IntakeService) ChangeLevel(userID uint, level int, now time.Time, location *time.Location) (models.User, error) {
	if !models.IsValidLevel(level) {
		return models.User{}, ErrInvalidLevel
	}

	changedAt := DateAtLocation(now, location)
	updates := map[string]any{
		"current_level":    level,
		"level_changed_at": changedAt,
	}
	if err := service.users.UpdateByID(userID, updates); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}

// ProfilePatch holds optional profile edits outside the questionnaire.
type ProfilePatch struct {
	GoalWeightKg        *float64
	HeightCm            *int
	Age                 *int
	DietaryRestrictions *string
}

func (service *IntakeService) UpdateProfile(userID uint, patch ProfilePatch) (models.User, error) {
	updates := make(map[string]any)
	if patch.GoalWeightKg != nil {
		if *patch.GoalWeightKg < models.MinWeightKg || *patch.GoalWeightKg > models.MaxWeightKg {
			return models.User{}, ErrWeightOutOfRange
		}
		updates["goal_weight_kg"] = *patch.GoalWeightKg
	}
	if patch.HeightCm != nil {
		if *patch.HeightCm < MinHeightCm || *patch.HeightCm > MaxHeightCm {
			return models.User{}, ErrIntakeInvalidHeight
		}
		updates["height_cm"] = *patch.HeightCm
	}
	if patch.Age != nil {
		if *patch.Age < MinAge || *patch.Age > MaxAge {
			return models.User{}, ErrIntakeInvalidAge
		}
		updates["age"] = *patch.Age
	}
	if patch.DietaryRestrictions != nil {
		updates["dietary_restrictions"] = strings.TrimSpace(*patch.DietaryRestrictions)
	}

	if len(updates) > 0 {
		if err := service.users.UpdateByID(userID, updates); err != nil {
			return models.User{}, err
		}
	}
	return service.users.FindByID(userID)
}
