package services

import (
	"errors"
	"testing"
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

func validIntakeInput() IntakeInput {
	return IntakeInput{
		Gender:           models.GenderMale,
		HeightCm:         182,
		Age:              34,
		CurrentWeightKg:  90,
		GoalWeightKg:     82,
		CalorieAwareness: models.AwarenessUnknown,
	}
}

func TestValidateIntakeInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*IntakeInput)
		wantErr error
	}{
		{name: "valid", mutate: func(*IntakeInput) {}},
		{name: "bad gender", mutate: func(input *IntakeInput) { input.Gender = "other" }, wantErr: ErrIntakeInvalidGender},
		{name: "bad awareness", mutate: func(input *IntakeInput) { input.CalorieAwareness = "guessing" }, wantErr: ErrIntakeInvalidAwareness},
		{name: "height too low", mutate: func(input *IntakeInput) { input.HeightCm = 80 }, wantErr: ErrIntakeInvalidHeight},
		{name: "age too high", mutate: func(input *IntakeInput) { input.Age = 130 }, wantErr: ErrIntakeInvalidAge},
		{name: "weight too low", mutate: func(input *IntakeInput) { input.CurrentWeightKg = 20 }, wantErr: ErrWeightOutOfRange},
		{name: "goal too high", mutate: func(input *IntakeInput) { input.GoalWeightKg = 400 }, wantErr: ErrWeightOutOfRange},
		{name: "intake too low", mutate: func(input *IntakeInput) { input.KnownCalorieIntake = intPointer(500) }, wantErr: ErrIntakeInvalidIntake},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			input := validIntakeInput()
			testCase.mutate(&input)
			if err := ValidateIntakeInput(input); !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestCompleteIntakeAssignsRecommendedLevel(t *testing.T) {
	users := &stubWeightUserRepository{}
	service := NewIntakeService(users, &stubWeightLogRepository{})
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	result, err := service.CompleteIntake(1, validIntakeInput(), now, time.UTC)
	if err != nil {
		t.Fatalf("CompleteIntake: %v", err)
	}

	// 90 kg x 30 estimates 2700 kcal, level 1 for men.
	if result.Level != 1 || result.KcalDaily != 2700 {
		t.Fatalf("expected level 1 at 2700 kcal, got level %d at %d", result.Level, result.KcalDaily)
	}
	if users.updates["current_level"] != 1 {
		t.Fatalf("expected level persisted, got %v", users.updates["current_level"])
	}
	if users.updates["starting_weight_kg"] != 90.0 {
		t.Fatalf("expected starting weight captured, got %v", users.updates["starting_weight_kg"])
	}
	if users.updates["intake_completed"] != true {
		t.Fatal("expected intake marked completed")
	}
	changedAt, ok := users.updates["level_changed_at"].(time.Time)
	if !ok || !SameDay(changedAt, now) {
		t.Fatalf("expected level change stamped today, got %v", users.updates["level_changed_at"])
	}
}

func TestCompleteIntakePrefersEarlierLoggedWeightAsStart(t *testing.T) {
	logs := &stubWeightLogRepository{entries: []models.WeightEntry{
		{ID: 1, MeasuredAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), WeightKg: 93},
	}}
	users := &stubWeightUserRepository{}
	service := NewIntakeService(users, logs)

	if _, err := service.CompleteIntake(1, validIntakeInput(), time.Now(), time.UTC); err != nil {
		t.Fatalf("CompleteIntake: %v", err)
	}
	if users.updates["starting_weight_kg"] != 93.0 {
		t.Fatalf("expected earliest logged weight as start, got %v", users.updates["starting_weight_kg"])
	}
}

func TestChangeLevelValidatesAndRestampsHoldClock(t *testing.T) {
	users := &stubWeightUserRepository{user: models.User{CurrentLevel: 2}}
	service := NewIntakeService(users, &stubWeightLogRepository{})
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	if _, err := service.ChangeLevel(1, 0, now, time.UTC); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := service.ChangeLevel(1, 6, now, time.UTC); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}

	if _, err := service.ChangeLevel(1, 3, now, time.UTC); err != nil {
		t.Fatalf("ChangeLevel: %v", err)
	}
	if users.updates["current_level"] != 3 {
		t.Fatalf("expected level 3 persisted, got %v", users.updates["current_level"])
	}
	if _, ok := users.updates["level_changed_at"].(time.Time); !ok {
		t.Fatal("expected hold clock restamped")
	}
}

func TestUpdateProfileValidatesPatch(t *testing.T) {
	users := &stubWeightUserRepository{}
	service := NewIntakeService(users, &stubWeightLogRepository{})

	if _, err := service.UpdateProfile(1, ProfilePatch{GoalWeightKg: floatPointer(10)}); !errors.Is(err, ErrWeightOutOfRange) {
		t.Fatalf("expected ErrWeightOutOfRange, got %v", err)
	}

	restrictions := "  vegetarisch "
	if _, err := service.UpdateProfile(1, ProfilePatch{
		GoalWeightKg:        floatPointer(78),
		DietaryRestrictions: &restrictions,
	}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if users.updates["goal_weight_kg"] != 78.0 {
		t.Fatalf("expected goal persisted, got %v", users.updates["goal_weight_kg"])
	}
	if users.updates["dietary_restrictions"] != "vegetarisch" {
		t.Fatalf("expected trimmed restrictions, got %v", users.updates["dietary_restrictions"])
	}
}
