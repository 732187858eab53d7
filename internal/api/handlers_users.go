package api

import (
	"errors"
	"time"

	"github.com/StephanBK/sloth/internal/models"
	"github.com/StephanBK/sloth/internal/services"
	"github.com/gofiber/fiber/v2"
)

// profilePayload is the JSON shape of an account. The password hash never
// leaves the handler layer.
func (handler *Handler) profilePayload(user models.User) fiber.Map {
	kcal, err := services.LevelKcal(user.Gender, user.CurrentLevel)
	if err != nil {
		kcal = 0
	}

	return fiber.Map{
		"id":                   user.ID,
		"email":                user.Email,
		"gender":               user.Gender,
		"height_cm":            user.HeightCm,
		"age":                  user.Age,
		"current_weight_kg":    user.CurrentWeightKg,
		"goal_weight_kg":       user.GoalWeightKg,
		"starting_weight_kg":   user.StartingWeightKg,
		"current_level":        user.CurrentLevel,
		"current_kcal":         kcal,
		"level_changed_at":     user.LevelChangedAt,
		"calorie_awareness":    user.CalorieAwareness,
		"known_calorie_intake": user.KnownCalorieIntake,
		"dietary_restrictions": user.DietaryRestrictions,
		"intake_completed":     user.IntakeCompleted,
		"created_at":           user.CreatedAt,
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	return c.JSON(fiber.Map{"user": handler.profilePayload(*user)})
}

type intakeRequest struct {
	Gender              string   `json:"gender"`
	HeightCm            int      `json:"height_cm"`
	Age                 int      `json:"age"`
	CurrentWeightKg     float64  `json:"current_weight_kg"`
	GoalWeightKg        float64  `json:"goal_weight_kg"`
	CalorieAwareness    string   `json:"calorie_awareness"`
	KnownCalorieIntake  *int     `json:"known_calorie_intake"`
	DietaryRestrictions string   `json:"dietary_restrictions"`
}

// CompleteIntake runs the one-shot questionnaire. A completed intake cannot
// be rerun through this endpoint; profile edits go through PATCH.
func (handler *Handler) CompleteIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	if user.IntakeCompleted {
		return handler.apiError(c, fiber.StatusConflict, "errors.intake_already_completed")
	}

	var request intakeRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	result, err := handler.intakeService.CompleteIntake(user.ID, services.IntakeInput{
		Gender:              request.Gender,
		HeightCm:            request.HeightCm,
		Age:                 request.Age,
		CurrentWeightKg:     request.CurrentWeightKg,
		GoalWeightKg:        request.GoalWeightKg,
		CalorieAwareness:    request.CalorieAwareness,
		KnownCalorieIntake:  request.KnownCalorieIntake,
		DietaryRestrictions: request.DietaryRestrictions,
	}, time.Now(), handler.location)
	if err != nil {
		return handler.intakeError(c, err)
	}

	updated, err := handler.authService.FindByID(user.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.JSON(fiber.Map{
		"recommendation": result,
		"user":           handler.profilePayload(updated),
	})
}

func (handler *Handler) intakeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrIntakeInvalidGender):
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_gender")
	case errors.Is(err, services.ErrWeightOutOfRange):
		return handler.apiError(c, fiber.StatusBadRequest, "errors.weight_out_of_range")
	case errors.Is(err, services.ErrIntakeInvalidAwareness),
		errors.Is(err, services.ErrIntakeInvalidHeight),
		errors.Is(err, services.ErrIntakeInvalidAge),
		errors.Is(err, services.ErrIntakeInvalidIntake):
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_intake")
	}
	return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
}

type profilePatchRequest struct {
	GoalWeightKg        *float64 `json:"goal_weight_kg"`
	HeightCm            *int     `json:"height_cm"`
	Age                 *int     `json:"age"`
	DietaryRestrictions *string  `json:"dietary_restrictions"`
}

func (handler *Handler) PatchProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	var request profilePatchRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	updated, err := handler.intakeService.UpdateProfile(user.ID, services.ProfilePatch{
		GoalWeightKg:        request.GoalWeightKg,
		HeightCm:            request.HeightCm,
		Age:                 request.Age,
		DietaryRestrictions: request.DietaryRestrictions,
	})
	if err != nil {
		return handler.intakeError(c, err)
	}
	return c.JSON(fiber.Map{"user": handler.profilePayload(updated)})
}

type levelChangeRequest struct {
	Level int `json:"level"`
}

// ChangeLevel is the explicit acceptance of a level recommendation, or a
// manual switch. The advisor itself never writes the level.
func (handler *Handler) ChangeLevel(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	var request levelChangeRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	updated, err := handler.intakeService.ChangeLevel(user.ID, request.Level, time.Now(), handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLevel) {
			return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_level")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.JSON(fiber.Map{
		"message": handler.translatef(c, "level.changed", updated.CurrentLevel),
		"user":    handler.profilePayload(updated),
	})
}
