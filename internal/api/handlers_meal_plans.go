package api

import (
	"errors"

	"github.com/StephanBK/sloth/internal/models"
	"github.com/StephanBK/sloth/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ListMealPlans serves the catalog for a level and gender, defaulting to the
// profile's own values.
func (handler *Handler) ListMealPlans(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	level := c.QueryInt("level", user.CurrentLevel)
	gender := c.Query("gender", user.Gender)

	plans, err := handler.mealPlanService.ListPlans(level, gender)
	if err != nil {
		return handler.mealPlanError(c, err)
	}
	return c.JSON(fiber.Map{
		"level":  level,
		"gender": gender,
		"plans":  plans,
	})
}

func (handler *Handler) GetMealPlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	plan, err := handler.mealPlanService.FetchPlan(planID)
	if err != nil {
		return handler.mealPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

// CreateMealPlan inserts a catalog entry. This is the seam data imports use;
// regular clients only read.
func (handler *Handler) CreateMealPlan(c *fiber.Ctx) error {
	var plan models.MealPlan
	if err := c.BodyParser(&plan); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	if err := handler.mealPlanService.CreatePlan(&plan); err != nil {
		return handler.mealPlanError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"plan": plan})
}

func (handler *Handler) mealPlanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidLevel):
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_level")
	case errors.Is(err, services.ErrIntakeInvalidGender):
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_gender")
	case errors.Is(err, services.ErrInvalidPlanDay):
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_plan_day")
	case errors.Is(err, services.ErrInvalidPlanInput):
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	case errors.Is(err, services.ErrMealPlanMissing):
		return handler.apiError(c, fiber.StatusNotFound, "errors.meal_plan_not_found")
	case errors.Is(err, services.ErrMealPlanKeyTaken):
		return handler.apiError(c, fiber.StatusConflict, "errors.meal_plan_exists")
	}
	return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
}
