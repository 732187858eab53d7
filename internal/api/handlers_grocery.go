package api

import (
	"github.com/StephanBK/sloth/internal/services"
	"github.com/gofiber/fiber/v2"
)

type groceryListRequest struct {
	DayNumbers         []int    `json:"day_numbers"`
	PreviousDayNumbers []int    `json:"previous_day_numbers"`
	Checked            []string `json:"checked"`
}

// BuildGroceryList aggregates the selected plan days into a shopping list.
// Level and gender come from the profile. The checked keys are the client's
// own state and belong to the selection they were made under; when the day
// selection differs from previous_day_numbers the checked state is discarded
// and the list starts unchecked.
func (handler *Handler) BuildGroceryList(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	var request groceryListRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	checked := make(map[string]bool, len(request.Checked))
	if services.SameDaySelection(request.DayNumbers, request.PreviousDayNumbers) {
		for _, name := range request.Checked {
			if key := services.NormalizeProductKey(name); key != "" {
				checked[key] = true
			}
		}
	}

	items, err := handler.mealPlanService.BuildGroceryList(user.CurrentLevel, user.Gender, request.DayNumbers, checked)
	if err != nil {
		return handler.mealPlanError(c, err)
	}
	return c.JSON(fiber.Map{
		"day_numbers": request.DayNumbers,
		"items":       items,
	})
}
