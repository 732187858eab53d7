package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// IntakeRequired guards endpoints that need a completed questionnaire, such
// as meal plans and the grocery list.
func (handler *Handler) IntakeRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	if !user.IntakeCompleted {
		return handler.apiError(c, fiber.StatusForbidden, "errors.intake_required")
	}
	return c.Next()
}
