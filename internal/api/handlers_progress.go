package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetLevelRecommendation evaluates the stall-driven level drop. The response
// only recommends; accepting it goes through the level endpoint.
func (handler *Handler) GetLevelRecommendation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	recommendation, err := handler.progressService.BuildLevelRecommendation(user.ID, time.Now())
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.JSON(recommendation)
}
