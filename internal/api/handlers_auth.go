package api

import (
	"errors"

	"github.com/StephanBK/sloth/internal/services"
	"github.com/gofiber/fiber/v2"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var request credentialsRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	user, err := handler.authService.Register(request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_credentials")
		case errors.Is(err, services.ErrWeakPassword):
			return handler.apiError(c, fiber.StatusBadRequest, "errors.weak_password")
		case errors.Is(err, services.ErrEmailTaken):
			return handler.apiError(c, fiber.StatusConflict, "errors.email_taken")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "auth.registered"),
		"user":    handler.profilePayload(user),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var request credentialsRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	user, err := handler.authService.Authenticate(request.Email, request.Password)
	if err != nil {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.invalid_credentials")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.JSON(fiber.Map{"user": handler.profilePayload(user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": handler.translate(c, "auth.logged_out")})
}
