package api

import (
	"github.com/StephanBK/sloth/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName     = "sloth_auth"
	languageCookieName = "sloth_lang"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}
