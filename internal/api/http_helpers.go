package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DetectLanguage resolves the response language from the language cookie,
// falling back to the Accept-Language header.
func (handler *Handler) DetectLanguage(c *fiber.Ctx) error {
	language := strings.TrimSpace(c.Cookies(languageCookieName))
	if language == "" {
		language = handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	}
	c.Locals(contextLanguageKey, handler.i18n.NormalizeLanguage(language))
	return c.Next()
}

func (handler *Handler) translate(c *fiber.Ctx, key string) string {
	return handler.i18n.Translate(currentLanguage(c), key)
}

func (handler *Handler) translatef(c *fiber.Ctx, key string, args ...any) string {
	return handler.i18n.Translatef(currentLanguage(c), key, args...)
}

// apiError sends the error payload: a stable machine key plus the localized
// message.
func (handler *Handler) apiError(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   key,
		"message": handler.translate(c, key),
	})
}
