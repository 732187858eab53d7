package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	minWindowDays     = 7
	maxWindowDays     = 365
	defaultWindowDays = 30
)

var errInvalidWindow = errors.New("invalid window")

// parseWindowDays reads the ?days= query parameter, defaulting to 30.
func parseWindowDays(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("days"))
	if raw == "" {
		return defaultWindowDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidWindow
	}
	if days < minWindowDays || days > maxWindowDays {
		return 0, errInvalidWindow
	}
	return days, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}
