package api

import (
	"errors"
	"time"

	"github.com/StephanBK/sloth/internal/models"
	"github.com/StephanBK/sloth/internal/services"
	"github.com/gofiber/fiber/v2"
)

func weightEntryPayload(entry models.WeightEntry) fiber.Map {
	return fiber.Map{
		"id":          entry.ID,
		"measured_at": entry.MeasuredAt.Format("2006-01-02"),
		"weight_kg":   entry.WeightKg,
		"notes":       entry.Notes,
	}
}

func weightEntryPayloads(entries []models.WeightEntry) []fiber.Map {
	result := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		result = append(result, weightEntryPayload(entry))
	}
	return result
}

// GetWeightOverview serves the progress screen: raw entries of the window,
// the gap-filled series, stats and the stall verdict.
func (handler *Handler) GetWeightOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	days, err := parseWindowDays(c)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_days")
	}

	overview, err := handler.progressService.BuildWeightOverview(user.ID, days, time.Now())
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}

	return c.JSON(fiber.Map{
		"days":    days,
		"entries": weightEntryPayloads(overview.Entries),
		"history": overview.History,
		"stats":   overview.Stats,
		"stall":   overview.Stall,
	})
}

type weightEntryRequest struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	Notes    string  `json:"notes"`
}

func (handler *Handler) CreateWeightEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	var request weightEntryRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	measuredAt := time.Now()
	if trimmed := request.Date; trimmed != "" {
		parsed, err := time.ParseInLocation("2006-01-02", trimmed, handler.location)
		if err != nil {
			return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
		}
		measuredAt = parsed
	}

	entry, err := handler.weightService.RecordEntry(user.ID, services.WeightEntryInput{
		MeasuredAt: measuredAt,
		WeightKg:   request.WeightKg,
		Notes:      request.Notes,
	}, handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeightOutOfRange):
			return handler.apiError(c, fiber.StatusBadRequest, "errors.weight_out_of_range")
		case errors.Is(err, services.ErrWeightEntryExists):
			return handler.apiError(c, fiber.StatusConflict, "errors.weight_entry_exists")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": weightEntryPayload(entry)})
}

func (handler *Handler) GetWeightEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	entry, err := handler.weightService.FetchEntry(entryID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrWeightEntryMissing) {
			return handler.apiError(c, fiber.StatusNotFound, "errors.weight_entry_not_found")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.JSON(fiber.Map{"entry": weightEntryPayload(entry)})
}

type weightEntryPatchRequest struct {
	WeightKg float64 `json:"weight_kg"`
	Notes    *string `json:"notes"`
}

func (handler *Handler) UpdateWeightEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	var request weightEntryPatchRequest
	if err := c.BodyParser(&request); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	entry, err := handler.weightService.UpdateEntry(entryID, user.ID, request.WeightKg, request.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeightOutOfRange):
			return handler.apiError(c, fiber.StatusBadRequest, "errors.weight_out_of_range")
		case errors.Is(err, services.ErrWeightEntryMissing):
			return handler.apiError(c, fiber.StatusNotFound, "errors.weight_entry_not_found")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.JSON(fiber.Map{"entry": weightEntryPayload(entry)})
}

func (handler *Handler) DeleteWeightEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.invalid_json")
	}

	if err := handler.weightService.DeleteEntry(entryID, user.ID); err != nil {
		if errors.Is(err, services.ErrWeightEntryMissing) {
			return handler.apiError(c, fiber.StatusNotFound, "errors.weight_entry_not_found")
		}
		return handler.apiError(c, fiber.StatusInternalServerError, "errors.server_error")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
