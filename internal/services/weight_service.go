package services

import (
	"errors"
	"strings"
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

var (
	ErrWeightOutOfRange   = errors.New("weight out of range")
	ErrWeightEntryExists  = errors.New("weight entry for day exists")
	ErrWeightEntryMissing = errors.New("weight entry not found")
)

type WeightEntryInput struct {
	MeasuredAt time.Time
	WeightKg   float64
	Notes      string
}

type WeightLogRepository interface {
	ListByUser(userID uint) ([]models.WeightEntry, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.WeightEntry, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WeightEntry, bool, error)
	FindByIDForUser(entryID uint, userID uint) (models.WeightEntry, bool, error)
	FindLatestForUser(userID uint) (models.WeightEntry, bool, error)
	FindEarliestForUser(userID uint) (models.WeightEntry, bool, error)
	Create(entry *models.WeightEntry) error
	Save(entry *models.WeightEntry) error
	DeleteByIDForUser(entryID uint, userID uint) error
}

type WeightUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

// WeightService owns the weight log: recording, editing, deleting entries and
// keeping the profile's current-weight snapshot in sync with the log.
type WeightService struct {
	entries WeightLogRepository
	users   WeightUserRepository
}

func NewWeightService(entries WeightLogRepository, users WeightUserRepository) *WeightService {
	return &WeightService{
		entries: entries,
		users:   users,
	}
}

func (service *WeightService) FetchEntry(entryID uint, userID uint) (models.WeightEntry, error) {
	entry, found, err := service.entries.FindByIDForUser(entryID, userID)
	if err != nil {
		return models.WeightEntry{}, err
	}
	if !found {
		return models.WeightEntry{}, ErrWeightEntryMissing
	}
	return entry, nil
}

// RecordEntry creates a new measurement. At most one entry may exist per
// calendar day; a second write for the same day is rejected so the caller can
// decide between editing and discarding. The profile's current-weight
// snapshot follows the latest log entry; the starting weight stays the value
// captured at intake.
func (service *WeightService) RecordEntry(userID uint, input WeightEntryInput, location *time.Location) (models.WeightEntry, error) {
	if input.WeightKg < models.MinWeightKg || input.WeightKg > models.MaxWeightKg {
		return models.WeightEntry{}, ErrWeightOutOfRange
	}

	dayStart, dayEnd := DayRange(input.MeasuredAt, location)
	_, exists, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.WeightEntry{}, err
	}
	if exists {
		return models.WeightEntry{}, ErrWeightEntryExists
	}

	entry := models.WeightEntry{
		UserID:     userID,
		MeasuredAt: dayStart,
		WeightKg:   input.WeightKg,
		Notes:      strings.TrimSpace(input.Notes),
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.WeightEntry{}, err
	}

	if err := service.syncProfileWeights(userID); err != nil {
		return models.WeightEntry{}, err
	}
	return entry, nil
}

// UpdateEntry edits an existing measurement in place. The day stays fixed;
// only weight and notes change.
func (service *WeightService) UpdateEntry(entryID uint, userID uint, weightKg float64, notes *string) (models.WeightEntry, error) {
	if weightKg < models.MinWeightKg || weightKg > models.MaxWeightKg {
		return models.WeightEntry{}, ErrWeightOutOfRange
	}

	entry, found, err := service.entries.FindByIDForUser(entryID, userID)
	if err != nil {
		return models.WeightEntry{}, err
	}
	if !found {
		return models.WeightEntry{}, ErrWeightEntryMissing
	}

	entry.WeightKg = weightKg
	if notes != nil {
		entry.Notes = strings.TrimSpace(*notes)
	}
	if err := service.entries.Save(&entry); err != nil {
		return models.WeightEntry{}, err
	}

	if err := service.syncProfileWeights(userID); err != nil {
		return models.WeightEntry{}, err
	}
	return entry, nil
}

func (service *WeightService) DeleteEntry(entryID uint, userID uint) error {
	_, found, err := service.entries.FindByIDForUser(entryID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrWeightEntryMissing
	}

	if err := service.entries.DeleteByIDForUser(entryID, userID); err != nil {
		return err
	}
	return service.syncProfileWeights(userID)
}

// syncProfileWeights mirrors the latest log entry into the profile's
// current-weight snapshot. With an empty log the snapshot is cleared.
func (service *WeightService) syncProfileWeights(userID uint) error {
	updates := map[string]any{"current_weight_kg": nil}

	latest, found, err := service.entries.FindLatestForUser(userID)
	if err != nil {
		return err
	}
	if found {
		updates["current_weight_kg"] = latest.WeightKg
	}

	return service.users.UpdateByID(userID, updates)
}
