package services

import (
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

// WeightOverview is the full payload behind the progress screen: the raw
// entries of the display window, the gap-filled graph series, summary stats
// over the whole log and the stall verdict for the trailing window.
type WeightOverview struct {
	Entries []models.WeightEntry `json:"entries"`
	History []WeightHistoryPoint `json:"history"`
	Stats   WeightStats          `json:"stats"`
	Stall   StallStatus          `json:"stall"`
}

// LevelRecommendation combines the stall verdict with the advisor's drop
// decision for the current level.
type LevelRecommendation struct {
	CurrentLevel int                `json:"current_level"`
	CurrentKcal  int                `json:"current_kcal"`
	Stall        StallStatus        `json:"stall"`
	Drop         DropRecommendation `json:"drop"`
}

type ProgressUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

// ProgressService reads the weight log and derives everything the progress
// and recommendation endpoints show. It never writes.
type ProgressService struct {
	entries  WeightLogRepository
	users    ProgressUserRepository
	location *time.Location
}

func NewProgressService(entries WeightLogRepository, users ProgressUserRepository, location *time.Location) *ProgressService {
	return &ProgressService{
		entries:  entries,
		users:    users,
		location: location,
	}
}

// BuildWeightOverview assembles the progress payload. The display window only
// limits Entries and History; Stats always cover the whole log and the stall
// verdict always uses its own trailing window.
func (service *ProgressService) BuildWeightOverview(userID uint, windowDays int, now time.Time) (WeightOverview, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return WeightOverview{}, err
	}

	allEntries, err := service.entries.ListByUser(userID)
	if err != nil {
		return WeightOverview{}, err
	}

	windowEnd := DateAtLocation(now, service.location).AddDate(0, 0, 1)
	windowStart := windowEnd.AddDate(0, 0, -windowDays-1)
	windowEntries, err := service.entries.ListByUserRange(userID, windowStart, windowEnd)
	if err != nil {
		return WeightOverview{}, err
	}

	return WeightOverview{
		Entries: windowEntries,
		History: BuildWeightHistory(windowEntries, service.location),
		Stats:   ComputeWeightStats(user, allEntries),
		Stall:   DetectStall(allEntries, now, service.location),
	}, nil
}

// BuildLevelRecommendation evaluates the stall-driven level drop for a user.
func (service *ProgressService) BuildLevelRecommendation(userID uint, now time.Time) (LevelRecommendation, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return LevelRecommendation{}, err
	}

	allEntries, err := service.entries.ListByUser(userID)
	if err != nil {
		return LevelRecommendation{}, err
	}

	stall := DetectStall(allEntries, now, service.location)

	heldSince := user.CreatedAt
	if user.LevelChangedAt != nil {
		heldSince = *user.LevelChangedAt
	}
	drop := RecommendStallDrop(user.CurrentLevel, heldSince, stall.IsStalled, now, service.location)

	kcal, err := LevelKcal(user.Gender, user.CurrentLevel)
	if err != nil {
		kcal = 0
	}

	return LevelRecommendation{
		CurrentLevel: user.CurrentLevel,
		CurrentKcal:  kcal,
		Stall:        stall,
		Drop:         drop,
	}, nil
}
