package services

import (
	"github.com/StephanBK/sloth/internal/models"
)

// WeightStats summarizes progress for display above the weight graph.
// ProgressPercent is clamped to [0, 100] for display; RawProgressRatio keeps
// the unclamped lost/(starting-goal) ratio.
type WeightStats struct {
	StartingWeightKg *float64 `json:"starting_weight_kg"`
	CurrentWeightKg  *float64 `json:"current_weight_kg"`
	GoalWeightKg     *float64 `json:"goal_weight_kg"`
	TotalLostKg      *float64 `json:"total_lost_kg"`
	RemainingKg      *float64 `json:"remaining_kg"`
	ProgressPercent  *float64 `json:"progress_percent"`
	RawProgressRatio *float64 `json:"raw_progress_ratio,omitempty"`
}

// ComputeWeightStats derives progress numbers from the profile snapshot and
// the full weight log. Starting weight is the earliest entry ever recorded
// (falling back to the profile's captured value), current is the latest
// entry. Total lost stays signed: gaining weight yields a negative value.
func ComputeWeightStats(user models.User, allEntries []models.WeightEntry) WeightStats {
	stats := WeightStats{
		StartingWeightKg: user.StartingWeightKg,
		CurrentWeightKg:  user.CurrentWeightKg,
		GoalWeightKg:     user.GoalWeightKg,
	}
	if len(allEntries) == 0 {
		return stats
	}

	starting := allEntries[0].WeightKg
	if user.StartingWeightKg != nil {
		starting = *user.StartingWeightKg
	}
	current := allEntries[len(allEntries)-1].WeightKg

	stats.StartingWeightKg = &starting
	stats.CurrentWeightKg = &current

	totalLost := roundToTenth(starting - current)
	stats.TotalLostKg = &totalLost

	if user.GoalWeightKg == nil {
		return stats
	}
	goal := *user.GoalWeightKg

	remaining := roundToTenth(current - goal)
	stats.RemainingKg = &remaining

	distance := starting - goal
	if distance == 0 {
		ratio := 1.0
		percent := 100.0
		stats.RawProgressRatio = &ratio
		stats.ProgressPercent = &percent
		return stats
	}

	ratio := (starting - current) / distance
	stats.RawProgressRatio = &ratio

	percent := roundToTenth(ratio * 100)
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	stats.ProgressPercent = &percent

	return stats
}
