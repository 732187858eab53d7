package services

import (
	"fmt"
	"math"
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

const (
	// StallWindowDays is the trailing window stall detection always operates
	// on, independent of the display window requested by the caller.
	StallWindowDays = 14

	// StallMinEntries is the minimum number of real measurements inside the
	// window before a verdict is possible.
	StallMinEntries = 4

	// StallThresholdKg is the absolute net change at or below which the
	// window counts as a stall.
	StallThresholdKg = 0.5
)

// StallStatus is the verdict for the trailing stall window. Insufficient data
// is a valid result, not an error: CanDetect is false and the message nudges
// the user to log more weights.
type StallStatus struct {
	CanDetect        bool     `json:"can_detect"`
	IsStalled        bool     `json:"is_stalled"`
	EntriesInPeriod  int      `json:"entries_in_period"`
	MinEntriesNeeded int      `json:"min_entries_needed"`
	WeightChangeKg   *float64 `json:"weight_change_kg"`
	Message          string   `json:"message"`
}

// DetectStall classifies the trailing 14-day window ending at now. Only real
// measurements count; interpolated points are never evidence. The entries
// must already be limited to a single user and sorted by date ascending.
func DetectStall(entries []models.WeightEntry, now time.Time, location *time.Location) StallStatus {
	windowStart := DateAtLocation(now, location).AddDate(0, 0, -StallWindowDays)
	windowEnd := DateAtLocation(now, location)

	inWindow := make([]models.WeightEntry, 0, len(entries))
	for _, entry := range entries {
		day := DateAtLocation(entry.MeasuredAt, location)
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		inWindow = append(inWindow, entry)
	}

	status := StallStatus{
		EntriesInPeriod:  len(inWindow),
		MinEntriesNeeded: StallMinEntries,
	}

	if len(inWindow) < StallMinEntries {
		missing := StallMinEntries - len(inWindow)
		status.Message = fmt.Sprintf(
			"Trage noch mindestens %d Gewichtswerte ein, damit wir einen Stillstand erkennen können. Am besten täglich wiegen!",
			missing,
		)
		return status
	}

	status.CanDetect = true

	first := inWindow[0].WeightKg
	last := inWindow[len(inWindow)-1].WeightKg
	change := roundToTenth(last - first)
	status.WeightChangeKg = &change

	if math.Abs(change) <= StallThresholdKg {
		status.IsStalled = true
		status.Message = fmt.Sprintf(
			"Dein Gewicht hat sich in den letzten %d Tagen nur um %.1f kg verändert (Schwelle: %.1f kg). Erwäge, auf das nächstniedrigere Kalorienlevel zu wechseln.",
			StallWindowDays, math.Abs(change), StallThresholdKg,
		)
		return status
	}

	if change < 0 {
		status.Message = fmt.Sprintf(
			"Super Fortschritt! Du hast %.1f kg in den letzten %d Tagen verloren (Schwelle: %.1f kg).",
			math.Abs(change), StallWindowDays, StallThresholdKg,
		)
		return status
	}

	status.Message = fmt.Sprintf(
		"Du hast %.1f kg zugenommen (Schwelle: %.1f kg). Kein Problem — bleib bei deinem aktuellen Kalorienlevel.",
		change, StallThresholdKg,
	)
	return status
}
