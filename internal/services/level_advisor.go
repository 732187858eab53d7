package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

var (
	ErrUnknownGender = errors.New("unknown gender")
)

// Per-gender daily kcal targets, level 1 (index 0) down to level 5. The
// catalog only ships these ten tiers; the advisor never invents new ones.
var levelKcalByGender = map[string][]int{
	models.GenderMale:   {2700, 2400, 2100, 1800, 1500},
	models.GenderFemale: {2100, 1900, 1700, 1500, 1300},
}

const (
	// MinDaysAtLevelForDrop is how long a level must have been held before a
	// stall may trigger a drop recommendation.
	MinDaysAtLevelForDrop = 14

	// MaxDaysAtLowestLevel is how long the lowest tier may be held before a
	// further stall becomes a hard stop instead of another drop.
	MaxDaysAtLowestLevel = 21

	estimateKcalPerKg = 30
)

// LevelKcal returns the daily kcal target for a gender and level.
func LevelKcal(gender string, level int) (int, error) {
	targets, exists := levelKcalByGender[gender]
	if !exists {
		return 0, ErrUnknownGender
	}
	if !models.IsValidLevel(level) {
		return 0, fmt.Errorf("level %d out of range", level)
	}
	return targets[level-models.HighestLevel], nil
}

// RecommendInitialLevel picks a starting level from the calorie-awareness
// intake answers. A missing known intake for gaining/maintaining/losing falls
// back to the body-weight estimate rather than failing. Inputs are assumed
// sanitized (positive body weight, valid gender).
func RecommendInitialLevel(gender string, awareness string, knownIntake *int, bodyWeightKg float64) (int, string, error) {
	targets, exists := levelKcalByGender[gender]
	if !exists {
		return 0, "", ErrUnknownGender
	}

	if knownIntake == nil && awareness != models.AwarenessUnknown {
		awareness = models.AwarenessUnknown
	}

	switch awareness {
	case models.AwarenessUnknown:
		estimate := int(bodyWeightKg * estimateKcalPerKg)
		level := levelAtOrBelow(targets, estimate)
		rationale := fmt.Sprintf(
			"Geschätzter Tagesbedarf %d kcal (Körpergewicht x %d). Level %d mit %d kcal liegt direkt darunter.",
			estimate, estimateKcalPerKg, level, targets[level-1],
		)
		return level, rationale, nil

	case models.AwarenessGaining:
		level := levelAtOrBelow(targets, *knownIntake)
		rationale := fmt.Sprintf(
			"Du nimmst bei %d kcal zu. Level %d mit %d kcal liegt darunter und bringt dich ins Defizit.",
			*knownIntake, level, targets[level-1],
		)
		return level, rationale, nil

	case models.AwarenessMaintaining:
		matched := levelClosest(targets, *knownIntake)
		level := matched + 1
		if level > models.LowestLevel {
			level = models.LowestLevel
		}
		rationale := fmt.Sprintf(
			"Du hältst dein Gewicht bei %d kcal. Level %d mit %d kcal liegt eine Stufe strenger und erzeugt ein Defizit.",
			*knownIntake, level, targets[level-1],
		)
		return level, rationale, nil

	case models.AwarenessLosing:
		level := levelClosest(targets, *knownIntake)
		rationale := fmt.Sprintf(
			"Du nimmst bei %d kcal bereits ab. Level %d mit %d kcal liegt am nächsten an deiner aktuellen Zufuhr.",
			*knownIntake, level, targets[level-1],
		)
		return level, rationale, nil

	default:
		return 0, "", fmt.Errorf("unknown calorie awareness %q", awareness)
	}
}

// levelAtOrBelow returns the level whose target is the largest value still at
// or below the intake, clamped to the lowest tier when the intake undercuts
// every target.
func levelAtOrBelow(targets []int, intake int) int {
	for index, target := range targets {
		if target <= intake {
			return index + models.HighestLevel
		}
	}
	return models.LowestLevel
}

// levelClosest returns the level whose target is numerically closest to the
// intake. Ties resolve to the higher-calorie tier.
func levelClosest(targets []int, intake int) int {
	bestIndex := 0
	bestDistance := math.MaxInt
	for index, target := range targets {
		distance := target - intake
		if distance < 0 {
			distance = -distance
		}
		if distance < bestDistance {
			bestDistance = distance
			bestIndex = index
		}
	}
	return bestIndex + models.HighestLevel
}

// DropRecommendation is the stall-driven revision verdict. The advisor never
// writes the level itself; accepting the recommendation is a separate,
// explicit caller action.
type DropRecommendation struct {
	Recommended      bool   `json:"recommended"`
	RecommendedLevel int    `json:"recommended_level,omitempty"`
	HardStop         bool   `json:"hard_stop"`
	Rationale        string `json:"rationale"`
}

// RecommendStallDrop decides whether a stalled user should drop one level.
// It requires the current level to have been held for at least 14 days, and
// it refuses to drop below the lowest tier: once the lowest tier has been
// held past the configured maximum, the verdict is a hard stop that tells the
// caller to re-evaluate the plan.
func RecommendStallDrop(currentLevel int, levelHeldSince time.Time, stalled bool, now time.Time, location *time.Location) DropRecommendation {
	if !stalled {
		return DropRecommendation{
			Rationale: "Kein Stillstand erkannt. Bleib bei deinem aktuellen Level.",
		}
	}

	heldDays := DaysBetween(DateAtLocation(levelHeldSince, location), DateAtLocation(now, location))
	if heldDays < MinDaysAtLevelForDrop {
		return DropRecommendation{
			Rationale: fmt.Sprintf(
				"Du bist erst seit %d Tagen auf Level %d. Warte mindestens %d Tage, bevor du das Level wechselst.",
				heldDays, currentLevel, MinDaysAtLevelForDrop,
			),
		}
	}

	if currentLevel >= models.LowestLevel {
		if heldDays > MaxDaysAtLowestLevel {
			return DropRecommendation{
				HardStop: true,
				Rationale: fmt.Sprintf(
					"Du bist seit %d Tagen auf dem niedrigsten Level und stagnierst weiterhin. Bitte überprüfe deinen Plan, ein weiteres Absenken ist nicht vorgesehen.",
					heldDays,
				),
			}
		}
		return DropRecommendation{
			Rationale: "Level 5 ist das niedrigste Level. Ein weiteres Absenken ist nicht möglich.",
		}
	}

	return DropRecommendation{
		Recommended:      true,
		RecommendedLevel: currentLevel + 1,
		Rationale: fmt.Sprintf(
			"Stillstand seit mindestens %d Tagen auf Level %d. Empfehlung: wechsle auf Level %d.",
			MinDaysAtLevelForDrop, currentLevel, currentLevel+1,
		),
	}
}
