package services

import (
	"math"
	"sort"
	"time"

	"github.com/StephanBK/sloth/internal/models"
)

// WeightHistoryPoint is one point per calendar day on the weight graph,
// either a real measurement or a linearly interpolated value.
type WeightHistoryPoint struct {
	Date           time.Time `json:"date"`
	WeightKg       float64   `json:"weight_kg"`
	IsInterpolated bool      `json:"is_interpolated"`
}

// BuildWeightHistory produces a dense daily series from the first to the last
// real measurement in the given entries. Days without a measurement that fall
// between two real measurements get a linearly interpolated value on the day
// offset; days before the first or after the last measurement are never
// fabricated. Zero entries produce an empty series.
//
// If the one-entry-per-day invariant was violated upstream, the last entry
// for a date wins.
func BuildWeightHistory(entries []models.WeightEntry, location *time.Location) []WeightHistoryPoint {
	if len(entries) == 0 {
		return []WeightHistoryPoint{}
	}

	byDay := weightByDay(entries, location)

	days := make([]time.Time, 0, len(byDay))
	for key := range byDay {
		day, err := time.ParseInLocation("2006-01-02", key, locationOrUTC(location))
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	if len(days) == 0 {
		return []WeightHistoryPoint{}
	}

	firstDay := days[0]
	lastDay := days[len(days)-1]

	history := make([]WeightHistoryPoint, 0, DaysBetween(firstDay, lastDay)+1)
	var previousDay time.Time
	var previousWeight float64

	for cursor := firstDay; !cursor.After(lastDay); cursor = cursor.AddDate(0, 0, 1) {
		key := cursor.Format("2006-01-02")
		if weight, exists := byDay[key]; exists {
			history = append(history, WeightHistoryPoint{
				Date:           cursor,
				WeightKg:       weight,
				IsInterpolated: false,
			})
			previousDay = cursor
			previousWeight = weight
			continue
		}

		nextDay, nextWeight, found := nextMeasuredDay(byDay, cursor, lastDay)
		if !found {
			continue
		}

		elapsed := DaysBetween(previousDay, cursor)
		span := DaysBetween(previousDay, nextDay)
		if span <= 0 {
			continue
		}

		interpolated := previousWeight + (nextWeight-previousWeight)*float64(elapsed)/float64(span)
		history = append(history, WeightHistoryPoint{
			Date:           cursor,
			WeightKg:       roundToTenth(interpolated),
			IsInterpolated: true,
		})
	}

	return history
}

func weightByDay(entries []models.WeightEntry, location *time.Location) map[string]float64 {
	byDay := make(map[string]float64, len(entries))
	for _, entry := range entries {
		key := DateAtLocation(entry.MeasuredAt, location).Format("2006-01-02")
		byDay[key] = entry.WeightKg
	}
	return byDay
}

func nextMeasuredDay(byDay map[string]float64, after time.Time, lastDay time.Time) (time.Time, float64, bool) {
	for cursor := after.AddDate(0, 0, 1); !cursor.After(lastDay); cursor = cursor.AddDate(0, 0, 1) {
		if weight, exists := byDay[cursor.Format("2006-01-02")]; exists {
			return cursor, weight, true
		}
	}
	return time.Time{}, 0, false
}

func locationOrUTC(location *time.Location) *time.Location {
	if location == nil {
		return time.UTC
	}
	return location
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
