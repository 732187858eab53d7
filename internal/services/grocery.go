package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/StephanBK/sloth/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnitTotal is the accumulated quantity of one product in one unit. Different
// units for the same product are never converted into each other; they stay
// side by side ("400 g + 2 stück").
type UnitTotal struct {
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

// AggregatedGroceryItem is one shopping-list line per normalized product
// name. Key is the trimmed, lowercased grouping key; DisplayName is the
// re-capitalized form shown to the user.
type AggregatedGroceryItem struct {
	Key         string      `json:"key"`
	DisplayName string      `json:"display_name"`
	Totals      []UnitTotal `json:"totals"`
	Display     string      `json:"display"`
	Checked     bool        `json:"checked"`
}

// NormalizeProductKey builds the grouping key for a product name.
func NormalizeProductKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AggregateGroceries merges the ingredients of the selected plan days into a
// deduplicated shopping list. Quantities accumulate at full precision per
// (product, unit); rounding to one decimal happens only in the display
// string. The checked set is caller-owned state keyed by normalized name;
// unchecked items sort first by German collation, checked items sink to the
// bottom. An empty plan selection yields an empty list.
func AggregateGroceries(plans []models.MealPlan, checked map[string]bool) []AggregatedGroceryItem {
	totalsByKey := make(map[string]map[string]float64)
	unitOrderByKey := make(map[string][]string)
	keys := make([]string, 0)

	for _, plan := range plans {
		for _, meal := range plan.Meals {
			for _, ingredient := range meal.Ingredients {
				key := NormalizeProductKey(ingredient.ProductName)
				if key == "" {
					continue
				}
				unit := strings.ToLower(strings.TrimSpace(ingredient.Unit))

				byUnit, exists := totalsByKey[key]
				if !exists {
					byUnit = make(map[string]float64)
					totalsByKey[key] = byUnit
					keys = append(keys, key)
				}
				if _, seen := byUnit[unit]; !seen {
					unitOrderByKey[key] = append(unitOrderByKey[key], unit)
				}
				byUnit[unit] += ingredient.Quantity
			}
		}
	}

	items := make([]AggregatedGroceryItem, 0, len(keys))
	for _, key := range keys {
		totals := make([]UnitTotal, 0, len(unitOrderByKey[key]))
		for _, unit := range unitOrderByKey[key] {
			totals = append(totals, UnitTotal{Unit: unit, Quantity: totalsByKey[key][unit]})
		}
		items = append(items, AggregatedGroceryItem{
			Key:         key,
			DisplayName: capitalizeFirst(key),
			Totals:      totals,
			Display:     formatUnitTotals(totals),
			Checked:     checked[key],
		})
	}

	SortGroceryItems(items)
	return items
}

// SameDaySelection reports whether two day selections cover the same set of
// days. Order and duplicates do not matter. Checked state belongs to one
// selection; once the selection changes it must be discarded.
func SameDaySelection(current []int, previous []int) bool {
	currentSet := make(map[int]bool, len(current))
	for _, dayNumber := range current {
		currentSet[dayNumber] = true
	}
	previousSet := make(map[int]bool, len(previous))
	for _, dayNumber := range previous {
		previousSet[dayNumber] = true
	}
	if len(currentSet) != len(previousSet) {
		return false
	}
	for dayNumber := range currentSet {
		if !previousSet[dayNumber] {
			return false
		}
	}
	return true
}

// SortGroceryItems orders unchecked items first, alphabetically by display
// name under German collation; checked items follow, in the same order.
func SortGroceryItems(items []AggregatedGroceryItem) {
	collator := collate.New(language.German, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Checked != items[j].Checked {
			return !items[i].Checked
		}
		return collator.CompareString(items[i].DisplayName, items[j].DisplayName) < 0
	})
}

func capitalizeFirst(value string) string {
	if value == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + value[size:]
}

func formatUnitTotals(totals []UnitTotal) string {
	parts := make([]string, 0, len(totals))
	for _, total := range totals {
		parts = append(parts, fmt.Sprintf("%s %s", formatQuantity(total.Quantity), total.Unit))
	}
	return strings.Join(parts, " + ")
}

// formatQuantity rounds to one decimal and drops a trailing ".0" so piece
// counts stay integral ("2 stück", not "2.0 stück").
func formatQuantity(quantity float64) string {
	rounded := roundToTenth(quantity)
	if rounded == float64(int64(rounded)) {
		return strconv.FormatInt(int64(rounded), 10)
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
