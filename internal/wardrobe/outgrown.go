package wardrobe

import (
	"time"

	"github.com/mmynk/littlewardrobe/internal/models"
)

// DefaultGraceMonths is the tolerance used when the household has not
// configured one.
const DefaultGraceMonths = 1

// FindOutgrown returns the active items the child has likely outgrown,
// in their original order. An item is outgrown when the child's age in
// months exceeds the size's upper bound plus graceMonths. Items with an
// unrecognised size label are never returned.
func FindOutgrown(items []models.ClothingItem, birth, today time.Time, graceMonths int) []models.ClothingItem {
	age := AgeInMonths(birth, today)

	var outgrown []models.ClothingItem
	for _, item := range items {
		if item.IsArchived {
			continue
		}
		maxMonths, ok := ParseSizeToMaxMonths(item.SizeLabel)
		if !ok {
			continue
		}
		// Compare the overshoot rather than maxMonths+graceMonths, which can wrap.
		if age > maxMonths && age-maxMonths > graceMonths {
			outgrown = append(outgrown, item)
		}
	}
	return outgrown
}
