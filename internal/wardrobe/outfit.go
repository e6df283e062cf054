package wardrobe

import (
	"github.com/mmynk/littlewardrobe/internal/models"
)

// Temperature thresholds in °C. Each is exclusive: exactly 25°C is Spring.
const (
	summerAbove = 25.0
	springAbove = 15.0
	fallAbove   = 5.0

	// Outerwear is added below this temperature.
	outerwearBelow = 18.0
)

// Rand picks a uniform index in [0, n). *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// RandFunc adapts a plain function to Rand.
type RandFunc func(n int) int

func (f RandFunc) IntN(n int) int { return f(n) }

// SeasonForTemperature maps an outdoor temperature to the season whose
// clothes suit it.
func SeasonForTemperature(temperatureC float64) models.Season {
	switch {
	case temperatureC > summerAbove:
		return models.SeasonSummer
	case temperatureC > springAbove:
		return models.SeasonSpring
	case temperatureC > fallAbove:
		return models.SeasonFall
	default:
		return models.SeasonWinter
	}
}

// SuggestOutfit composes an outfit for the given temperature from the
// active items that suit the season (or are tagged AllYear).
//
// A full-body item alone makes an outfit; otherwise a top and a bottom are
// both required. Below 18°C one outerwear item is appended whether or not a
// base outfit was found. An empty result means nothing suitable is available.
func SuggestOutfit(items []models.ClothingItem, temperatureC float64, r Rand) []models.ClothingItem {
	season := SeasonForTemperature(temperatureC)

	pools := make(map[models.Category][]models.ClothingItem)
	for _, item := range items {
		if item.IsArchived {
			continue
		}
		if !item.HasSeason(season) && !item.HasSeason(models.SeasonAllYear) {
			continue
		}
		pools[item.Category] = append(pools[item.Category], item)
	}

	var outfit []models.ClothingItem
	fullBody, tops, bottoms := pools[models.CategoryFullBody], pools[models.CategoryTop], pools[models.CategoryBottom]
	switch {
	case len(fullBody) > 0:
		outfit = append(outfit, pick(fullBody, r))
	case len(tops) > 0 && len(bottoms) > 0:
		outfit = append(outfit, pick(tops, r), pick(bottoms, r))
	}

	if outerwear := pools[models.CategoryOuterwear]; temperatureC < outerwearBelow && len(outerwear) > 0 {
		outfit = append(outfit, pick(outerwear, r))
	}

	return outfit
}

func pick(pool []models.ClothingItem, r Rand) models.ClothingItem {
	return pool[r.IntN(len(pool))]
}
