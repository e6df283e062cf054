package models

import (
	"fmt"
	"strings"
)

// Category is the kind of garment.
type Category string

const (
	CategoryTop       Category = "Top"
	CategoryBottom    Category = "Bottom"
	CategoryFullBody  Category = "FullBody"
	CategoryShoes     Category = "Shoes"
	CategoryOuterwear Category = "Outerwear"
	CategoryAccessory Category = "Accessory"
	CategoryPajamas   Category = "Pajamas"
	CategorySwimwear  Category = "Swimwear"
	CategorySocks     Category = "Socks"
	CategoryDress     Category = "Dress"
	CategorySkirt     Category = "Skirt"
	CategoryUnderwear Category = "Underwear"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryTop,
	CategoryBottom,
	CategoryFullBody,
	CategoryShoes,
	CategoryOuterwear,
	CategoryAccessory,
	CategoryPajamas,
	CategorySwimwear,
	CategorySocks,
	CategoryDress,
	CategorySkirt,
	CategoryUnderwear,
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Season tags when a garment can be worn.
type Season string

const (
	SeasonSpring  Season = "Spring"
	SeasonSummer  Season = "Summer"
	SeasonFall    Season = "Fall"
	SeasonWinter  Season = "Winter"
	SeasonAllYear Season = "AllYear"
)

// Seasons lists every known season.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAllYear}

// ParseSeason matches s case-insensitively against the known seasons.
// "Autumn" is accepted as an alias for Fall.
func ParseSeason(s string) (Season, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "autumn") {
		return SeasonFall, nil
	}
	for _, season := range Seasons {
		if strings.EqualFold(string(season), s) {
			return season, nil
		}
	}
	return "", fmt.Errorf("unknown season %q", s)
}

// ClothingItem is a single garment in the wardrobe.
type ClothingItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	Category Category `json:"category"`

	// Seasons the item applies to. AllYear makes it eligible regardless of weather.
	Seasons []Season `json:"seasons"`

	// SizeLabel is the free-text size as printed on the tag ("2T", "6-9M", "NB").
	SizeLabel string `json:"sizeLabel"`

	Brand       string `json:"brand,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`

	// IsArchived hides the item from outfit suggestions and outgrowth checks.
	IsArchived bool `json:"isArchived"`

	// DateAdded is the Unix timestamp when the item was cataloged.
	DateAdded int64 `json:"dateAdded"`
}

// HasSeason reports whether the item is tagged with season.
func (i *ClothingItem) HasSeason(season Season) bool {
	for _, s := range i.Seasons {
		if s == season {
			return true
		}
	}
	return false
}
