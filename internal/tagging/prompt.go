package tagging

import (
	"fmt"
	"strings"

	"github.com/mmynk/littlewardrobe/internal/models"
)

func buildPrompt() string {
	categories := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, string(c))
	}
	seasons := make([]string, 0, len(models.Seasons))
	for _, s := range models.Seasons {
		seasons = append(seasons, string(s))
	}

	return fmt.Sprintf(`You catalog children's clothing from photos.
Look at the garment in the image and reply with a single JSON object:
{
  "category": one of [%s],
  "seasons": array of [%s],
  "sizeLabel": size printed on the tag if visible (e.g. "2T", "6-9M", "NB"), else "",
  "brand": brand if visible, else "",
  "color": main color,
  "description": short description (max 10 words),
  "crop": {"x", "y", "width", "height"} bounding box of the garment as fractions of the image (0 to 1)
}
Reply with JSON only.`, strings.Join(categories, ", "), strings.Join(seasons, ", "))
}
