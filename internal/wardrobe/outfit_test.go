package wardrobe

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/mmynk/littlewardrobe/internal/models"
)

func item(id string, category models.Category, seasons ...models.Season) models.ClothingItem {
	return models.ClothingItem{ID: id, Category: category, Seasons: seasons}
}

// first always picks index 0.
var first = RandFunc(func(int) int { return 0 })

func TestSeasonForTemperature(t *testing.T) {
	tests := []struct {
		temp float64
		want models.Season
	}{
		{35, models.SeasonSummer},
		{25.1, models.SeasonSummer},
		{25, models.SeasonSpring},
		{15.5, models.SeasonSpring},
		{15, models.SeasonFall},
		{5.01, models.SeasonFall},
		{5, models.SeasonWinter},
		{-10, models.SeasonWinter},
	}
	for _, tt := range tests {
		if got := SeasonForTemperature(tt.temp); got != tt.want {
			t.Errorf("SeasonForTemperature(%v) = %s, want %s", tt.temp, got, tt.want)
		}
	}
}

func TestSuggestOutfit(t *testing.T) {
	tests := []struct {
		name  string
		items []models.ClothingItem
		temp  float64
		want  []string
	}{
		{
			name: "single full body in summer",
			items: []models.ClothingItem{
				item("romper", models.CategoryFullBody, models.SeasonSummer),
				item("coat", models.CategoryOuterwear, models.SeasonSummer),
				item("tee", models.CategoryTop, models.SeasonWinter),
			},
			temp: 30,
			want: []string{"romper"},
		},
		{
			name: "top bottom and outerwear in the cold",
			items: []models.ClothingItem{
				item("sweater", models.CategoryTop, models.SeasonFall),
				item("jeans", models.CategoryBottom, models.SeasonAllYear),
				item("jacket", models.CategoryOuterwear, models.SeasonFall, models.SeasonWinter),
			},
			temp: 10,
			want: []string{"sweater", "jeans", "jacket"},
		},
		{
			name: "outerwear alone when nothing else fits",
			items: []models.ClothingItem{
				item("parka", models.CategoryOuterwear, models.SeasonWinter),
				item("shorts", models.CategoryBottom, models.SeasonSummer),
			},
			temp: 0,
			want: []string{"parka"},
		},
		{
			name: "no matching season and no all-year items",
			items: []models.ClothingItem{
				item("tank", models.CategoryTop, models.SeasonSummer),
				item("shorts", models.CategoryBottom, models.SeasonSummer),
				item("parka", models.CategoryOuterwear, models.SeasonWinter),
			},
			temp: 20,
			want: nil,
		},
		{
			name: "top without bottom is not an outfit",
			items: []models.ClothingItem{
				item("tee", models.CategoryTop, models.SeasonSpring),
			},
			temp: 20,
			want: nil,
		},
		{
			name: "full body wins over top and bottom",
			items: []models.ClothingItem{
				item("tee", models.CategoryTop, models.SeasonAllYear),
				item("leggings", models.CategoryBottom, models.SeasonAllYear),
				item("overalls", models.CategoryFullBody, models.SeasonAllYear),
			},
			temp: 22,
			want: []string{"overalls"},
		},
		{
			name: "archived items are ignored",
			items: []models.ClothingItem{
				{ID: "old-romper", Category: models.CategoryFullBody, Seasons: []models.Season{models.SeasonSummer}, IsArchived: true},
				item("tee", models.CategoryTop, models.SeasonSummer),
				item("shorts", models.CategoryBottom, models.SeasonSummer),
			},
			temp: 28,
			want: []string{"tee", "shorts"},
		},
		{
			name: "no outerwear at 18 degrees",
			items: []models.ClothingItem{
				item("dress", models.CategoryFullBody, models.SeasonSpring),
				item("cardigan", models.CategoryOuterwear, models.SeasonSpring),
			},
			temp: 18,
			want: []string{"dress"},
		},
		{
			name: "outerwear just below 18 degrees",
			items: []models.ClothingItem{
				item("dress", models.CategoryFullBody, models.SeasonSpring),
				item("cardigan", models.CategoryOuterwear, models.SeasonSpring),
			},
			temp: 17.9,
			want: []string{"dress", "cardigan"},
		},
		{
			name: "shoes and accessories are never picked",
			items: []models.ClothingItem{
				item("boots", models.CategoryShoes, models.SeasonAllYear),
				item("hat", models.CategoryAccessory, models.SeasonAllYear),
			},
			temp: 3,
			want: nil,
		},
		{
			name:  "empty wardrobe",
			items: nil,
			temp:  12,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SuggestOutfit(tt.items, tt.temp, first))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestOutfit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuggestOutfit_UsesInjectedRand(t *testing.T) {
	items := []models.ClothingItem{
		item("tee-1", models.CategoryTop, models.SeasonWinter),
		item("tee-2", models.CategoryTop, models.SeasonWinter),
		item("pants-1", models.CategoryBottom, models.SeasonWinter),
		item("pants-2", models.CategoryBottom, models.SeasonWinter),
		item("pants-3", models.CategoryBottom, models.SeasonWinter),
		item("coat-1", models.CategoryOuterwear, models.SeasonWinter),
		item("coat-2", models.CategoryOuterwear, models.SeasonWinter),
	}

	var sizes []int
	last := RandFunc(func(n int) int {
		sizes = append(sizes, n)
		return n - 1
	})

	got := ids(SuggestOutfit(items, -2, last))
	want := []string{"tee-2", "pants-3", "coat-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestOutfit = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(sizes, []int{2, 3, 2}) {
		t.Errorf("draw pool sizes = %v, want [2 3 2]", sizes)
	}
}

func TestSuggestOutfit_Membership(t *testing.T) {
	items := []models.ClothingItem{
		item("tee-1", models.CategoryTop, models.SeasonFall),
		item("tee-2", models.CategoryTop, models.SeasonAllYear),
		item("tank", models.CategoryTop, models.SeasonSummer),
		item("pants-1", models.CategoryBottom, models.SeasonFall),
		item("pants-2", models.CategoryBottom, models.SeasonFall, models.SeasonWinter),
		item("coat", models.CategoryOuterwear, models.SeasonFall),
	}
	allowedTops := map[string]bool{"tee-1": true, "tee-2": true}
	allowedBottoms := map[string]bool{"pants-1": true, "pants-2": true}

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		got := SuggestOutfit(items, 8, r)
		if len(got) != 3 {
			t.Fatalf("run %d: got %d items, want 3", i, len(got))
		}
		if !allowedTops[got[0].ID] {
			t.Errorf("run %d: top %s not eligible", i, got[0].ID)
		}
		if !allowedBottoms[got[1].ID] {
			t.Errorf("run %d: bottom %s not eligible", i, got[1].ID)
		}
		if got[2].ID != "coat" {
			t.Errorf("run %d: outerwear = %s, want coat", i, got[2].ID)
		}
	}
}
