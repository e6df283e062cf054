// Package api defines the WardrobeService RPC surface: request and response
// messages, the JSON codec they travel in, and the Connect handler and
// client constructors.
package api

import (
	"github.com/mmynk/littlewardrobe/internal/models"
	"github.com/mmynk/littlewardrobe/internal/wardrobe"
)

type ListItemsRequest struct {
	Category        string `json:"category,omitempty"`
	Season          string `json:"season,omitempty"`
	IncludeArchived bool   `json:"includeArchived,omitempty"`
	ArchivedOnly    bool   `json:"archivedOnly,omitempty"`
}

type ListItemsResponse struct {
	Items []models.ClothingItem `json:"items"`
}

type GetItemRequest struct {
	ID string `json:"id"`
}

type GetItemResponse struct {
	Item *models.ClothingItem `json:"item"`
}

type CreateItemRequest struct {
	Item models.ClothingItem `json:"item"`
}

type CreateItemResponse struct {
	Item *models.ClothingItem `json:"item"`
}

type UpdateItemRequest struct {
	Item models.ClothingItem `json:"item"`
}

type UpdateItemResponse struct {
	Item *models.ClothingItem `json:"item"`
}

type DeleteItemRequest struct {
	ID string `json:"id"`
}

type DeleteItemResponse struct{}

// ArchiveItemsRequest is sent when the user accepts an outgrown list.
type ArchiveItemsRequest struct {
	IDs []string `json:"ids"`
}

type ArchiveItemsResponse struct {
	Archived int `json:"archived"`
}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile *models.ChildProfile `json:"profile"`
	Age     *wardrobe.Age        `json:"age,omitempty"`
	AgeText string               `json:"ageText,omitempty"`
}

type SaveProfileRequest struct {
	Profile models.ChildProfile `json:"profile"`
}

type SaveProfileResponse struct {
	Profile *models.ChildProfile `json:"profile"`
}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings *models.Settings `json:"settings"`
}

type SaveSettingsRequest struct {
	Settings models.Settings `json:"settings"`
}

type SaveSettingsResponse struct {
	Settings *models.Settings `json:"settings"`
}

// CheckOutgrownRequest optionally pins the date ("2006-01-02") and the
// grace buffer; both default to the server's clock and settings.
type CheckOutgrownRequest struct {
	Today       string `json:"today,omitempty"`
	GraceMonths *int   `json:"graceMonths,omitempty"`
}

type CheckOutgrownResponse struct {
	Age         wardrobe.Age          `json:"age"`
	AgeInMonths int                   `json:"ageInMonths"`
	GraceMonths int                   `json:"graceMonths"`
	Items       []models.ClothingItem `json:"items"`
}

// SuggestOutfitRequest uses the current weather when TemperatureC is nil.
type SuggestOutfitRequest struct {
	TemperatureC *float64 `json:"temperatureC,omitempty"`
}

type SuggestOutfitResponse struct {
	Season       models.Season         `json:"season"`
	TemperatureC float64               `json:"temperatureC"`
	Weather      *models.WeatherReport `json:"weather,omitempty"`
	Items        []models.ClothingItem `json:"items"`
}

type GetDashboardRequest struct {
	Today string `json:"today,omitempty"`
}

// GetDashboardResponse bundles everything the home screen shows. Sections
// that cannot be computed (no profile yet, weather unavailable) are left
// empty and explained in Notices rather than failing the whole call.
type GetDashboardResponse struct {
	Profile     *models.ChildProfile  `json:"profile,omitempty"`
	Age         *wardrobe.Age         `json:"age,omitempty"`
	AgeText     string                `json:"ageText,omitempty"`
	ActiveItems int                   `json:"activeItems"`
	Weather     *models.WeatherReport `json:"weather,omitempty"`
	Season      models.Season         `json:"season,omitempty"`
	Outfit      []models.ClothingItem `json:"outfit"`
	Outgrown    []models.ClothingItem `json:"outgrown"`
	Notices     []string              `json:"notices,omitempty"`
}

type AnalyzeImageRequest struct {
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType,omitempty"`
}

type AnalyzeImageResponse struct {
	Analysis *models.ItemAnalysis `json:"analysis"`
}
