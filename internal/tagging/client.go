// Package tagging asks a Gemini-compatible vision model to catalog a
// garment photo.
package tagging

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mmynk/littlewardrobe/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
)

// ErrEmptyResponse is returned when the model produced no candidates.
var ErrEmptyResponse = errors.New("empty response from tagging model")

// Analyzer infers item metadata from a photo.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*models.ItemAnalysis, error)
}

// Config configures a Client. Zero values fall back to defaults.
type Config struct {
	BaseURL           string
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
}

// APIError is returned when the model API answers with a non-200 status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tagging API error %d: %s", e.StatusCode, e.Body)
}

// Client is the Gemini generateContent client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Analyzer = (*Client)(nil)

// NewClient creates a new tagging client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	}
	return &Client{
		apiKey:     cfg.APIKey,
		apiURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Analyze sends the image to the model and normalizes its answer.
func (c *Client) Analyze(ctx context.Context, image []byte, mimeType string) (*models.ItemAnalysis, error) {
	if len(image) == 0 {
		return nil, errors.New("image is empty")
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tagging rate limit: %w", err)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: buildPrompt()},
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			},
		}},
		GenerationConfig: &generationConfig{Temperature: 0.2, ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// The key travels in a header so it never shows up in URL errors.
	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call tagging API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode tagging response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	var tagged taggedItem
	text := stripCodeFence(result.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), &tagged); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	analysis := normalize(tagged)
	slog.Debug("Image analyzed",
		"category", analysis.Category,
		"size_label", analysis.SizeLabel,
		"seasons", analysis.Seasons,
	)
	return analysis, nil
}

// normalize maps free-form model output onto the closed vocabularies.
// Unknown categories become Accessory and unknown or missing seasons AllYear.
func normalize(t taggedItem) *models.ItemAnalysis {
	category, err := models.ParseCategory(t.Category)
	if err != nil {
		category = models.CategoryAccessory
	}

	var seasons []models.Season
	seen := make(map[models.Season]bool)
	for _, s := range t.Seasons {
		season, err := models.ParseSeason(s)
		if err != nil || seen[season] {
			continue
		}
		seen[season] = true
		seasons = append(seasons, season)
	}
	if len(seasons) == 0 {
		seasons = []models.Season{models.SeasonAllYear}
	}

	crop := models.CropRegion{
		X:      clamp01(t.Crop.X),
		Y:      clamp01(t.Crop.Y),
		Width:  clamp01(t.Crop.Width),
		Height: clamp01(t.Crop.Height),
	}
	crop.Width = min(crop.Width, 1-crop.X)
	crop.Height = min(crop.Height, 1-crop.Y)
	if crop.Width == 0 || crop.Height == 0 {
		// No usable box: keep the whole image.
		crop = models.CropRegion{Width: 1, Height: 1}
	}

	return &models.ItemAnalysis{
		Category:    category,
		Seasons:     seasons,
		SizeLabel:   strings.TrimSpace(t.SizeLabel),
		Brand:       strings.TrimSpace(t.Brand),
		Color:       strings.TrimSpace(t.Color),
		Description: strings.TrimSpace(t.Description),
		Crop:        crop,
	}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
