package tagging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmynk/littlewardrobe/internal/models"
)

func modelReply(t *testing.T, text string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{Candidates: []candidate{{Content: content{Parts: []part{{Text: text}}}}}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func TestClient_Analyze(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "secret" {
			t.Errorf("missing api key header")
		}
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		modelReply(t, "```json\n"+`{"category":"top","seasons":["summer","Spring","summer"],"sizeLabel":" 2T ","brand":"Gap","color":"yellow","description":"striped tee","crop":{"x":0.1,"y":0.2,"width":0.5,"height":0.6}}`+"\n```")(w, r)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret", Model: "test-model"})
	got, err := client.Analyze(context.Background(), []byte("fake-jpeg"), "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if got.Category != models.CategoryTop {
		t.Errorf("Category = %s, want Top", got.Category)
	}
	if len(got.Seasons) != 2 || got.Seasons[0] != models.SeasonSummer || got.Seasons[1] != models.SeasonSpring {
		t.Errorf("Seasons = %v, want [Summer Spring]", got.Seasons)
	}
	if got.SizeLabel != "2T" || got.Brand != "Gap" || got.Color != "yellow" {
		t.Errorf("unexpected fields: %+v", got)
	}
	if got.Crop != (models.CropRegion{X: 0.1, Y: 0.2, Width: 0.5, Height: 0.6}) {
		t.Errorf("Crop = %+v", got.Crop)
	}

	if len(captured.Contents) != 1 || len(captured.Contents[0].Parts) != 2 {
		t.Fatalf("unexpected request shape: %+v", captured)
	}
	img := captured.Contents[0].Parts[1].InlineData
	if img == nil || img.MimeType != "image/jpeg" || img.Data != "ZmFrZS1qcGVn" {
		t.Errorf("inline image not sent correctly: %+v", img)
	}
}

func TestClient_Analyze_Errors(t *testing.T) {
	t.Run("empty image", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "http://unused"})
		if _, err := client.Analyze(context.Background(), nil, "image/png"); err == nil {
			t.Error("expected error for empty image")
		}
	})

	t.Run("api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := NewClient(Config{BaseURL: server.URL}).Analyze(context.Background(), []byte("x"), "image/png")
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("expected 429 APIError, got %v", err)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[]}`)
		}))
		defer server.Close()

		_, err := NewClient(Config{BaseURL: server.URL}).Analyze(context.Background(), []byte("x"), "image/png")
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("model output not json", func(t *testing.T) {
		server := httptest.NewServer(modelReply(t, "I think it's a shirt"))
		defer server.Close()

		if _, err := NewClient(Config{BaseURL: server.URL}).Analyze(context.Background(), []byte("x"), "image/png"); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestNormalize(t *testing.T) {
	var tagged taggedItem
	tagged.Category = "cape"
	tagged.Seasons = []string{"monsoon"}
	tagged.Crop.X = 0.8
	tagged.Crop.Y = -0.5
	tagged.Crop.Width = 0.5
	tagged.Crop.Height = 3

	got := normalize(tagged)
	if got.Category != models.CategoryAccessory {
		t.Errorf("Category = %s, want Accessory", got.Category)
	}
	if len(got.Seasons) != 1 || got.Seasons[0] != models.SeasonAllYear {
		t.Errorf("Seasons = %v, want [AllYear]", got.Seasons)
	}
	if got.Crop.X != 0.8 || got.Crop.Y != 0 || got.Crop.Height != 1 {
		t.Errorf("Crop = %+v", got.Crop)
	}
	if got.Crop.X+got.Crop.Width > 1.0000001 {
		t.Errorf("crop overflows image: %+v", got.Crop)
	}

	if full := normalize(taggedItem{Category: "Shoes"}); full.Crop != (models.CropRegion{Width: 1, Height: 1}) {
		t.Errorf("missing crop should cover the image, got %+v", full.Crop)
	}
}

func TestClient_Analyze_ErrorHidesAPIKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: baseURL, APIKey: "SECRET-KEY-123", Model: "test-model"})
	_, err := client.Analyze(context.Background(), []byte("x"), "image/png")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if strings.Contains(err.Error(), "SECRET-KEY-123") {
		t.Errorf("error leaks api key: %v", err)
	}
}
