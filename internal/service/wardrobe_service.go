package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/littlewardrobe/internal/metrics"
	"github.com/mmynk/littlewardrobe/internal/models"
	"github.com/mmynk/littlewardrobe/internal/storage"
	"github.com/mmynk/littlewardrobe/internal/tagging"
	"github.com/mmynk/littlewardrobe/internal/wardrobe"
	"github.com/mmynk/littlewardrobe/internal/weather"
	"github.com/mmynk/littlewardrobe/pkg/api"
)

// WardrobeService implements api.WardrobeServiceHandler. It loads snapshots
// from the store and hands them to the pure functions in package wardrobe.
type WardrobeService struct {
	store    storage.Store
	weather  weather.Provider
	tagger   tagging.Analyzer
	metrics  *metrics.Metrics
	now      func() time.Time
	rand     wardrobe.Rand
	defaults models.Settings
}

var _ api.WardrobeServiceHandler = (*WardrobeService)(nil)

// Option configures a WardrobeService.
type Option func(*WardrobeService)

// WithWeather sets the provider used when no temperature is supplied.
func WithWeather(p weather.Provider) Option {
	return func(s *WardrobeService) { s.weather = p }
}

// WithTagger sets the image analyzer used by AnalyzeImage.
func WithTagger(a tagging.Analyzer) Option {
	return func(s *WardrobeService) { s.tagger = a }
}

// WithMetrics records outgrown counts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *WardrobeService) { s.metrics = m }
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *WardrobeService) { s.now = now }
}

// WithRand overrides the random source used for outfit picks.
func WithRand(r wardrobe.Rand) Option {
	return func(s *WardrobeService) { s.rand = r }
}

// WithDefaultSettings sets the settings used until the household saves its own.
func WithDefaultSettings(settings models.Settings) Option {
	return func(s *WardrobeService) { s.defaults = settings }
}

// NewWardrobeService creates a new WardrobeService with the given storage backend.
func NewWardrobeService(store storage.Store, opts ...Option) *WardrobeService {
	s := &WardrobeService{
		store: store,
		now:   time.Now,
		// Top-level rand.IntN is safe for concurrent handlers.
		rand:     wardrobe.RandFunc(rand.IntN),
		defaults: models.Settings{GraceMonths: wardrobe.DefaultGraceMonths},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// settings returns the saved settings, or the defaults before any are saved.
func (s *WardrobeService) settings(ctx context.Context) (models.Settings, error) {
	saved, err := s.store.GetSettings(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return s.defaults, nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return *saved, nil
}

// today resolves an optional "today" override against the service clock.
func (s *WardrobeService) today(override string) (time.Time, error) {
	if override == "" {
		return s.now(), nil
	}
	return wardrobe.ParseDate(override)
}

// birthDate loads the profile and parses its birth date.
func (s *WardrobeService) birthDate(ctx context.Context) (*models.ChildProfile, time.Time, error) {
	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	birth, err := wardrobe.ParseDate(profile.BirthDate)
	if err != nil {
		return nil, time.Time{}, err
	}
	return profile, birth, nil
}

func (s *WardrobeService) currentWeather(ctx context.Context, loc models.Location) (*models.WeatherReport, error) {
	if s.weather == nil {
		return nil, errWeatherDisabled
	}
	return s.weather.Current(ctx, loc)
}

var (
	errWeatherDisabled = errors.New("weather provider not configured")
	errTaggingDisabled = errors.New("image tagging not configured")
	errNoProfile       = errors.New("child profile not set")
)

// toConnectError maps domain and storage errors to Connect codes. Upstream
// and internal failures reach the caller as a fixed message; the detail is
// logged here or by the handler.
func toConnectError(err error) error {
	var dateErr *wardrobe.InvalidDateError
	switch {
	case errors.As(err, &dateErr), errors.Is(err, errInvalid):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, errWeatherDisabled), errors.Is(err, errTaggingDisabled), errors.Is(err, errNoProfile):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, context.Canceled)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, context.DeadlineExceeded)
	case errors.Is(err, errWeatherUnavailable):
		return connect.NewError(connect.CodeUnavailable, errWeatherUnavailable)
	case errors.Is(err, errTaggingUnavailable):
		return connect.NewError(connect.CodeUnavailable, errTaggingUnavailable)
	default:
		slog.Error("Internal error", "error", err)
		return connect.NewError(connect.CodeInternal, errInternal)
	}
}

var (
	errWeatherUnavailable = errors.New("weather service unavailable")
	errTaggingUnavailable = errors.New("image tagging service unavailable")
	errInternal           = errors.New("internal error")
)

// upstream tags a collaborator failure with kind unless it already has a
// more specific meaning.
func upstream(kind, err error) error {
	if errors.Is(err, errWeatherDisabled) || errors.Is(err, errTaggingDisabled) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// errInvalid marks request validation failures.
var errInvalid = errors.New("invalid argument")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errInvalid, fmt.Sprintf(format, args...))
}

// nonNil keeps empty lists as [] rather than null on the wire.
func nonNil(items []models.ClothingItem) []models.ClothingItem {
	if items == nil {
		return []models.ClothingItem{}
	}
	return items
}
