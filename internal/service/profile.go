package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/littlewardrobe/internal/storage"
	"github.com/mmynk/littlewardrobe/internal/wardrobe"
	"github.com/mmynk/littlewardrobe/pkg/api"
)

// GetProfile returns the child profile with the current age breakdown.
func (s *WardrobeService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	profile, birth, err := s.birthDate(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	age := wardrobe.AgeBreakdown(birth, s.now())
	return connect.NewResponse(&api.GetProfileResponse{
		Profile: profile,
		Age:     &age,
		AgeText: age.String(),
	}), nil
}

// SaveProfile validates and stores the child profile.
func (s *WardrobeService) SaveProfile(ctx context.Context, req *connect.Request[api.SaveProfileRequest]) (*connect.Response[api.SaveProfileResponse], error) {
	profile := req.Msg.Profile
	profile.Name = strings.TrimSpace(profile.Name)
	profile.BirthDate = strings.TrimSpace(profile.BirthDate)

	birth, err := wardrobe.ParseDate(profile.BirthDate)
	if err != nil {
		return nil, toConnectError(err)
	}
	if birth.After(s.now()) {
		return nil, toConnectError(invalidf("birth date %s is in the future", profile.BirthDate))
	}
	// Store the canonical calendar form.
	profile.BirthDate = birth.Format("2006-01-02")

	if err := s.store.SaveProfile(ctx, &profile); err != nil {
		slog.Error("SaveProfile failed", "error", err)
		return nil, toConnectError(err)
	}
	slog.Info("Profile saved", "name", profile.Name)
	return connect.NewResponse(&api.SaveProfileResponse{Profile: &profile}), nil
}

// GetSettings returns the saved settings or the defaults.
func (s *WardrobeService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	settings, err := s.settings(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetSettingsResponse{Settings: &settings}), nil
}

// SaveSettings validates and stores the settings.
func (s *WardrobeService) SaveSettings(ctx context.Context, req *connect.Request[api.SaveSettingsRequest]) (*connect.Response[api.SaveSettingsResponse], error) {
	settings := req.Msg.Settings
	if settings.GraceMonths < 0 {
		return nil, toConnectError(invalidf("graceMonths must not be negative"))
	}
	if lat := settings.Location.Latitude; lat < -90 || lat > 90 {
		return nil, toConnectError(invalidf("latitude %v out of range", lat))
	}
	if lon := settings.Location.Longitude; lon < -180 || lon > 180 {
		return nil, toConnectError(invalidf("longitude %v out of range", lon))
	}
	settings.Location.Name = strings.TrimSpace(settings.Location.Name)

	if err := s.store.SaveSettings(ctx, &settings); err != nil {
		slog.Error("SaveSettings failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SaveSettingsResponse{Settings: &settings}), nil
}

// requireProfile turns a missing profile into a precondition failure.
func requireProfile(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return errNoProfile
	}
	return err
}
