package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/littlewardrobe/internal/storage"
	"github.com/mmynk/littlewardrobe/internal/wardrobe"
	"github.com/mmynk/littlewardrobe/pkg/api"
)

// CheckOutgrown lists active items the child has likely outgrown.
func (s *WardrobeService) CheckOutgrown(ctx context.Context, req *connect.Request[api.CheckOutgrownRequest]) (*connect.Response[api.CheckOutgrownResponse], error) {
	today, err := s.today(req.Msg.Today)
	if err != nil {
		return nil, toConnectError(err)
	}

	_, birth, err := s.birthDate(ctx)
	if err != nil {
		return nil, toConnectError(requireProfile(err))
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	grace := settings.GraceMonths
	if req.Msg.GraceMonths != nil {
		grace = *req.Msg.GraceMonths
	}
	if grace < 0 {
		return nil, toConnectError(invalidf("graceMonths must not be negative"))
	}

	items, err := s.store.ListItems(ctx, storage.ItemFilter{})
	if err != nil {
		return nil, toConnectError(err)
	}

	outgrown := wardrobe.FindOutgrown(items, birth, today, grace)
	s.metrics.SetOutgrown(len(outgrown))
	slog.Debug("Outgrown check",
		"age_months", wardrobe.AgeInMonths(birth, today),
		"grace_months", grace,
		"active_items", len(items),
		"outgrown", len(outgrown),
	)

	return connect.NewResponse(&api.CheckOutgrownResponse{
		Age:         wardrobe.AgeBreakdown(birth, today),
		AgeInMonths: wardrobe.AgeInMonths(birth, today),
		GraceMonths: grace,
		Items:       nonNil(outgrown),
	}), nil
}

// SuggestOutfit picks an outfit for the given temperature, or for the
// current weather at the configured location.
func (s *WardrobeService) SuggestOutfit(ctx context.Context, req *connect.Request[api.SuggestOutfitRequest]) (*connect.Response[api.SuggestOutfitResponse], error) {
	resp := &api.SuggestOutfitResponse{}

	if req.Msg.TemperatureC != nil {
		resp.TemperatureC = *req.Msg.TemperatureC
	} else {
		settings, err := s.settings(ctx)
		if err != nil {
			return nil, toConnectError(err)
		}
		report, err := s.currentWeather(ctx, settings.Location)
		if err != nil {
			slog.Warn("SuggestOutfit: weather unavailable", "error", err)
			return nil, toConnectError(upstream(errWeatherUnavailable, err))
		}
		resp.Weather = report
		resp.TemperatureC = report.TemperatureC
	}

	items, err := s.store.ListItems(ctx, storage.ItemFilter{})
	if err != nil {
		return nil, toConnectError(err)
	}

	resp.Season = wardrobe.SeasonForTemperature(resp.TemperatureC)
	resp.Items = nonNil(wardrobe.SuggestOutfit(items, resp.TemperatureC, s.rand))
	return connect.NewResponse(resp), nil
}

// GetDashboard assembles the home screen. Missing profile or weather
// degrade to notices instead of failing the call.
func (s *WardrobeService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	today, err := s.today(req.Msg.Today)
	if err != nil {
		return nil, toConnectError(err)
	}
	settings, err := s.settings(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	items, err := s.store.ListItems(ctx, storage.ItemFilter{})
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &api.GetDashboardResponse{
		ActiveItems: len(items),
		Outfit:      nonNil(nil),
		Outgrown:    nonNil(nil),
	}

	profile, birth, err := s.birthDate(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		resp.Notices = append(resp.Notices, "Add your child's birth date to check for outgrown clothes.")
	case err != nil:
		var dateErr *wardrobe.InvalidDateError
		if !errors.As(err, &dateErr) {
			return nil, toConnectError(err)
		}
		resp.Notices = append(resp.Notices, fmt.Sprintf("Saved birth date %q is not a valid date.", dateErr.Value))
	default:
		age := wardrobe.AgeBreakdown(birth, today)
		resp.Profile = profile
		resp.Age = &age
		resp.AgeText = age.String()
		resp.Outgrown = nonNil(wardrobe.FindOutgrown(items, birth, today, settings.GraceMonths))
		s.metrics.SetOutgrown(len(resp.Outgrown))
	}

	report, err := s.currentWeather(ctx, settings.Location)
	if err != nil {
		slog.Warn("GetDashboard: weather unavailable", "error", err)
		resp.Notices = append(resp.Notices, "Weather is unavailable, so no outfit could be suggested.")
	} else {
		resp.Weather = report
		resp.Season = wardrobe.SeasonForTemperature(report.TemperatureC)
		resp.Outfit = nonNil(wardrobe.SuggestOutfit(items, report.TemperatureC, s.rand))
	}

	return connect.NewResponse(resp), nil
}
