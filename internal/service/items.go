package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/littlewardrobe/internal/models"
	"github.com/mmynk/littlewardrobe/internal/storage"
	"github.com/mmynk/littlewardrobe/pkg/api"
)

// ListItems returns wardrobe items, optionally filtered by category and season.
func (s *WardrobeService) ListItems(ctx context.Context, req *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	filter := storage.ItemFilter{
		IncludeArchived: req.Msg.IncludeArchived,
		ArchivedOnly:    req.Msg.ArchivedOnly,
	}
	if req.Msg.Category != "" {
		category, err := models.ParseCategory(req.Msg.Category)
		if err != nil {
			return nil, toConnectError(invalidf("%v", err))
		}
		filter.Category = category
	}
	if req.Msg.Season != "" {
		season, err := models.ParseSeason(req.Msg.Season)
		if err != nil {
			return nil, toConnectError(invalidf("%v", err))
		}
		filter.Season = season
	}

	items, err := s.store.ListItems(ctx, filter)
	if err != nil {
		slog.Error("ListItems failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ListItemsResponse{Items: nonNil(items)}), nil
}

// GetItem retrieves a single item.
func (s *WardrobeService) GetItem(ctx context.Context, req *connect.Request[api.GetItemRequest]) (*connect.Response[api.GetItemResponse], error) {
	if req.Msg.ID == "" {
		return nil, toConnectError(invalidf("id required"))
	}
	item, err := s.store.GetItem(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetItemResponse{Item: item}), nil
}

// CreateItem catalogs a new item.
func (s *WardrobeService) CreateItem(ctx context.Context, req *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	item := req.Msg.Item
	item.ID = ""
	if err := normalizeItem(&item); err != nil {
		return nil, toConnectError(err)
	}
	if item.DateAdded == 0 {
		item.DateAdded = s.now().Unix()
	}

	if err := s.store.CreateItem(ctx, &item); err != nil {
		slog.Error("CreateItem failed", "error", err)
		return nil, toConnectError(err)
	}
	slog.Info("Item created",
		"item_id", item.ID,
		"category", item.Category,
		"size_label", item.SizeLabel,
	)
	return connect.NewResponse(&api.CreateItemResponse{Item: &item}), nil
}

// UpdateItem replaces an existing item. DateAdded is preserved.
func (s *WardrobeService) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	item := req.Msg.Item
	if item.ID == "" {
		return nil, toConnectError(invalidf("item.id required"))
	}
	if err := normalizeItem(&item); err != nil {
		return nil, toConnectError(err)
	}

	existing, err := s.store.GetItem(ctx, item.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	item.DateAdded = existing.DateAdded

	if err := s.store.UpdateItem(ctx, &item); err != nil {
		slog.Error("UpdateItem failed", "item_id", item.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.UpdateItemResponse{Item: &item}), nil
}

// DeleteItem removes an item permanently.
func (s *WardrobeService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	if req.Msg.ID == "" {
		return nil, toConnectError(invalidf("id required"))
	}
	if err := s.store.DeleteItem(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	slog.Info("Item deleted", "item_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteItemResponse{}), nil
}

// ArchiveItems archives items in bulk, typically the accepted outgrown list.
func (s *WardrobeService) ArchiveItems(ctx context.Context, req *connect.Request[api.ArchiveItemsRequest]) (*connect.Response[api.ArchiveItemsResponse], error) {
	n, err := s.store.ArchiveItems(ctx, req.Msg.IDs)
	if err != nil {
		slog.Error("ArchiveItems failed", "error", err)
		return nil, toConnectError(err)
	}
	slog.Info("Items archived", "requested", len(req.Msg.IDs), "archived", n)
	return connect.NewResponse(&api.ArchiveItemsResponse{Archived: n}), nil
}

// normalizeItem canonicalizes the category and seasons of an incoming item.
// Missing seasons default to AllYear.
func normalizeItem(item *models.ClothingItem) error {
	category, err := models.ParseCategory(string(item.Category))
	if err != nil {
		return invalidf("%v", err)
	}
	item.Category = category

	seasons := make([]models.Season, 0, len(item.Seasons))
	seen := make(map[models.Season]bool)
	for _, raw := range item.Seasons {
		season, err := models.ParseSeason(string(raw))
		if err != nil {
			return invalidf("%v", err)
		}
		if !seen[season] {
			seen[season] = true
			seasons = append(seasons, season)
		}
	}
	if len(seasons) == 0 {
		seasons = append(seasons, models.SeasonAllYear)
	}
	item.Seasons = seasons

	item.SizeLabel = strings.TrimSpace(item.SizeLabel)
	item.Brand = strings.TrimSpace(item.Brand)
	item.Color = strings.TrimSpace(item.Color)
	item.Description = strings.TrimSpace(item.Description)
	return nil
}
