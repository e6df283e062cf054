// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/littlewardrobe/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ItemFilter narrows ListItems. Zero values mean "any".
type ItemFilter struct {
	Category models.Category
	Season   models.Season

	// IncludeArchived returns archived items alongside active ones.
	IncludeArchived bool

	// ArchivedOnly returns only archived items. It wins over IncludeArchived.
	ArchivedOnly bool
}

// Store defines the interface for wardrobe storage operations.
// The recommendation engine never talks to it directly; the service layer
// loads snapshots from the store and passes them in.
type Store interface {
	// CreateItem persists a new item.
	// ID and DateAdded are populated by the store when empty.
	CreateItem(ctx context.Context, item *models.ClothingItem) error

	// GetItem retrieves an item by its ID.
	// Returns an error wrapping ErrNotFound if the item does not exist.
	GetItem(ctx context.Context, itemID string) (*models.ClothingItem, error)

	// UpdateItem replaces an existing item, including its seasons.
	UpdateItem(ctx context.Context, item *models.ClothingItem) error

	// DeleteItem removes an item and its season tags.
	DeleteItem(ctx context.Context, itemID string) error

	// ListItems returns items matching filter, oldest first.
	ListItems(ctx context.Context, filter ItemFilter) ([]models.ClothingItem, error)

	// ArchiveItems marks the given items archived and returns how many changed.
	ArchiveItems(ctx context.Context, itemIDs []string) (int, error)

	// GetProfile returns the child profile, or an error wrapping ErrNotFound
	// before one has been saved.
	GetProfile(ctx context.Context) (*models.ChildProfile, error)

	// SaveProfile creates or replaces the child profile.
	SaveProfile(ctx context.Context, profile *models.ChildProfile) error

	// GetSettings returns the saved settings, or an error wrapping ErrNotFound.
	GetSettings(ctx context.Context) (*models.Settings, error)

	// SaveSettings creates or replaces the settings.
	SaveSettings(ctx context.Context, settings *models.Settings) error

	// Close releases any resources held by the store.
	Close() error
}
