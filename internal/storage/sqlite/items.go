package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mmynk/littlewardrobe/internal/models"
	"github.com/mmynk/littlewardrobe/internal/storage"
)

// idBatchSize keeps IN (...) lists below SQLite's bound-parameter limit.
const idBatchSize = 500

var itemColumns = []string{
	"id", "category", "size_label", "brand", "color", "description", "image_url", "is_archived", "date_added",
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateItem persists a new item and its season tags.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.ClothingItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.DateAdded == 0 {
		item.DateAdded = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := s.sb.Insert("items").
		Columns(itemColumns...).
		Values(item.ID, string(item.Category), item.SizeLabel, item.Brand, item.Color,
			item.Description, item.ImageURL, item.IsArchived, item.DateAdded).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	if err := s.insertSeasons(ctx, tx, item.ID, item.Seasons); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetItem retrieves an item by ID, including its seasons.
func (s *SQLiteStore) GetItem(ctx context.Context, itemID string) (*models.ClothingItem, error) {
	items, err := s.queryItems(ctx, s.sb.Select(itemColumns...).From("items").Where(sq.Eq{"id": itemID}))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("item not found: %s: %w", itemID, storage.ErrNotFound)
	}
	return &items[0], nil
}

// UpdateItem replaces all fields of an existing item.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.ClothingItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := s.sb.Update("items").
		SetMap(map[string]any{
			"category":    string(item.Category),
			"size_label":  item.SizeLabel,
			"brand":       item.Brand,
			"color":       item.Color,
			"description": item.Description,
			"image_url":   item.ImageURL,
			"is_archived": item.IsArchived,
		}).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	} else if n == 0 {
		return fmt.Errorf("item not found: %s: %w", item.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM item_seasons WHERE item_id = ?", item.ID); err != nil {
		return fmt.Errorf("failed to clear seasons: %w", err)
	}
	if err := s.insertSeasons(ctx, tx, item.ID, item.Seasons); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteItem removes an item. Its seasons go with it.
func (s *SQLiteStore) DeleteItem(ctx context.Context, itemID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM item_seasons WHERE item_id = ?", itemID); err != nil {
		return fmt.Errorf("failed to delete seasons: %w", err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM items WHERE id = ?", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	} else if n == 0 {
		return fmt.Errorf("item not found: %s: %w", itemID, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListItems returns the items matching filter ordered by date added.
func (s *SQLiteStore) ListItems(ctx context.Context, filter storage.ItemFilter) ([]models.ClothingItem, error) {
	q := s.sb.Select(itemColumns...).From("items").OrderBy("date_added", "id")

	switch {
	case filter.ArchivedOnly:
		q = q.Where(sq.Eq{"is_archived": true})
	case !filter.IncludeArchived:
		q = q.Where(sq.Eq{"is_archived": false})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": string(filter.Category)})
	}
	if filter.Season != "" {
		q = q.Where(sq.Expr("id IN (SELECT item_id FROM item_seasons WHERE season = ?)", string(filter.Season)))
	}

	return s.queryItems(ctx, q)
}

// ArchiveItems marks every listed item archived in one transaction.
func (s *SQLiteStore) ArchiveItems(ctx context.Context, itemIDs []string) (int, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	archived := 0
	for batch := range slices.Chunk(itemIDs, idBatchSize) {
		query, args, err := s.sb.Update("items").
			Set("is_archived", true).
			Where(sq.Eq{"id": batch, "is_archived": false}).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build archive: %w", err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to archive items: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to check archive result: %w", err)
		}
		archived += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return archived, nil
}

func (s *SQLiteStore) insertSeasons(ctx context.Context, ex execer, itemID string, seasons []models.Season) error {
	seen := make(map[models.Season]bool, len(seasons))
	for i, season := range seasons {
		if seen[season] {
			continue
		}
		seen[season] = true
		if _, err := ex.ExecContext(ctx,
			"INSERT INTO item_seasons (item_id, season, position) VALUES (?, ?, ?)",
			itemID, string(season), i,
		); err != nil {
			return fmt.Errorf("failed to insert season: %w", err)
		}
	}
	return nil
}

// queryItems runs an item select and attaches each item's seasons.
func (s *SQLiteStore) queryItems(ctx context.Context, q sq.SelectBuilder) ([]models.ClothingItem, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.ClothingItem
	index := make(map[string]int)
	for rows.Next() {
		var item models.ClothingItem
		var category string
		if err := rows.Scan(&item.ID, &category, &item.SizeLabel, &item.Brand, &item.Color,
			&item.Description, &item.ImageURL, &item.IsArchived, &item.DateAdded); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Category = models.Category(category)
		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	for batch := range slices.Chunk(ids, idBatchSize) {
		if err := s.attachSeasons(ctx, items, index, batch); err != nil {
			return nil, err
		}
	}

	return items, nil
}

// attachSeasons loads the seasons of one batch of item IDs.
func (s *SQLiteStore) attachSeasons(ctx context.Context, items []models.ClothingItem, index map[string]int, ids []string) error {
	query, args, err := s.sb.Select("item_id", "season").
		From("item_seasons").
		Where(sq.Eq{"item_id": ids}).
		OrderBy("item_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build season query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to get seasons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, season string
		if err := rows.Scan(&itemID, &season); err != nil {
			return fmt.Errorf("failed to scan season: %w", err)
		}
		i := index[itemID]
		items[i].Seasons = append(items[i].Seasons, models.Season(season))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate seasons: %w", err)
	}
	return nil
}
