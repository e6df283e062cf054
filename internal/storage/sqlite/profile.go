package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/littlewardrobe/internal/models"
	"github.com/mmynk/littlewardrobe/internal/storage"
)

// GetProfile retrieves the single child profile row.
func (s *SQLiteStore) GetProfile(ctx context.Context) (*models.ChildProfile, error) {
	profile := &models.ChildProfile{}
	err := s.db.QueryRowContext(ctx,
		"SELECT name, birth_date FROM child_profile WHERE id = 1",
	).Scan(&profile.Name, &profile.BirthDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("child profile not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get child profile: %w", err)
	}
	return profile, nil
}

// SaveProfile upserts the child profile.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile *models.ChildProfile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO child_profile (id, name, birth_date) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, birth_date = excluded.birth_date`,
		profile.Name, profile.BirthDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save child profile: %w", err)
	}
	return nil
}

// GetSettings retrieves the single settings row.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings := &models.Settings{}
	err := s.db.QueryRowContext(ctx,
		"SELECT location_name, latitude, longitude, grace_months FROM settings WHERE id = 1",
	).Scan(&settings.Location.Name, &settings.Location.Latitude, &settings.Location.Longitude, &settings.GraceMonths)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("settings not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// SaveSettings upserts the settings.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings *models.Settings) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, location_name, latitude, longitude, grace_months) VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     location_name = excluded.location_name,
		     latitude = excluded.latitude,
		     longitude = excluded.longitude,
		     grace_months = excluded.grace_months`,
		settings.Location.Name, settings.Location.Latitude, settings.Location.Longitude, settings.GraceMonths,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
