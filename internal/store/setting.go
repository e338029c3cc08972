// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// SettingStore manages per-site key/value settings.
type SettingStore struct {
	db *sql.DB
}

// NewSettingStore returns a new SettingStore.
func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// ListBySite returns all settings rows for a site.
func (s *SettingStore) ListBySite(st site.ID) ([]models.Setting, error) {
	rows, err := s.db.Query(`
		SELECT id, site, key, value, created_at, updated_at
		FROM settings
		WHERE site = $1
		ORDER BY key
	`, st)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var row models.Setting
		if err := rows.Scan(&row.ID, &row.Site, &row.Key, &row.Value, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings = append(settings, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settings: %w", err)
	}
	return settings, nil
}

// Upsert writes a setting value, replacing any previous value for the same
// (site, key).
func (s *SettingStore) Upsert(st site.ID, key string, value json.RawMessage) (*models.Setting, error) {
	if len(value) == 0 {
		value = json.RawMessage(`null`)
	}
	var row models.Setting
	err := s.db.QueryRow(`
		INSERT INTO settings (site, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (site, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, site, key, value, created_at, updated_at
	`, st, key, value).Scan(&row.ID, &row.Site, &row.Key, &row.Value, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	return &row, nil
}

// Delete removes a setting. Absent keys fall back to their defaults on read.
func (s *SettingStore) Delete(st site.ID, key string) error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE site = $1 AND key = $2`, st, key); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}
