// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
)

// MediaStore manages media asset rows. The file bytes themselves live in
// object storage; rows only carry the key and descriptive fields.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore returns a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, kind, storage_key, width, height, duration_ms,
       checksum, alt_text, caption, meta, created_at, updated_at`

func scanMedia(scanner interface{ Scan(...any) error }) (*models.MediaAsset, error) {
	var m models.MediaAsset
	err := scanner.Scan(
		&m.ID, &m.Kind, &m.StorageKey, &m.Width, &m.Height, &m.DurationMS,
		&m.Checksum, &m.AltText, &m.Caption, &m.Meta, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByID retrieves a media asset by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.MediaAsset, error) {
	m, err := scanMedia(s.db.QueryRow(`
		SELECT `+mediaColumns+` FROM media_assets WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create inserts a media asset row and returns it with the generated ID.
func (s *MediaStore) Create(m *models.MediaAsset) (*models.MediaAsset, error) {
	meta := m.Meta
	if len(meta) == 0 {
		meta = json.RawMessage(`{}`)
	}

	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO media_assets (kind, storage_key, width, height, duration_ms,
		                          checksum, alt_text, caption, meta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, m.Kind, m.StorageKey, m.Width, m.Height, m.DurationMS,
		m.Checksum, m.AltText, m.Caption, meta).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return s.FindByID(id)
}

// Delete removes a media asset row.
func (s *MediaStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM media_assets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
