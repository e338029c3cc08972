// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// RedirectStore manages per-site path redirects.
type RedirectStore struct {
	db *sql.DB
}

// NewRedirectStore returns a new RedirectStore.
func NewRedirectStore(db *sql.DB) *RedirectStore {
	return &RedirectStore{db: db}
}

// ListBySite returns all redirects for a site ordered by source path.
func (s *RedirectStore) ListBySite(st site.ID) ([]models.Redirect, error) {
	rows, err := s.db.Query(`
		SELECT id, site, source_path, target_url, http_status, created_at, updated_at
		FROM redirects
		WHERE site = $1
		ORDER BY source_path
	`, st)
	if err != nil {
		return nil, fmt.Errorf("list redirects: %w", err)
	}
	defer rows.Close()

	var redirects []models.Redirect
	for rows.Next() {
		var r models.Redirect
		err := rows.Scan(&r.ID, &r.Site, &r.SourcePath, &r.TargetURL, &r.HTTPStatus,
			&r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan redirect: %w", err)
		}
		redirects = append(redirects, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate redirects: %w", err)
	}
	return redirects, nil
}

// Upsert writes a redirect, replacing any existing rule for the same
// (site, source_path).
func (s *RedirectStore) Upsert(r *models.Redirect) (*models.Redirect, error) {
	status := r.HTTPStatus
	if status == 0 {
		status = 301
	}
	var row models.Redirect
	err := s.db.QueryRow(`
		INSERT INTO redirects (site, source_path, target_url, http_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (site, source_path)
		DO UPDATE SET target_url = EXCLUDED.target_url,
		              http_status = EXCLUDED.http_status,
		              updated_at = NOW()
		RETURNING id, site, source_path, target_url, http_status, created_at, updated_at
	`, r.Site, r.SourcePath, r.TargetURL, status).Scan(
		&row.ID, &row.Site, &row.SourcePath, &row.TargetURL, &row.HTTPStatus,
		&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert redirect: %w", err)
	}
	return &row, nil
}

// Delete removes a redirect rule.
func (s *RedirectStore) Delete(st site.ID, sourcePath string) error {
	if _, err := s.db.Exec(`
		DELETE FROM redirects WHERE site = $1 AND source_path = $2
	`, st, sourcePath); err != nil {
		return fmt.Errorf("delete redirect: %w", err)
	}
	return nil
}
