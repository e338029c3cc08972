// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// PageStore handles all page-related database operations. Pages have no
// publish state; every stored page is visible.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, site, slug, is_home, hero_image_id, meta, created_at, updated_at`

func scanPage(scanner interface{ Scan(...any) error }) (*models.Page, error) {
	var pg models.Page
	err := scanner.Scan(
		&pg.ID, &pg.Site, &pg.Slug, &pg.IsHome, &pg.HeroImageID,
		&pg.Meta, &pg.CreatedAt, &pg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pg, nil
}

// ListBySite returns all pages for a site ordered by slug, with
// translations and hero images loaded.
func (s *PageStore) ListBySite(st site.ID) ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT `+pageColumns+` FROM pages WHERE site = $1 ORDER BY slug
	`, st)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		pg, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, *pg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range pages {
		if err := s.hydrate(&pages[i]); err != nil {
			return nil, err
		}
	}
	return pages, nil
}

// FindBySlug retrieves one page by (site, slug). Returns nil if not found.
func (s *PageStore) FindBySlug(st site.ID, slug string) (*models.Page, error) {
	pg, err := scanPage(s.db.QueryRow(`
		SELECT `+pageColumns+` FROM pages WHERE site = $1 AND slug = $2
	`, st, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	if err := s.hydrate(pg); err != nil {
		return nil, err
	}
	return pg, nil
}

// FindByID retrieves a page by ID. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	pg, err := scanPage(s.db.QueryRow(`
		SELECT `+pageColumns+` FROM pages WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	if err := s.hydrate(pg); err != nil {
		return nil, err
	}
	return pg, nil
}

func (s *PageStore) hydrate(pg *models.Page) error {
	rows, err := s.db.Query(`
		SELECT locale, title, body_md, seo_title, seo_desc
		FROM page_translations WHERE page_id = $1
	`, pg.ID)
	if err != nil {
		return fmt.Errorf("load page translations: %w", err)
	}
	defer rows.Close()

	trs := make(map[string]models.PageTranslation)
	for rows.Next() {
		var tr models.PageTranslation
		if err := rows.Scan(&tr.Locale, &tr.Title, &tr.BodyMD, &tr.SEOTitle, &tr.SEODesc); err != nil {
			return fmt.Errorf("scan page translation: %w", err)
		}
		trs[tr.Locale] = tr
	}
	if err := rows.Err(); err != nil {
		return err
	}
	pg.Translations = trs

	if pg.HeroImageID != nil {
		hero, err := NewMediaStore(s.db).FindByID(*pg.HeroImageID)
		if err != nil {
			return err
		}
		pg.HeroImage = hero
	}
	return nil
}

// Create inserts a page with its translations in one transaction and
// returns the stored page fully hydrated.
func (s *PageStore) Create(pg *models.Page) (*models.Page, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create page begin: %w", err)
	}
	defer tx.Rollback()

	meta := pg.Meta
	if len(meta) == 0 {
		meta = json.RawMessage(`{}`)
	}

	var id uuid.UUID
	err = tx.QueryRow(`
		INSERT INTO pages (site, slug, is_home, hero_image_id, meta)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, pg.Site, pg.Slug, pg.IsHome, pg.HeroImageID, meta).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := upsertPageTranslations(tx, id, pg.Translations); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create page commit: %w", err)
	}
	return s.FindByID(id)
}

// Update rewrites a page and its translations in one transaction and
// returns the stored page fully hydrated.
func (s *PageStore) Update(pg *models.Page) (*models.Page, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update page begin: %w", err)
	}
	defer tx.Rollback()

	meta := pg.Meta
	if len(meta) == 0 {
		meta = json.RawMessage(`{}`)
	}

	res, err := tx.Exec(`
		UPDATE pages SET
			slug = $1, is_home = $2, hero_image_id = $3, meta = $4, updated_at = NOW()
		WHERE id = $5
	`, pg.Slug, pg.IsHome, pg.HeroImageID, meta, pg.ID)
	if err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}

	if err := upsertPageTranslations(tx, pg.ID, pg.Translations); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update page commit: %w", err)
	}
	return s.FindByID(pg.ID)
}

// Delete removes a page; translations cascade.
func (s *PageStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

func upsertPageTranslations(tx *sql.Tx, pageID uuid.UUID, trs map[string]models.PageTranslation) error {
	for loc, tr := range trs {
		_, err := tx.Exec(`
			INSERT INTO page_translations (page_id, locale, title, body_md, seo_title, seo_desc)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (page_id, locale)
			DO UPDATE SET title = EXCLUDED.title, body_md = EXCLUDED.body_md,
			              seo_title = EXCLUDED.seo_title, seo_desc = EXCLUDED.seo_desc
		`, pageID, loc, tr.Title, tr.BodyMD, tr.SEOTitle, tr.SEODesc)
		if err != nil {
			return fmt.Errorf("upsert page translation %s: %w", loc, err)
		}
	}
	return nil
}
