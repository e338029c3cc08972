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

// PostStore handles all post-related database operations, including the
// per-locale translation records.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, site, slug, status, published_at, unlisted, author_id,
       hero_image_id, reading_time_min, word_count, meta, created_at, updated_at`

func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var publishedAt sql.NullTime
	err := scanner.Scan(
		&p.ID, &p.Site, &p.Slug, &p.Status, &publishedAt, &p.Unlisted,
		&p.AuthorID, &p.HeroImageID, &p.ReadingTimeMin, &p.WordCount,
		&p.Meta, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PublishedAt = publishedAt.Time
	return &p, nil
}

// ListPublished returns the publicly visible posts for a site (published
// and not unlisted), newest first, with translations and relations loaded.
func (s *PostStore) ListPublished(st site.ID) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+`
		FROM posts
		WHERE site = $1 AND status = 'published' AND unlisted = FALSE
		ORDER BY published_at DESC
	`, st)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range posts {
		if err := s.hydrate(&posts[i]); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// FindPublishedBySlug retrieves one publicly visible post by (site, slug).
// Returns nil if the post does not exist or is not visible.
func (s *PostStore) FindPublishedBySlug(st site.ID, slug string) (*models.Post, error) {
	p, err := scanPost(s.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts
		WHERE site = $1 AND slug = $2 AND status = 'published' AND unlisted = FALSE
	`, st, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	if err := s.hydrate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindByID retrieves a post regardless of publish state. Used by the admin
// API. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	p, err := scanPost(s.db.QueryRow(`
		SELECT `+postColumns+` FROM posts WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	if err := s.hydrate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// hydrate loads a post's translations, author (with avatar), hero image,
// and taxonomy slugs. Missing relations degrade to nil rather than errors.
func (s *PostStore) hydrate(p *models.Post) error {
	trs, err := s.translations(p.ID)
	if err != nil {
		return err
	}
	p.Translations = trs

	author, err := NewAuthorStore(s.db).FindByID(p.AuthorID)
	if err != nil {
		return err
	}
	p.Author = author

	if p.HeroImageID != nil {
		hero, err := NewMediaStore(s.db).FindByID(*p.HeroImageID)
		if err != nil {
			return err
		}
		p.HeroImage = hero
	}

	p.TagSlugs, err = s.relationSlugs(p.ID, `
		SELECT t.slug FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.slug`)
	if err != nil {
		return err
	}

	p.CategorySlugs, err = s.relationSlugs(p.ID, `
		SELECT c.slug FROM categories c
		JOIN post_categories pc ON pc.category_id = c.id
		WHERE pc.post_id = $1
		ORDER BY c.slug`)
	return err
}

func (s *PostStore) translations(postID uuid.UUID) (map[string]models.PostTranslation, error) {
	rows, err := s.db.Query(`
		SELECT locale, title, summary, body_md, seo_title, seo_desc
		FROM post_translations WHERE post_id = $1
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("load post translations: %w", err)
	}
	defer rows.Close()

	trs := make(map[string]models.PostTranslation)
	for rows.Next() {
		var tr models.PostTranslation
		if err := rows.Scan(&tr.Locale, &tr.Title, &tr.Summary, &tr.BodyMD, &tr.SEOTitle, &tr.SEODesc); err != nil {
			return nil, fmt.Errorf("scan post translation: %w", err)
		}
		trs[tr.Locale] = tr
	}
	return trs, rows.Err()
}

func (s *PostStore) relationSlugs(postID uuid.UUID, query string) ([]string, error) {
	rows, err := s.db.Query(query, postID)
	if err != nil {
		return nil, fmt.Errorf("load post relations: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan relation slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Create inserts a post with its translations and taxonomy links in one
// transaction and returns the stored post fully hydrated.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create post begin: %w", err)
	}
	defer tx.Rollback()

	meta := p.Meta
	if len(meta) == 0 {
		meta = json.RawMessage(`{}`)
	}

	var id uuid.UUID
	err = tx.QueryRow(`
		INSERT INTO posts (site, slug, status, published_at, unlisted, author_id,
		                   hero_image_id, reading_time_min, word_count, meta)
		VALUES ($1, $2, $3, COALESCE($4, NOW()), $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, p.Site, p.Slug, p.Status, nullableTime(p.PublishedAt), p.Unlisted,
		p.AuthorID, p.HeroImageID, p.ReadingTimeMin, p.WordCount, meta,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := upsertPostTranslations(tx, id, p.Translations); err != nil {
		return nil, err
	}
	if err := s.linkTaxonomy(tx, id, p.Site, p.TagSlugs, p.CategorySlugs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create post commit: %w", err)
	}
	return s.FindByID(id)
}

// Update rewrites a post, its translations, and its taxonomy links in one
// transaction and returns the stored post fully hydrated.
func (s *PostStore) Update(p *models.Post) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update post begin: %w", err)
	}
	defer tx.Rollback()

	meta := p.Meta
	if len(meta) == 0 {
		meta = json.RawMessage(`{}`)
	}

	res, err := tx.Exec(`
		UPDATE posts SET
			slug = $1, status = $2, published_at = COALESCE($3, published_at),
			unlisted = $4, author_id = $5, hero_image_id = $6,
			reading_time_min = $7, word_count = $8, meta = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Slug, p.Status, nullableTime(p.PublishedAt), p.Unlisted, p.AuthorID,
		p.HeroImageID, p.ReadingTimeMin, p.WordCount, meta, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}

	if err := upsertPostTranslations(tx, p.ID, p.Translations); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM post_tags WHERE post_id = $1`, p.ID); err != nil {
		return nil, fmt.Errorf("clear post tags: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, p.ID); err != nil {
		return nil, fmt.Errorf("clear post categories: %w", err)
	}
	if err := s.linkTaxonomy(tx, p.ID, p.Site, p.TagSlugs, p.CategorySlugs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update post commit: %w", err)
	}
	return s.FindByID(p.ID)
}

// Delete removes a post; translations and taxonomy links cascade.
func (s *PostStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func upsertPostTranslations(tx *sql.Tx, postID uuid.UUID, trs map[string]models.PostTranslation) error {
	for loc, tr := range trs {
		_, err := tx.Exec(`
			INSERT INTO post_translations (post_id, locale, title, summary, body_md, seo_title, seo_desc)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (post_id, locale)
			DO UPDATE SET title = EXCLUDED.title, summary = EXCLUDED.summary,
			              body_md = EXCLUDED.body_md, seo_title = EXCLUDED.seo_title,
			              seo_desc = EXCLUDED.seo_desc
		`, postID, loc, tr.Title, tr.Summary, tr.BodyMD, tr.SEOTitle, tr.SEODesc)
		if err != nil {
			return fmt.Errorf("upsert post translation %s: %w", loc, err)
		}
	}
	return nil
}

// linkTaxonomy attaches existing site-scoped tags and categories by slug.
// Unknown slugs are skipped — taxonomy is managed separately and a stale
// reference should not fail a content save.
func (s *PostStore) linkTaxonomy(tx *sql.Tx, postID uuid.UUID, st site.ID, tagSlugs, categorySlugs []string) error {
	for _, slug := range tagSlugs {
		_, err := tx.Exec(`
			INSERT INTO post_tags (post_id, tag_id)
			SELECT $1, id FROM tags WHERE site = $2 AND slug = $3
			ON CONFLICT DO NOTHING
		`, postID, st, slug)
		if err != nil {
			return fmt.Errorf("link tag %s: %w", slug, err)
		}
	}
	for _, slug := range categorySlugs {
		_, err := tx.Exec(`
			INSERT INTO post_categories (post_id, category_id)
			SELECT $1, id FROM categories WHERE site = $2 AND slug = $3
			ON CONFLICT DO NOTHING
		`, postID, st, slug)
		if err != nil {
			return fmt.Errorf("link category %s: %w", slug, err)
		}
	}
	return nil
}
