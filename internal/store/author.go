// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
)

// AuthorStore manages authors in the database.
type AuthorStore struct {
	db *sql.DB
}

// NewAuthorStore returns a new AuthorStore.
func NewAuthorStore(db *sql.DB) *AuthorStore {
	return &AuthorStore{db: db}
}

const authorColumns = `id, name, slug, bio, url, avatar_id, site, created_at, updated_at`

func scanAuthor(scanner interface{ Scan(...any) error }) (*models.Author, error) {
	var a models.Author
	err := scanner.Scan(
		&a.ID, &a.Name, &a.Slug, &a.Bio, &a.URL, &a.AvatarID, &a.Site,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID retrieves an author with their avatar loaded. Returns nil if
// not found.
func (s *AuthorStore) FindByID(id uuid.UUID) (*models.Author, error) {
	a, err := scanAuthor(s.db.QueryRow(`
		SELECT `+authorColumns+` FROM authors WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find author by id: %w", err)
	}
	if err := s.loadAvatar(a); err != nil {
		return nil, err
	}
	return a, nil
}

// FindBySlug retrieves an author by their unique slug. Returns nil if not
// found.
func (s *AuthorStore) FindBySlug(slug string) (*models.Author, error) {
	a, err := scanAuthor(s.db.QueryRow(`
		SELECT `+authorColumns+` FROM authors WHERE slug = $1
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find author by slug: %w", err)
	}
	if err := s.loadAvatar(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new author and returns it.
func (s *AuthorStore) Create(a *models.Author) (*models.Author, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO authors (name, slug, bio, url, avatar_id, site)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, a.Name, a.Slug, a.Bio, a.URL, a.AvatarID, a.Site).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return s.FindByID(id)
}

func (s *AuthorStore) loadAvatar(a *models.Author) error {
	if a.AvatarID == nil {
		return nil
	}
	avatar, err := NewMediaStore(s.db).FindByID(*a.AvatarID)
	if err != nil {
		return err
	}
	a.Avatar = avatar
	return nil
}
