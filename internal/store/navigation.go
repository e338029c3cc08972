// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// NavigationStore manages menus and their items.
type NavigationStore struct {
	db *sql.DB
}

// NewNavigationStore returns a new NavigationStore.
func NewNavigationStore(db *sql.DB) *NavigationStore {
	return &NavigationStore{db: db}
}

// ListMenus returns the menus for a site with their items loaded. If slug is
// non-empty only the matching menu is returned.
func (s *NavigationStore) ListMenus(st site.ID, slug string) ([]models.NavigationMenu, error) {
	query := `
		SELECT id, site, slug, created_at, updated_at
		FROM navigation_menus
		WHERE site = $1
	`
	args := []any{st}
	if slug != "" {
		query += ` AND slug = $2`
		args = append(args, slug)
	}
	query += ` ORDER BY slug`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	var menus []models.NavigationMenu
	for rows.Next() {
		var m models.NavigationMenu
		if err := rows.Scan(&m.ID, &m.Site, &m.Slug, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menus: %w", err)
	}

	for i := range menus {
		items, err := s.listItems(menus[i].ID)
		if err != nil {
			return nil, err
		}
		menus[i].Items = items
	}
	return menus, nil
}

// FindMenu retrieves a single menu with items by (site, slug). Returns nil
// if not found.
func (s *NavigationStore) FindMenu(st site.ID, slug string) (*models.NavigationMenu, error) {
	var m models.NavigationMenu
	err := s.db.QueryRow(`
		SELECT id, site, slug, created_at, updated_at
		FROM navigation_menus
		WHERE site = $1 AND slug = $2
	`, st, slug).Scan(&m.ID, &m.Site, &m.Slug, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	items, err := s.listItems(m.ID)
	if err != nil {
		return nil, err
	}
	m.Items = items
	return &m, nil
}

// CreateMenu inserts an empty menu for a site.
func (s *NavigationStore) CreateMenu(st site.ID, slug string) (*models.NavigationMenu, error) {
	_, err := s.db.Exec(`
		INSERT INTO navigation_menus (site, slug) VALUES ($1, $2)
		ON CONFLICT (site, slug) DO NOTHING
	`, st, slug)
	if err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	return s.FindMenu(st, slug)
}

func (s *NavigationStore) listItems(menuID uuid.UUID) ([]models.NavigationItem, error) {
	rows, err := s.db.Query(`
		SELECT id, menu_id, label, url, position, parent_id, new_tab, created_at, updated_at
		FROM navigation_items
		WHERE menu_id = $1
		ORDER BY position, LOWER(label)
	`, menuID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := []models.NavigationItem{}
	for rows.Next() {
		var it models.NavigationItem
		err := rows.Scan(&it.ID, &it.MenuID, &it.Label, &it.URL, &it.Order,
			&it.ParentID, &it.NewTab, &it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

// NavigationItemInput describes one item in a full-menu replacement. Key is
// a caller-chosen handle unique within the request; ParentKey references
// another input's Key to nest the item under it.
type NavigationItemInput struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	URL       string  `json:"url"`
	Order     int     `json:"order"`
	ParentKey *string `json:"parent_key,omitempty"`
	NewTab    bool    `json:"new_tab"`
}

// validateItems rejects duplicate keys, unknown parent keys, and parent
// chains that loop back on themselves.
func validateItems(items []NavigationItemInput) error {
	parents := make(map[string]*string, len(items))
	for _, it := range items {
		if it.Key == "" {
			return fmt.Errorf("navigation item %q has no key", it.Label)
		}
		if _, dup := parents[it.Key]; dup {
			return fmt.Errorf("duplicate navigation item key %q", it.Key)
		}
		parents[it.Key] = it.ParentKey
	}
	for _, it := range items {
		if it.ParentKey != nil {
			if _, ok := parents[*it.ParentKey]; !ok {
				return fmt.Errorf("navigation item %q references unknown parent %q", it.Key, *it.ParentKey)
			}
		}
	}
	// Walk each parent chain; a chain longer than the item count must loop.
	for _, it := range items {
		steps := 0
		for p := it.ParentKey; p != nil; p = parents[*p] {
			steps++
			if steps > len(items) {
				return fmt.Errorf("navigation item %q is part of a parent cycle", it.Key)
			}
		}
	}
	return nil
}

// ReplaceItems swaps a menu's entire item set in one transaction. Items are
// inserted parents-first so parent_id references resolve.
func (s *NavigationStore) ReplaceItems(menuID uuid.UUID, items []NavigationItemInput) (*models.NavigationMenu, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin replace items: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM navigation_items WHERE menu_id = $1`, menuID); err != nil {
		return nil, fmt.Errorf("clear menu items: %w", err)
	}

	ids := make(map[string]uuid.UUID, len(items))
	pending := append([]NavigationItemInput(nil), items...)
	for len(pending) > 0 {
		var next []NavigationItemInput
		for _, it := range pending {
			if it.ParentKey != nil {
				if _, ready := ids[*it.ParentKey]; !ready {
					next = append(next, it)
					continue
				}
			}
			var parentID *uuid.UUID
			if it.ParentKey != nil {
				id := ids[*it.ParentKey]
				parentID = &id
			}
			var id uuid.UUID
			err := tx.QueryRow(`
				INSERT INTO navigation_items (menu_id, label, url, position, parent_id, new_tab)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`, menuID, it.Label, it.URL, it.Order, parentID, it.NewTab).Scan(&id)
			if err != nil {
				return nil, fmt.Errorf("insert menu item: %w", err)
			}
			ids[it.Key] = id
		}
		pending = next
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace items: %w", err)
	}

	var m models.NavigationMenu
	err = s.db.QueryRow(`
		SELECT id, site, slug, created_at, updated_at
		FROM navigation_menus WHERE id = $1
	`, menuID).Scan(&m.ID, &m.Site, &m.Slug, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reload menu: %w", err)
	}
	m.Items, err = s.listItems(m.ID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
