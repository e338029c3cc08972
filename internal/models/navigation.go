// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// NavigationMenu is an ordered collection of items identified by
// (site, slug) — e.g. "main" or "footer".
type NavigationMenu struct {
	ID        uuid.UUID `json:"id"`
	Site      site.ID   `json:"site"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Virtual field populated by store methods: the menu's flat item
	// arena, parent links included. Tree shaping happens in the
	// serializer, not here.
	Items []NavigationItem `json:"items,omitempty"`
}

// NavigationItem is one entry in a menu. ParentID, when set, references
// another item in the same menu; the store rejects cross-menu parents and
// cycles at write time.
type NavigationItem struct {
	ID        uuid.UUID  `json:"id"`
	MenuID    uuid.UUID  `json:"menu_id"`
	Label     string     `json:"label"`
	URL       string     `json:"url"`
	Order     int        `json:"order"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	NewTab    bool       `json:"new_tab"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
