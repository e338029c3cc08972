// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// Tag is a flat, site-scoped taxonomy term. (site, slug) is unique.
type Tag struct {
	ID          uuid.UUID `json:"id"`
	Site        site.ID   `json:"site"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category is a hierarchical, site-scoped taxonomy term. ParentID, when
// set, must reference a category on the same site; parent chains are kept
// acyclic at write time.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	Site        site.ID    `json:"site"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
