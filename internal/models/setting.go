// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// Setting is a (site, key) -> arbitrary JSON value mapping, unique per
// (site, key). Values are opaque to the backend.
type Setting struct {
	ID        uuid.UUID       `json:"id"`
	Site      site.ID         `json:"site"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Redirect maps an old path on a site to its new location.
// (site, source_path) is unique.
type Redirect struct {
	ID         uuid.UUID `json:"id"`
	Site       site.ID   `json:"site"`
	SourcePath string    `json:"source_path"`
	TargetURL  string    `json:"target_url"`
	HTTPStatus int       `json:"http_status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
