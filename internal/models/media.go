// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MediaKind classifies a stored media asset.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaDocument MediaKind = "document"
	MediaAudio    MediaKind = "audio"
	MediaVideo    MediaKind = "video"
	MediaOther    MediaKind = "other"
)

// MediaAsset is a locale-independent file referenced by content on any site.
// The object itself lives in S3-compatible storage under StorageKey.
type MediaAsset struct {
	ID         uuid.UUID       `json:"id"`
	Kind       MediaKind       `json:"kind"`
	StorageKey string          `json:"storage_key"`
	Width      *int            `json:"width,omitempty"`
	Height     *int            `json:"height,omitempty"`
	DurationMS *int            `json:"duration_ms,omitempty"`
	Checksum   string          `json:"checksum"`
	AltText    string          `json:"alt_text"`
	Caption    string          `json:"caption"`
	Meta       json.RawMessage `json:"meta"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Author writes posts. A nil Site means the author is global and usable on
// every site.
type Author struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Bio       string     `json:"bio"`
	URL       string     `json:"url"`
	AvatarID  *uuid.UUID `json:"avatar_id,omitempty"`
	Site      *string    `json:"site,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Virtual field populated by store methods.
	Avatar *MediaAsset `json:"-"`
}
