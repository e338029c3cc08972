// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// PublishStatus represents the publishing state of a post.
type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusScheduled PublishStatus = "scheduled"
	StatusPublished PublishStatus = "published"
	StatusArchived  PublishStatus = "archived"
)

// ValidStatus reports whether s is one of the known publish states.
func ValidStatus(s PublishStatus) bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// PostTranslation holds the locale-specific text of a post. At most one
// record exists per (post, locale).
type PostTranslation struct {
	Locale   string `json:"locale"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	BodyMD   string `json:"body_md"`
	SEOTitle string `json:"seo_title"`
	SEODesc  string `json:"seo_desc"`
}

// PageTranslation holds the locale-specific text of a page. Pages have no
// summary field; the two record shapes are kept distinct on purpose.
type PageTranslation struct {
	Locale   string `json:"locale"`
	Title    string `json:"title"`
	BodyMD   string `json:"body_md"`
	SEOTitle string `json:"seo_title"`
	SEODesc  string `json:"seo_desc"`
}

// Post is a blog post belonging to exactly one site. (site, slug) is unique.
type Post struct {
	ID             uuid.UUID       `json:"id"`
	Site           site.ID         `json:"site"`
	Slug           string          `json:"slug"`
	Status         PublishStatus   `json:"status"`
	PublishedAt    time.Time       `json:"published_at"`
	Unlisted       bool            `json:"unlisted"`
	AuthorID       uuid.UUID       `json:"author_id"`
	HeroImageID    *uuid.UUID      `json:"hero_image_id,omitempty"`
	ReadingTimeMin int             `json:"reading_time_min"`
	WordCount      int             `json:"word_count"`
	Meta           json.RawMessage `json:"meta"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Virtual fields populated by store methods.
	Translations  map[string]PostTranslation `json:"translations,omitempty"`
	Author        *Author                    `json:"-"`
	HeroImage     *MediaAsset                `json:"-"`
	TagSlugs      []string                   `json:"-"`
	CategorySlugs []string                   `json:"-"`
}

// IsPubliclyVisible reports whether the post appears on the public site:
// published and not unlisted.
func (p *Post) IsPubliclyVisible() bool {
	return p.Status == StatusPublished && !p.Unlisted
}

// Page is a static page belonging to exactly one site. Pages have no
// draft/unlisted distinction; every page is publicly visible.
type Page struct {
	ID          uuid.UUID       `json:"id"`
	Site        site.ID         `json:"site"`
	Slug        string          `json:"slug"`
	IsHome      bool            `json:"is_home"`
	HeroImageID *uuid.UUID      `json:"hero_image_id,omitempty"`
	Meta        json.RawMessage `json:"meta"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Virtual fields populated by store methods.
	Translations map[string]PageTranslation `json:"translations,omitempty"`
	HeroImage    *MediaAsset                `json:"-"`
}
