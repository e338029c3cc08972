// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package serializer shapes stored entities into the flat, single-locale
// records the public JSON API returns. Flattening merges a translation
// record with the entity's locale-independent fields; lookups that find
// nothing degrade to defaults and never fail.
package serializer

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/locale"
	"github.com/Amareteklay/adapticus-backend/internal/markdown"
	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// MediaURLs resolves a storage key to a publicly reachable URL. An empty
// return means the asset has no resolvable URL.
type MediaURLs interface {
	FileURL(key string) string
}

// FlatMedia is the minimal media representation nested in flat records.
type FlatMedia struct {
	ID         uuid.UUID       `json:"id"`
	Kind       models.MediaKind `json:"kind"`
	URL        *string         `json:"url"`
	Width      *int            `json:"width"`
	Height     *int            `json:"height"`
	DurationMS *int            `json:"duration_ms"`
	AltText    string          `json:"alt_text"`
	Caption    string          `json:"caption"`
	Meta       json.RawMessage `json:"meta"`
}

// FlatAuthor is the minimal author representation nested in flat posts.
type FlatAuthor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	URL       string    `json:"url"`
	AvatarURL *string   `json:"avatar_url"`
}

// FlatPost is the locale-flattened public representation of a post.
type FlatPost struct {
	ID             uuid.UUID            `json:"id"`
	Site           site.ID              `json:"site"`
	Slug           string               `json:"slug"`
	Status         models.PublishStatus `json:"status"`
	PublishedAt    time.Time            `json:"published_at"`
	Unlisted       bool                 `json:"unlisted"`
	Author         *FlatAuthor          `json:"author"`
	ReadingTimeMin int                  `json:"reading_time_min"`
	WordCount      int                  `json:"word_count"`
	Tags           []string             `json:"tags"`
	Categories     []string             `json:"categories"`
	Meta           json.RawMessage      `json:"meta"`

	ActiveLocale     string   `json:"active_locale"`
	AvailableLocales []string `json:"available_locales"`
	Title            string   `json:"title"`
	Summary          string   `json:"summary"`
	BodyHTML         string   `json:"body_html"`
	SEOTitle         string   `json:"seo_title"`
	SEODesc          string   `json:"seo_desc"`

	HeroImage *FlatMedia `json:"hero_image"`
}

// FlatPage is the locale-flattened public representation of a page.
type FlatPage struct {
	ID     uuid.UUID       `json:"id"`
	Site   site.ID         `json:"site"`
	Slug   string          `json:"slug"`
	IsHome bool            `json:"is_home"`
	Meta   json.RawMessage `json:"meta"`

	ActiveLocale     string   `json:"active_locale"`
	AvailableLocales []string `json:"available_locales"`
	Title            string   `json:"title"`
	Summary          string   `json:"summary"`
	BodyHTML         string   `json:"body_html"`
	SEOTitle         string   `json:"seo_title"`
	SEODesc          string   `json:"seo_desc"`

	HeroImage *FlatMedia `json:"hero_image"`
}

// FlattenPost produces the public record for a post in the given locale.
// Text fields come from the translation record for loc, falling back to the
// default-locale record; a post with no usable record at all degrades to
// its slug as title and empty text fields. urls may be nil when no media
// storage is configured.
func FlattenPost(p *models.Post, loc string, urls MediaURLs) FlatPost {
	out := FlatPost{
		ID:             p.ID,
		Site:           p.Site,
		Slug:           p.Slug,
		Status:         p.Status,
		PublishedAt:    p.PublishedAt,
		Unlisted:       p.Unlisted,
		Author:         flattenAuthor(p.Author, urls),
		ReadingTimeMin: p.ReadingTimeMin,
		WordCount:      p.WordCount,
		Tags:           emptyIfNil(p.TagSlugs),
		Categories:     emptyIfNil(p.CategorySlugs),
		Meta:           metaOrEmpty(p.Meta),
		ActiveLocale:   loc,
		HeroImage:      flattenMedia(p.HeroImage, urls),
	}

	out.AvailableLocales = make([]string, 0, len(p.Translations))
	for code := range p.Translations {
		out.AvailableLocales = append(out.AvailableLocales, code)
	}
	sort.Strings(out.AvailableLocales)

	// Effective record: requested locale, else the fallback locale.
	// Summary has no further cross-locale hop — it is whatever the
	// effective record carries, empty included.
	tr, ok := p.Translations[loc]
	if !ok {
		tr, ok = p.Translations[locale.Default]
	}
	if ok {
		out.Title = tr.Title
		out.Summary = tr.Summary
		out.BodyHTML = renderBody(tr.BodyMD)
		out.SEOTitle = tr.SEOTitle
		out.SEODesc = tr.SEODesc
	}
	if out.Title == "" {
		out.Title = p.Slug
	}
	if out.SEOTitle == "" {
		out.SEOTitle = out.Title
	}
	return out
}

// FlattenPage produces the public record for a page in the given locale.
// Pages have no summary; the field is always the empty string.
func FlattenPage(pg *models.Page, loc string, urls MediaURLs) FlatPage {
	out := FlatPage{
		ID:           pg.ID,
		Site:         pg.Site,
		Slug:         pg.Slug,
		IsHome:       pg.IsHome,
		Meta:         metaOrEmpty(pg.Meta),
		ActiveLocale: loc,
		HeroImage:    flattenMedia(pg.HeroImage, urls),
	}

	out.AvailableLocales = make([]string, 0, len(pg.Translations))
	for code := range pg.Translations {
		out.AvailableLocales = append(out.AvailableLocales, code)
	}
	sort.Strings(out.AvailableLocales)

	tr, ok := pg.Translations[loc]
	if !ok {
		tr, ok = pg.Translations[locale.Default]
	}
	if ok {
		out.Title = tr.Title
		out.BodyHTML = renderBody(tr.BodyMD)
		out.SEOTitle = tr.SEOTitle
		out.SEODesc = tr.SEODesc
	}
	if out.Title == "" {
		out.Title = pg.Slug
	}
	if out.SEOTitle == "" {
		out.SEOTitle = out.Title
	}
	return out
}

// renderBody converts markdown to HTML, degrading to an empty string on
// renderer errors. Missing or broken body text must never fail a read.
func renderBody(src string) string {
	html, err := markdown.ToHTML(src)
	if err != nil {
		return ""
	}
	return html
}

// flattenMedia builds the nested media record, or nil when no asset is set.
// URL resolution failures (no storage configured, empty key) yield a null
// URL rather than an error.
func flattenMedia(m *models.MediaAsset, urls MediaURLs) *FlatMedia {
	if m == nil {
		return nil
	}
	return &FlatMedia{
		ID:         m.ID,
		Kind:       m.Kind,
		URL:        resolveURL(m.StorageKey, urls),
		Width:      m.Width,
		Height:     m.Height,
		DurationMS: m.DurationMS,
		AltText:    m.AltText,
		Caption:    m.Caption,
		Meta:       metaOrEmpty(m.Meta),
	}
}

func flattenAuthor(a *models.Author, urls MediaURLs) *FlatAuthor {
	if a == nil {
		return nil
	}
	out := &FlatAuthor{
		ID:   a.ID,
		Name: a.Name,
		Slug: a.Slug,
		URL:  a.URL,
	}
	if a.Avatar != nil {
		out.AvatarURL = resolveURL(a.Avatar.StorageKey, urls)
	}
	return out
}

func resolveURL(key string, urls MediaURLs) *string {
	if urls == nil || key == "" {
		return nil
	}
	u := urls.FileURL(key)
	if u == "" {
		return nil
	}
	return &u
}

func metaOrEmpty(m json.RawMessage) json.RawMessage {
	if len(m) == 0 {
		return json.RawMessage(`{}`)
	}
	return m
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
