// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/cache"
	"github.com/Amareteklay/adapticus-backend/internal/locale"
	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/revalidate"
	"github.com/Amareteklay/adapticus-backend/internal/site"
	"github.com/Amareteklay/adapticus-backend/internal/slug"
	"github.com/Amareteklay/adapticus-backend/internal/storage"
	"github.com/Amareteklay/adapticus-backend/internal/store"
)

// Admin groups the authenticated write endpoints. Every successful write
// invalidates the site's response cache and, where configured, pings the
// frontend rebuild hook.
type Admin struct {
	posts      *store.PostStore
	pages      *store.PageStore
	authors    *store.AuthorStore
	media      *store.MediaStore
	navigation *store.NavigationStore
	settings   *store.SettingStore
	redirects  *store.RedirectStore
	storage    *storage.Client
	cache      *cache.ResponseCache
	notifier   *revalidate.Notifier
}

// NewAdmin creates a new Admin handler group. storageClient and
// responseCache may be nil.
func NewAdmin(posts *store.PostStore, pages *store.PageStore, authors *store.AuthorStore, media *store.MediaStore, navigation *store.NavigationStore, settings *store.SettingStore, redirects *store.RedirectStore, storageClient *storage.Client, responseCache *cache.ResponseCache, notifier *revalidate.Notifier) *Admin {
	return &Admin{
		posts:      posts,
		pages:      pages,
		authors:    authors,
		media:      media,
		navigation: navigation,
		settings:   settings,
		redirects:  redirects,
		storage:    storageClient,
		cache:      responseCache,
		notifier:   notifier,
	}
}

// invalidate drops every cached response for a site after a write.
func (a *Admin) invalidate(r *http.Request, st site.ID) {
	if a.cache != nil {
		a.cache.InvalidateSite(r.Context(), st)
	}
}

// postRequest is the write payload for posts. Slug may be empty; it is then
// derived from the default-locale title.
type postRequest struct {
	Site           string                            `json:"site"`
	Slug           string                            `json:"slug"`
	Status         models.PublishStatus              `json:"status"`
	PublishedAt    *time.Time                        `json:"published_at,omitempty"`
	Unlisted       bool                              `json:"unlisted"`
	AuthorID       uuid.UUID                         `json:"author_id"`
	HeroImageID    *uuid.UUID                        `json:"hero_image_id,omitempty"`
	ReadingTimeMin int                               `json:"reading_time_min"`
	WordCount      int                               `json:"word_count"`
	Meta           json.RawMessage                   `json:"meta,omitempty"`
	Translations   map[string]models.PostTranslation `json:"translations"`
	Tags           []string                          `json:"tags,omitempty"`
	Categories     []string                          `json:"categories,omitempty"`
}

// toModel validates the request and converts it to a store model. The
// second return is a client-facing error message, "" when valid.
func (pr *postRequest) toModel() (*models.Post, string) {
	st, ok := site.Resolve(pr.Site)
	if !ok {
		return nil, "Unknown site."
	}
	if pr.Status == "" {
		pr.Status = models.StatusDraft
	}
	if !models.ValidStatus(pr.Status) {
		return nil, "Unknown status " + string(pr.Status) + "."
	}
	if msg := validatePostTranslations(pr.Translations); msg != "" {
		return nil, msg
	}
	if msg := validateSlug(pr.Slug); msg != "" {
		return nil, msg
	}
	if pr.AuthorID == uuid.Nil {
		return nil, "Author is required."
	}

	s := pr.Slug
	if s == "" {
		s = slug.Generate(pr.Translations[locale.Default].Title)
	}
	if s == "" {
		return nil, "Slug could not be derived; provide one explicitly."
	}

	p := &models.Post{
		Site:           st,
		Slug:           s,
		Status:         pr.Status,
		Unlisted:       pr.Unlisted,
		AuthorID:       pr.AuthorID,
		HeroImageID:    pr.HeroImageID,
		ReadingTimeMin: pr.ReadingTimeMin,
		WordCount:      pr.WordCount,
		Meta:           pr.Meta,
		Translations:   pr.Translations,
		TagSlugs:       pr.Tags,
		CategorySlugs:  pr.Categories,
	}
	if pr.PublishedAt != nil {
		p.PublishedAt = *pr.PublishedAt
	}
	return p, ""
}

// PostCreate handles POST /admin/api/posts.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	p, msg := req.toModel()
	if msg != "" {
		respondError(w, r, http.StatusBadRequest, msg)
		return
	}

	created, err := a.posts.Create(p)
	if err != nil {
		slog.Error("create post failed", "error", err, "slug", p.Slug)
		respondError(w, r, http.StatusInternalServerError, "Failed to create post.")
		return
	}

	a.invalidate(r, created.Site)
	a.notifier.NotifyPost(created)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// PostUpdate handles PUT /admin/api/posts/{id}.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID.")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	p, msg := req.toModel()
	if msg != "" {
		respondError(w, r, http.StatusBadRequest, msg)
		return
	}
	p.ID = id

	updated, err := a.posts.Update(p)
	if err != nil {
		slog.Error("update post failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to update post.")
		return
	}
	if updated == nil {
		respondError(w, r, http.StatusNotFound, "Post not found.")
		return
	}

	a.invalidate(r, updated.Site)
	a.notifier.NotifyPost(updated)

	render.JSON(w, r, updated)
}

// PostDelete handles DELETE /admin/api/posts/{id}.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID.")
		return
	}

	existing, err := a.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to delete post.")
		return
	}
	if existing == nil {
		respondError(w, r, http.StatusNotFound, "Post not found.")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		slog.Error("delete post failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to delete post.")
		return
	}

	a.invalidate(r, existing.Site)
	w.WriteHeader(http.StatusNoContent)
}

// PostGet handles GET /admin/api/posts/{id}; drafts included.
func (a *Admin) PostGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid post ID.")
		return
	}
	p, err := a.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to load post.")
		return
	}
	if p == nil {
		respondError(w, r, http.StatusNotFound, "Post not found.")
		return
	}
	render.JSON(w, r, p)
}

// pageRequest is the write payload for pages.
type pageRequest struct {
	Site         string                            `json:"site"`
	Slug         string                            `json:"slug"`
	IsHome       bool                              `json:"is_home"`
	HeroImageID  *uuid.UUID                        `json:"hero_image_id,omitempty"`
	Meta         json.RawMessage                   `json:"meta,omitempty"`
	Translations map[string]models.PageTranslation `json:"translations"`
}

func (pr *pageRequest) toModel() (*models.Page, string) {
	st, ok := site.Resolve(pr.Site)
	if !ok {
		return nil, "Unknown site."
	}
	if msg := validatePageTranslations(pr.Translations); msg != "" {
		return nil, msg
	}
	if msg := validateSlug(pr.Slug); msg != "" {
		return nil, msg
	}

	s := pr.Slug
	if s == "" {
		s = slug.Generate(pr.Translations[locale.Default].Title)
	}
	if s == "" {
		return nil, "Slug could not be derived; provide one explicitly."
	}

	return &models.Page{
		Site:         st,
		Slug:         s,
		IsHome:       pr.IsHome,
		HeroImageID:  pr.HeroImageID,
		Meta:         pr.Meta,
		Translations: pr.Translations,
	}, ""
}

// PageCreate handles POST /admin/api/pages.
func (a *Admin) PageCreate(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	pg, msg := req.toModel()
	if msg != "" {
		respondError(w, r, http.StatusBadRequest, msg)
		return
	}

	created, err := a.pages.Create(pg)
	if err != nil {
		slog.Error("create page failed", "error", err, "slug", pg.Slug)
		respondError(w, r, http.StatusInternalServerError, "Failed to create page.")
		return
	}

	a.invalidate(r, created.Site)
	a.notifier.NotifyPage(created)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// PageUpdate handles PUT /admin/api/pages/{id}.
func (a *Admin) PageUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid page ID.")
		return
	}

	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	pg, msg := req.toModel()
	if msg != "" {
		respondError(w, r, http.StatusBadRequest, msg)
		return
	}
	pg.ID = id

	updated, err := a.pages.Update(pg)
	if err != nil {
		slog.Error("update page failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to update page.")
		return
	}
	if updated == nil {
		respondError(w, r, http.StatusNotFound, "Page not found.")
		return
	}

	a.invalidate(r, updated.Site)
	a.notifier.NotifyPage(updated)

	render.JSON(w, r, updated)
}

// PageDelete handles DELETE /admin/api/pages/{id}.
func (a *Admin) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid page ID.")
		return
	}

	existing, err := a.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to delete page.")
		return
	}
	if existing == nil {
		respondError(w, r, http.StatusNotFound, "Page not found.")
		return
	}

	if err := a.pages.Delete(id); err != nil {
		slog.Error("delete page failed", "error", err, "id", id)
		respondError(w, r, http.StatusInternalServerError, "Failed to delete page.")
		return
	}

	a.invalidate(r, existing.Site)
	w.WriteHeader(http.StatusNoContent)
}

// menuRequest is the write payload for a full menu replacement.
type menuRequest struct {
	Items []store.NavigationItemInput `json:"items"`
}

// MenuReplace handles PUT /admin/api/navigation/{slug}. The menu is created
// on first write.
func (a *Admin) MenuReplace(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	menuSlug := chi.URLParam(r, "slug")

	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	menu, err := a.navigation.CreateMenu(st, menuSlug)
	if err != nil {
		slog.Error("create menu failed", "error", err, "slug", menuSlug)
		respondError(w, r, http.StatusInternalServerError, "Failed to load menu.")
		return
	}

	replaced, err := a.navigation.ReplaceItems(menu.ID, req.Items)
	if err != nil {
		// Structural errors come from input validation, not the database.
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	a.invalidate(r, st)
	render.JSON(w, r, replaced)
}

// settingRequest is the write payload for one setting key.
type settingRequest struct {
	Value json.RawMessage `json:"value"`
}

// SettingPut handles PUT /admin/api/settings/{key}.
func (a *Admin) SettingPut(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	key := chi.URLParam(r, "key")

	var req settingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	row, err := a.settings.Upsert(st, key, req.Value)
	if err != nil {
		slog.Error("upsert setting failed", "error", err, "key", key)
		respondError(w, r, http.StatusInternalServerError, "Failed to save setting.")
		return
	}

	a.invalidate(r, st)
	render.JSON(w, r, row)
}

// redirectRequest is the write payload for one redirect rule.
type redirectRequest struct {
	SourcePath string `json:"source_path"`
	TargetURL  string `json:"target_url"`
	HTTPStatus int    `json:"http_status"`
}

// RedirectPut handles PUT /admin/api/redirects.
func (a *Admin) RedirectPut(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}

	var req redirectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if req.SourcePath == "" || req.TargetURL == "" {
		respondError(w, r, http.StatusBadRequest, "source_path and target_url are required.")
		return
	}
	if req.HTTPStatus != 0 && req.HTTPStatus != http.StatusMovedPermanently && req.HTTPStatus != http.StatusFound {
		respondError(w, r, http.StatusBadRequest, "http_status must be 301 or 302.")
		return
	}

	rule, err := a.redirects.Upsert(&models.Redirect{
		Site:       st,
		SourcePath: req.SourcePath,
		TargetURL:  req.TargetURL,
		HTTPStatus: req.HTTPStatus,
	})
	if err != nil {
		slog.Error("upsert redirect failed", "error", err, "source", req.SourcePath)
		respondError(w, r, http.StatusInternalServerError, "Failed to save redirect.")
		return
	}

	a.invalidate(r, st)
	render.JSON(w, r, rule)
}

// RedirectDelete handles DELETE /admin/api/redirects?source_path=...
func (a *Admin) RedirectDelete(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	source := r.URL.Query().Get("source_path")
	if source == "" {
		respondError(w, r, http.StatusBadRequest, "source_path is required.")
		return
	}

	if err := a.redirects.Delete(st, source); err != nil {
		slog.Error("delete redirect failed", "error", err, "source", source)
		respondError(w, r, http.StatusInternalServerError, "Failed to delete redirect.")
		return
	}

	a.invalidate(r, st)
	w.WriteHeader(http.StatusNoContent)
}
