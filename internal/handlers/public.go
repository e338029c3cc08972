// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Amareteklay/adapticus-backend/internal/cache"
	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/serializer"
	"github.com/Amareteklay/adapticus-backend/internal/storage"
	"github.com/Amareteklay/adapticus-backend/internal/store"
)

// Public groups the unauthenticated read endpoints. Responses are checked
// against the Valkey response cache before hitting PostgreSQL; cache keys
// include the full query string, so site and lang variants never collide.
type Public struct {
	posts      *store.PostStore
	pages      *store.PageStore
	navigation *store.NavigationStore
	settings   *store.SettingStore
	redirects  *store.RedirectStore
	storage    *storage.Client
	cache      *cache.ResponseCache
}

// NewPublic creates a new Public handler group. storageClient may be nil if
// S3 is not configured; responseCache may be nil if Valkey is unavailable.
func NewPublic(posts *store.PostStore, pages *store.PageStore, navigation *store.NavigationStore, settings *store.SettingStore, redirects *store.RedirectStore, storageClient *storage.Client, responseCache *cache.ResponseCache) *Public {
	return &Public{
		posts:      posts,
		pages:      pages,
		navigation: navigation,
		settings:   settings,
		redirects:  redirects,
		storage:    storageClient,
		cache:      responseCache,
	}
}

// mediaURLs adapts the storage client to the serializer without handing a
// typed nil pointer through an interface value.
func (p *Public) mediaURLs() serializer.MediaURLs {
	if p.storage == nil {
		return nil
	}
	return p.storage
}

// serve writes a cached body if one exists, or builds the payload, caches
// it, and writes it. build runs only on a cache miss.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, key string, build func() (any, error)) {
	ctx := r.Context()

	if p.cache != nil {
		if body, ok := p.cache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write(body)
			return
		}
	}

	payload, err := build()
	if err != nil {
		slog.Error("public read failed", "error", err, "path", r.URL.Path)
		respondError(w, r, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if payload == nil {
		respondError(w, r, http.StatusNotFound, "Not found.")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal response failed", "error", err, "path", r.URL.Path)
		respondError(w, r, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if p.cache != nil {
		p.cache.Set(ctx, key, body)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(body)
}

// ListPosts returns the publicly visible posts for a site, newest first,
// flattened to the requested locale.
func (p *Public) ListPosts(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	loc := resolveLocale(r)

	p.serve(w, r, cache.Key(st, r.URL.Path, r.URL.RawQuery), func() (any, error) {
		posts, err := p.posts.ListPublished(st)
		if err != nil {
			return nil, err
		}
		out := make([]serializer.FlatPost, 0, len(posts))
		for i := range posts {
			out = append(out, serializer.FlattenPost(&posts[i], loc, p.mediaURLs()))
		}
		return out, nil
	})
}

// GetPost returns one publicly visible post by slug.
func (p *Public) GetPost(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	loc := resolveLocale(r)
	slugParam := chi.URLParam(r, "slug")

	p.serve(w, r, cache.Key(st, r.URL.Path, r.URL.RawQuery), func() (any, error) {
		post, err := p.posts.FindPublishedBySlug(st, slugParam)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, nil
		}
		flat := serializer.FlattenPost(post, loc, p.mediaURLs())
		return &flat, nil
	})
}

// ListPages returns every page for a site.
func (p *Public) ListPages(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	loc := resolveLocale(r)

	p.serve(w, r, cache.Key(st, r.URL.Path, r.URL.RawQuery), func() (any, error) {
		pages, err := p.pages.ListBySite(st)
		if err != nil {
			return nil, err
		}
		out := make([]serializer.FlatPage, 0, len(pages))
		for i := range pages {
			out = append(out, serializer.FlattenPage(&pages[i], loc, p.mediaURLs()))
		}
		return out, nil
	})
}

// GetPage returns one page by slug.
func (p *Public) GetPage(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	loc := resolveLocale(r)
	slugParam := chi.URLParam(r, "slug")

	p.serve(w, r, cache.Key(st, r.URL.Path, r.URL.RawQuery), func() (any, error) {
		page, err := p.pages.FindBySlug(st, slugParam)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return nil, nil
		}
		flat := serializer.FlattenPage(page, loc, p.mediaURLs())
		return &flat, nil
	})
}

// Navigation returns a site's menus as nested trees. ?slug= narrows the
// result to a single menu.
func (p *Public) Navigation(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}
	menuSlug := r.URL.Query().Get("slug")

	p.serve(w, r, cache.Key(st, r.URL.Path, r.URL.RawQuery), func() (any, error) {
		menus, err := p.navigation.ListMenus(st, menuSlug)
		if err != nil {
			return nil, err
		}
		out := make([]serializer.FlatMenu, 0, len(menus))
		for i := range menus {
			out = append(out, serializer.FlattenMenu(&menus[i]))
		}
		return out, nil
	})
}

// Settings returns a site's settings merged over the built-in defaults.
// Missing keys never surface as errors.
func (p *Public) Settings(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}

	p.serve(w, r, cache.Key(st, r.URL.Path, r.URL.RawQuery), func() (any, error) {
		rows, err := p.settings.ListBySite(st)
		if err != nil {
			return nil, err
		}
		return serializer.FlattenSettings(st, rows), nil
	})
}

// Redirects returns a site's redirect rules for the frontend to apply.
func (p *Public) Redirects(w http.ResponseWriter, r *http.Request) {
	st, ok := resolveSite(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, "Unknown site.")
		return
	}

	p.serve(w, r, cache.Key(st, r.URL.Path, r.URL.RawQuery), func() (any, error) {
		rules, err := p.redirects.ListBySite(st)
		if err != nil {
			return nil, err
		}
		if rules == nil {
			rules = []models.Redirect{}
		}
		return rules, nil
	})
}
