// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
	"github.com/Amareteklay/adapticus-backend/internal/slug"
)

// authorRequest is the write payload for authors. Site is optional; an
// empty value makes the author usable on every site.
type authorRequest struct {
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Bio      string     `json:"bio"`
	URL      string     `json:"url"`
	AvatarID *uuid.UUID `json:"avatar_id,omitempty"`
	Site     string     `json:"site,omitempty"`
}

// AuthorCreate handles POST /admin/api/authors.
func (a *Admin) AuthorCreate(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, r, http.StatusBadRequest, "Name is required.")
		return
	}

	author := &models.Author{
		Name:     req.Name,
		Slug:     req.Slug,
		Bio:      req.Bio,
		URL:      req.URL,
		AvatarID: req.AvatarID,
	}
	if author.Slug == "" {
		author.Slug = slug.Generate(req.Name)
	}
	if req.Site != "" {
		st, ok := site.Resolve(req.Site)
		if !ok {
			respondError(w, r, http.StatusBadRequest, "Unknown site.")
			return
		}
		s := string(st)
		author.Site = &s
	}

	created, err := a.authors.Create(author)
	if err != nil {
		slog.Error("create author failed", "error", err, "slug", author.Slug)
		respondError(w, r, http.StatusInternalServerError, "Failed to create author.")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}
