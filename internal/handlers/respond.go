// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package handlers implements the public read API and the authenticated
// admin API. Both speak JSON; the public surface never requires
// credentials and degrades to defaults instead of failing.
package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/Amareteklay/adapticus-backend/internal/locale"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// errResponse is the JSON error envelope used by every endpoint.
type errResponse struct {
	Detail string `json:"detail"`
}

func respondError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, errResponse{Detail: detail})
}

// resolveSite reads the ?site= query parameter. An absent parameter selects
// the default site; an unknown value is a client error.
func resolveSite(r *http.Request) (site.ID, bool) {
	return site.Resolve(r.URL.Query().Get("site"))
}

// resolveLocale picks the response locale from ?lang=, falling back to the
// Accept-Language header. The result is always a supported locale.
func resolveLocale(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return locale.Resolve(lang)
	}
	return locale.Resolve(r.Header.Get("Accept-Language"))
}
