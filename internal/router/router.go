// Package router sets up all HTTP routes and middleware chains for the
// content API. It organizes routes into the public read surface and the
// authenticated admin API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Amareteklay/adapticus-backend/internal/handlers"
	"github.com/Amareteklay/adapticus-backend/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, admin *handlers.Admin, verifier middleware.CredentialVerifier) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check, no auth.
	r.Get("/health", healthHandler)

	// Public read API. Site and locale come from query parameters and the
	// Accept-Language header; no credentials involved.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/content/posts", public.ListPosts)
		r.Get("/content/posts/{slug}", public.GetPost)
		r.Get("/content/pages", public.ListPages)
		r.Get("/content/pages/{slug}", public.GetPage)
		r.Get("/navigation", public.Navigation)
		r.Get("/settings", public.Settings)
		r.Get("/redirects", public.Redirects)
	})

	// Admin write API, HTTP Basic auth against the editors table.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.BasicAuth(verifier))

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", admin.PostCreate)
			r.Get("/{id}", admin.PostGet)
			r.Put("/{id}", admin.PostUpdate)
			r.Delete("/{id}", admin.PostDelete)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Post("/", admin.PageCreate)
			r.Put("/{id}", admin.PageUpdate)
			r.Delete("/{id}", admin.PageDelete)
		})

		r.Post("/authors", admin.AuthorCreate)

		r.Put("/navigation/{slug}", admin.MenuReplace)
		r.Put("/settings/{key}", admin.SettingPut)

		r.Put("/redirects", admin.RedirectPut)
		r.Delete("/redirects", admin.RedirectDelete)

		r.Route("/media", func(r chi.Router) {
			r.Post("/", admin.MediaUpload)
			r.Delete("/{id}", admin.MediaDelete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
