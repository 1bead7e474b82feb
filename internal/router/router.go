// Package router sets up the HTTP routes and middleware chain for the
// BrandPress AI authoring API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandpress/internal/handlers"
	"brandpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(aiHandlers *handlers.AI, searchHandlers *handlers.Search) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// AI authoring endpoints.
	r.Route("/ai", func(r chi.Router) {
		r.Post("/generate-seo", aiHandlers.GenerateSEO)
		r.Post("/generate-excerpt", aiHandlers.GenerateExcerpt)
		r.Post("/generate-blog-draft", aiHandlers.GenerateBlogDraft)
		r.Post("/generate-image", aiHandlers.GenerateImage)
		r.Get("/status", aiHandlers.Status)
	})

	// Semantic search endpoints.
	r.Route("/search", func(r chi.Router) {
		r.Post("/semantic", searchHandlers.Semantic)
		r.Post("/index", searchHandlers.Index)
		r.Get("/status", searchHandlers.Status)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
