// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"brandpress/internal/models"
	"brandpress/internal/search"
	"brandpress/internal/store"
)

// Searcher runs similarity queries over article collections and indexes
// article embeddings.
type Searcher interface {
	Enabled() bool
	Search(ctx context.Context, query, collection string, limit int) ([]search.Result, error)
	IndexArticle(ctx context.Context, article models.Article, collection string) error
}

// ArticleGetter loads article records for indexing.
type ArticleGetter interface {
	GetByID(ctx context.Context, collection string, id int64) (*models.Article, error)
}

// Search bundles the semantic search endpoints.
type Search struct {
	svc      Searcher
	articles ArticleGetter
}

func NewSearch(svc Searcher, articles ArticleGetter) *Search {
	return &Search{svc: svc, articles: articles}
}

// Semantic handles POST /search/semantic.
func (h *Search) Semantic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query      string `json:"query"`
		Collection string `json:"collection"`
		Limit      int    `json:"limit"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if msg := validateSearchInput(req.Query, req.Limit); msg != "" {
		writeError(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	results, err := h.svc.Search(r.Context(), req.Query, req.Collection, req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrNotEnabled):
			writeError(w, http.StatusBadRequest, "not_enabled", "semantic search is not enabled")
		case errors.Is(err, search.ErrUnknownCollection):
			writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			slog.Error("semantic search failed", "error", err)
			writeError(w, http.StatusInternalServerError, "search_error", err.Error())
		}
		return
	}
	if results == nil {
		results = []search.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// Index handles POST /search/index: it loads one article and stores its
// embedding so the article becomes searchable.
func (h *Search) Index(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Collection string `json:"collection"`
		ID         int64  `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "validation_error", "id is required")
		return
	}
	if !h.svc.Enabled() {
		writeError(w, http.StatusBadRequest, "not_enabled", "semantic search is not enabled")
		return
	}

	article, err := h.articles.GetByID(r.Context(), req.Collection, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "article not found")
		case errors.Is(err, store.ErrUnknownCollection):
			writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			slog.Error("load article for indexing failed", "error", err)
			writeError(w, http.StatusInternalServerError, "search_error", err.Error())
		}
		return
	}

	if err := h.svc.IndexArticle(r.Context(), *article, req.Collection); err != nil {
		slog.Error("index article failed", "collection", req.Collection, "id", req.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "search_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"indexed": true, "id": req.ID})
}

// Status handles GET /search/status.
func (h *Search) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": h.svc.Enabled()})
}
