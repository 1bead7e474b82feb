// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search provides semantic (vector similarity) search over the
// collection article tables. Queries are embedded through the AI
// embedding provider and ranked with pgvector's cosine distance.
package search

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"brandpress/internal/models"
)

// ErrNotEnabled means semantic search is switched off, either by
// configuration or because no embedding credential is available.
var ErrNotEnabled = errors.New("search: semantic search not enabled")

// ErrUnknownCollection means the requested collection has no backing
// article table.
var ErrUnknownCollection = errors.New("search: unknown collection")

// Embedder converts text into a fixed-length numeric vector.
type Embedder interface {
	Configured() bool
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
}

// Result is one ranked similarity hit.
type Result struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Excerpt    string  `json:"excerpt"`
	Similarity float64 `json:"similarity"`
}

const defaultLimit = 10

// Service runs similarity queries against the vector columns of the
// collection tables.
type Service struct {
	db       *sql.DB
	embedder Embedder
	enabled  bool
}

// New creates the search service. The enabled flag comes from
// configuration; the service additionally requires a configured
// embedding provider before it reports itself enabled.
func New(db *sql.DB, embedder Embedder, enabled bool) *Service {
	return &Service{db: db, embedder: embedder, enabled: enabled}
}

// Enabled reports whether semantic search may be used: the feature flag
// must be on AND the embedding provider must have a credential.
func (s *Service) Enabled() bool {
	return s.enabled && s.embedder.Configured()
}

// Search embeds the query and returns up to limit articles of the
// collection ordered by descending similarity. Returns ErrNotEnabled
// without calling the embedding provider when the feature is off.
func (s *Service) Search(ctx context.Context, query, collection string, limit int) ([]Result, error) {
	if !s.Enabled() {
		return nil, ErrNotEnabled
	}
	table, err := tableFor(collection)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	embedding, err := s.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	vec := vectorLiteral(embedding)

	// Cosine distance ascending == similarity descending.
	q := fmt.Sprintf(`
		SELECT id, title, slug, COALESCE(excerpt, ''),
		       1 - (embedding <=> $1::vector) AS similarity
		FROM %s
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1::vector
		LIMIT $2
	`, table)

	rows, err := s.db.QueryContext(ctx, q, vec, limit)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Title, &r.Slug, &r.Excerpt, &r.Similarity); err != nil {
			return nil, fmt.Errorf("scan similarity row: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// IndexArticle embeds the article's title, excerpt, and content and
// stores the vector on its row so the article becomes searchable.
func (s *Service) IndexArticle(ctx context.Context, article models.Article, collection string) error {
	if !s.Enabled() {
		return ErrNotEnabled
	}
	table, err := tableFor(collection)
	if err != nil {
		return err
	}

	text := strings.TrimSpace(article.Title + " " + article.Excerpt + " " + article.Content)
	embedding, err := s.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return fmt.Errorf("embed article: %w", err)
	}

	q := fmt.Sprintf(`UPDATE %s SET embedding = $1::vector WHERE id = $2`, table)
	if _, err := s.db.ExecContext(ctx, q, vectorLiteral(embedding), article.ID); err != nil {
		return fmt.Errorf("store embedding: %w", err)
	}
	return nil
}

// tableFor resolves a collection identifier to its whitelisted table.
func tableFor(collection string) (string, error) {
	table, ok := models.TableFor(collection)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return table, nil
}

// vectorLiteral renders an embedding in pgvector's input format,
// e.g. "[0.1,0.2,0.3]".
func vectorLiteral(v []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
