// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store handles database access to the collection article tables.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"brandpress/internal/models"
)

// ErrNotFound is returned when no article matches the requested ID.
var ErrNotFound = errors.New("store: article not found")

// ErrUnknownCollection is returned for collection identifiers with no
// backing table.
var ErrUnknownCollection = errors.New("store: unknown collection")

// ArticleStore reads article records from the collection tables.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database
// connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// GetByID loads one article from the collection's table.
func (s *ArticleStore) GetByID(ctx context.Context, collection string, id int64) (*models.Article, error) {
	table, ok := models.TableFor(collection)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	q := fmt.Sprintf(`
		SELECT id, title, slug, COALESCE(excerpt, ''), COALESCE(content, ''),
		       created_at, updated_at
		FROM %s
		WHERE id = $1
	`, table)

	var a models.Article
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d from %s: %w", id, table, err)
	}
	return &a, nil
}

// ListUnindexed returns the IDs of articles in the collection that have
// no embedding yet, oldest first, up to limit.
func (s *ArticleStore) ListUnindexed(ctx context.Context, collection string, limit int) ([]int64, error) {
	table, ok := models.TableFor(collection)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if limit <= 0 {
		limit = 100
	}

	q := fmt.Sprintf(`
		SELECT id FROM %s
		WHERE embedding IS NULL
		ORDER BY created_at ASC
		LIMIT $1
	`, table)

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list unindexed in %s: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unindexed id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
