// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain records shared by the storage and
// search layers.
package models

import "time"

// Article is one record of a collection article table. Embedding state
// is not carried here; the search layer manages the vector column.
type Article struct {
	ID        int64
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// collectionTables maps public collection identifiers to their article
// tables. Table names are never taken from raw input; only values of
// this whitelist may reach SQL text.
var collectionTables = map[string]string{
	"yaicos-article":     "yaicos_articles",
	"amabex-article":     "amabex_articles",
	"guardscan-article":  "guardscan_articles",
	"yaicos_articles":    "yaicos_articles",
	"amabex_articles":    "amabex_articles",
	"guardscan_articles": "guardscan_articles",
}

// DefaultTable receives queries that name no collection.
const DefaultTable = "guardscan_articles"

// TableFor resolves a collection identifier to its whitelisted article
// table. The empty identifier selects the default table; unknown
// identifiers report ok=false.
func TableFor(collection string) (table string, ok bool) {
	if collection == "" {
		return DefaultTable, true
	}
	table, ok = collectionTables[collection]
	return table, ok
}
