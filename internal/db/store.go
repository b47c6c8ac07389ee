// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"time"

	"github.com/toeirei/snippets/internal/model"
)

// Store defines the interface for all database operations in Snippets.
// This allows for multiple database backends to be implemented.
type Store interface {
	// Put inserts the snippet or, when the keyword already exists, replaces
	// its message. It is a single atomic upsert.
	Put(ctx context.Context, keyword, message string) (model.Snippet, error)
	// Get returns ErrNotFound when no snippet has the keyword.
	Get(ctx context.Context, keyword string) (model.Snippet, error)
	// Keywords returns every keyword in ascending order.
	Keywords(ctx context.Context) ([]string, error)
	// Search returns snippets whose message contains substring (case-sensitive).
	Search(ctx context.Context, substring string) ([]model.Snippet, error)
	All(ctx context.Context) ([]model.Snippet, error)

	// Import writes snippets in one transaction. Without overwrite, keywords
	// that already exist are skipped.
	Import(ctx context.Context, snippets []model.Snippet, overwrite bool) (ImportResult, error)
	Maintain(ctx context.Context, opts MaintenanceOptions) error

	Close() error
}

// ImportResult reports how many snippets an Import wrote or skipped.
type ImportResult struct {
	Written int
	Skipped int
}

// MaintenanceOptions tunes Store.Maintain.
type MaintenanceOptions struct {
	SkipIntegrity bool
	Timeout       time.Duration
}
