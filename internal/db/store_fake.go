// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/toeirei/snippets/internal/model"
)

// FakeStore is a minimal, in-memory Store used by tests.
type FakeStore struct {
	// Snippets holds the stored messages by keyword. Nil is treated as empty.
	Snippets map[string]string
	// Err, if non-nil, is returned from every method.
	Err error
	// Maintained counts Maintain calls.
	Maintained int
	Closed     bool
}

// NewFakeStore returns an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{Snippets: map[string]string{}}
}

func (f *FakeStore) ensure() {
	if f.Snippets == nil {
		f.Snippets = map[string]string{}
	}
}

// Put implements Store.
func (f *FakeStore) Put(_ context.Context, keyword, message string) (model.Snippet, error) {
	if f.Err != nil {
		return model.Snippet{}, f.Err
	}
	if err := validateText(keyword, message); err != nil {
		return model.Snippet{}, err
	}
	f.ensure()
	f.Snippets[keyword] = message
	return model.Snippet{Keyword: keyword, Message: message}, nil
}

// Get implements Store.
func (f *FakeStore) Get(_ context.Context, keyword string) (model.Snippet, error) {
	if f.Err != nil {
		return model.Snippet{}, f.Err
	}
	msg, ok := f.Snippets[keyword]
	if !ok {
		return model.Snippet{}, ErrNotFound
	}
	return model.Snippet{Keyword: keyword, Message: msg}, nil
}

// Keywords implements Store.
func (f *FakeStore) Keywords(_ context.Context) ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]string, 0, len(f.Snippets))
	for k := range f.Snippets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// Search implements Store.
func (f *FakeStore) Search(ctx context.Context, substring string) ([]model.Snippet, error) {
	all, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Snippet, 0, len(all))
	for _, s := range all {
		if strings.Contains(s.Message, substring) {
			out = append(out, s)
		}
	}
	return out, nil
}

// All implements Store.
func (f *FakeStore) All(ctx context.Context) ([]model.Snippet, error) {
	keys, err := f.Keywords(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Snippet, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.Snippet{Keyword: k, Message: f.Snippets[k]})
	}
	return out, nil
}

// Import implements Store.
func (f *FakeStore) Import(_ context.Context, snippets []model.Snippet, overwrite bool) (ImportResult, error) {
	if f.Err != nil {
		return ImportResult{}, f.Err
	}
	for _, s := range snippets {
		if err := validateText(s.Keyword, s.Message); err != nil {
			return ImportResult{}, fmt.Errorf("snippet %q: %w", s.Keyword, err)
		}
	}
	f.ensure()
	var res ImportResult
	for _, s := range snippets {
		if _, exists := f.Snippets[s.Keyword]; exists && !overwrite {
			res.Skipped++
			continue
		}
		f.Snippets[s.Keyword] = s.Message
		res.Written++
	}
	return res, nil
}

// Maintain implements Store.
func (f *FakeStore) Maintain(_ context.Context, _ MaintenanceOptions) error {
	if f.Err != nil {
		return f.Err
	}
	f.Maintained++
	return nil
}

// Close implements Store.
func (f *FakeStore) Close() error {
	f.Closed = true
	return nil
}
