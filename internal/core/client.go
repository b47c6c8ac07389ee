// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"

	"github.com/toeirei/snippets/internal/db"
	"github.com/toeirei/snippets/internal/logging"
	"github.com/toeirei/snippets/internal/model"
)

// NotFoundMessage is returned by Get in place of a message when no snippet
// has the requested keyword.
const NotFoundMessage = "404: Snippet not found"

// Put stores a snippet with an associated name and returns the stored pair.
// An existing snippet with the same name has its text replaced.
func Put(ctx context.Context, st db.Store, name, text string) (string, string, error) {
	logging.Infof("Storing snippet %q: %q", name, text)
	s, err := st.Put(ctx, name, text)
	if err != nil {
		return "", "", err
	}
	logging.Debugf("Snippet stored successfully.")
	return s.Keyword, s.Message, nil
}

// Get retrieves the text of the snippet with the given name, or
// NotFoundMessage when there is none.
func Get(ctx context.Context, st db.Store, name string) (string, error) {
	logging.Infof("Retrieving snippet %q", name)
	s, err := st.Get(ctx, name)
	if errors.Is(err, db.ErrNotFound) {
		logging.Debugf("No snippet named %q", name)
		return NotFoundMessage, nil
	}
	if err != nil {
		return "", err
	}
	logging.Debugf("Snippet retrieved successfully.")
	return s.Message, nil
}

// Catalog returns all stored keywords in ascending order.
func Catalog(ctx context.Context, st db.Store) ([]string, error) {
	logging.Infof("Retrieving keywords")
	keywords, err := st.Keywords(ctx)
	if err != nil {
		return nil, err
	}
	logging.Debugf("Keywords retrieved successfully")
	return keywords, nil
}

// Search returns the snippets whose text contains query.
func Search(ctx context.Context, st db.Store, query string) ([]model.Snippet, error) {
	logging.Infof("Searching snippets for %q", query)
	found, err := st.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	logging.Debugf("Search query finished successfully (%d matches)", len(found))
	return found, nil
}
