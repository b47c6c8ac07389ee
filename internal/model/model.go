// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures used by Snippets.
package model // import "github.com/toeirei/snippets/internal/model"

import "fmt"

// Snippet is a named piece of text. Keyword is unique across the store.
type Snippet struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
}

// String returns the keyword/message pair quoted the same way the CLI prints it.
func (s Snippet) String() string {
	return fmt.Sprintf("%q: %q", s.Keyword, s.Message)
}
