// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the cobra command tree for Snippets. Commands stay
// thin: they parse arguments, call into internal/core and format the result.
package cli
