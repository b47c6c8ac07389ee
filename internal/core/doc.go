// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core defines the high-level operations used by UI layers (CLI/TUI).
// Every facade receives its db.Store explicitly; core holds no package-level
// store. CLI code should remain thin and delegate to these functions.
package core
