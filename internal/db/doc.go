// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db contains the data-access layer for Snippets.
//
// A single bun-backed Store serves every supported backend (SQLite,
// PostgreSQL, MySQL). Dialect differences are confined to a handful of SQL
// fragments: the upsert clause, the case-sensitive substring predicate and
// the table DDL.
//
// Every Store method runs exactly one logical operation inside a scoped
// transaction (`bun.DB.RunInTx`), which commits on success and rolls back on
// any error.
//
// Values reach the database as escaped literals that bun renders into the
// statement on the client; the drivers do not receive bound parameters.
// Keywords and messages are therefore validated first: text with NUL bytes
// or invalid UTF-8 is rejected with ErrInvalidText instead of being stored
// altered.
//
// Testing notes
//   - Prefer `db.NewStoreFromDSN("sqlite", "file:<name>?mode=memory&cache=shared")`
//     in tests that need real DB semantics.
//   - For fast unit tests that don't need a DB, use `FakeStore`.
package db
