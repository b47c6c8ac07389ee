// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/uptrace/bun"
)

// SnippetModel maps the `snippets` table for Bun queries.
type SnippetModel struct {
	bun.BaseModel `bun:"table:snippets"`
	Keyword       string `bun:"keyword,pk"`
	Message       string `bun:"message,notnull"`
}

// MySQL does not permit TEXT/BLOB columns to be indexed without a length,
// so the key is a VARCHAR with a safe length there. Its binary collation
// keeps keywords case-sensitive like on the other engines.
const (
	createTableSQL      = `CREATE TABLE IF NOT EXISTS snippets (keyword TEXT NOT NULL PRIMARY KEY, message TEXT NOT NULL)`
	createTableMySQLSQL = `CREATE TABLE IF NOT EXISTS snippets (keyword VARCHAR(191) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL PRIMARY KEY, message TEXT NOT NULL) DEFAULT CHARSET=utf8mb4`
)

// ensureSchema creates the snippets table when it does not exist yet.
func ensureSchema(ctx context.Context, bdb *bun.DB, dbType string) error {
	ddl := createTableSQL
	if dbType == TypeMySQL {
		ddl = createTableMySQLSQL
	}
	_, err := ExecRaw(ctx, bdb, ddl)
	return err
}
