// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrDuplicate is returned when attempting to insert a record that already exists.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned when no snippet matches the requested keyword.
	ErrNotFound = errors.New("snippet not found")
	// ErrUnsupportedDBType is returned for database types other than sqlite, postgres and mysql.
	ErrUnsupportedDBType = errors.New("unsupported database type")
	// ErrInvalidText is returned for a keyword or message that cannot be
	// stored byte-for-byte: it contains a NUL byte or is not valid UTF-8.
	ErrInvalidText = errors.New("text must be valid UTF-8 without NUL bytes")
)

// validateText rejects text that bun would alter while rendering it into a
// SQL literal (NUL bytes are dropped, invalid UTF-8 becomes U+FFFD).
func validateText(keyword, message string) error {
	for _, f := range []struct{ name, value string }{{"keyword", keyword}, {"message", message}} {
		if strings.IndexByte(f.value, 0) >= 0 {
			return fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidText, f.name)
		}
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidText, f.name)
		}
	}
	return nil
}

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	sqliteConstraintPK   = sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	sqliteConstraintUniq = sqlite3.SQLITE_CONSTRAINT_UNIQUE
)

// MapDBError inspects low-level driver errors and maps uniqueness
// violations to ErrDuplicate. Typed driver errors are checked first; the
// string match catches drivers that wrap them in plain errors.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		if code := sqErr.Code(); code == sqliteConstraintPK || code == sqliteConstraintUniq {
			return ErrDuplicate
		}
	}

	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	le := strings.ToLower(err.Error())
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique constraint") || strings.Contains(le, pgUniqueViolation) || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
