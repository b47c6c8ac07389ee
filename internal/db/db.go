// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the data access layer for Snippets.
// It abstracts the underlying database (SQLite, PostgreSQL, MySQL) behind a
// consistent interface, allowing the rest of the application to interact with
// the database in a uniform way.
package db // import "github.com/toeirei/snippets/internal/db"

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported database types.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeMySQL    = "mysql"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// driverName maps a configured database type to its database/sql driver name.
func driverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite:
		return "sqlite", nil
	case TypePostgres:
		// The pgx stdlib registers driver name "pgx".
		return "pgx", nil
	case TypeMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedDBType, dbType)
	}
}

// NewStoreFromDSN opens a sql.DB for the given DSN, makes sure the snippets
// table exists and returns a Store backed by a long-lived *bun.DB.
func NewStoreFromDSN(dbType, dsn string) (Store, error) {
	return NewStoreFromDSNContext(context.Background(), dbType, dsn)
}

// NewStoreFromDSNContext is NewStoreFromDSN with a caller-supplied context for
// the initial ping and table bootstrap.
func NewStoreFromDSNContext(ctx context.Context, dbType, dsn string) (Store, error) {
	drv, err := driverName(dbType)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(drv, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	configurePool(sqlDB, dbType, dsn)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbLogf("db: opened %s driver in %s", drv, time.Since(start))

	bdb := createBunDB(sqlDB, dbType)
	if err := ensureSchema(ctx, bdb, dbType); err != nil {
		_ = bdb.Close()
		return nil, fmt.Errorf("failed to prepare snippets table: %w", err)
	}
	return &BunStore{bun: bdb, dbType: dbType}, nil
}

// configurePool applies connection pool defaults, overridable through
// environment variables for CI or production tuning.
func configurePool(sqlDB *sql.DB, dbType, dsn string) {
	const (
		defaultMaxOpenConns    = 4
		defaultMaxIdleConns    = 4
		defaultConnMaxLifetime = 5 * time.Minute
	)

	maxOpen := envInt("SNIPPETS_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("SNIPPETS_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	connMax := defaultConnMaxLifetime
	if n := envInt("SNIPPETS_DB_CONN_MAX_LIFETIME_SECONDS", -1); n >= 0 {
		connMax = time.Duration(n) * time.Second
	}

	// In-memory SQLite databases exist per connection; a second connection
	// would see an empty schema.
	if dbType == TypeSQLite && isMemoryDSN(dsn) {
		maxOpen = 1
		maxIdle = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMax)
	dbLogf("db: pool max open=%d idle=%d maxLifetime=%s", maxOpen, maxIdle, connMax)
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case TypePostgres:
		return bun.NewDB(sqlDB, pgdialect.New())
	case TypeMySQL:
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}
