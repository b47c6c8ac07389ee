// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"
)

// Maintain performs engine-specific maintenance tasks. For SQLite this runs
// PRAGMA optimize, VACUUM, a WAL checkpoint and (unless skipped) an
// integrity check. For Postgres it runs VACUUM ANALYZE; for MySQL OPTIMIZE
// TABLE on the snippets table.
func (s *BunStore) Maintain(ctx context.Context, opts MaintenanceOptions) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	switch s.dbType {
	case TypeSQLite:
		// PRAGMA optimize may not be supported or useful in some environments
		// (e.g., in-memory databases); treat optimize errors as non-fatal.
		if _, err := ExecRaw(ctx, s.bun, "PRAGMA optimize"); err != nil {
			dbLogf("db: sqlite optimize failed (ignored): %v", err)
		}
		if _, err := ExecRaw(ctx, s.bun, "VACUUM"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", err)
		}
		// WAL checkpoint; ignore errors if not in WAL mode.
		_, _ = ExecRaw(ctx, s.bun, "PRAGMA wal_checkpoint(TRUNCATE)")
		if opts.SkipIntegrity {
			return nil
		}
		var res string
		if err := QueryRawInto(ctx, s.bun, &res, "PRAGMA integrity_check"); err != nil {
			return fmt.Errorf("sqlite integrity_check failed: %w", err)
		}
		if res != "ok" {
			return fmt.Errorf("sqlite integrity_check failed: %s", res)
		}
	case TypePostgres:
		if _, err := ExecRaw(ctx, s.bun, "VACUUM ANALYZE snippets"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case TypeMySQL:
		if _, err := ExecRaw(ctx, s.bun, "OPTIMIZE TABLE snippets"); err != nil {
			return fmt.Errorf("mysql optimize failed: %w", err)
		}
	default:
		return fmt.Errorf("%w for maintenance: %s", ErrUnsupportedDBType, s.dbType)
	}
	dbLogf("db: %s maintenance completed", s.dbType)
	return nil
}
