// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"

	"github.com/toeirei/snippets/internal/db"
	"github.com/toeirei/snippets/internal/logging"
)

// RunDBMaintenance runs engine-specific maintenance for the store.
func RunDBMaintenance(ctx context.Context, st db.Store, opts db.MaintenanceOptions) error {
	logging.Infof("Running database maintenance (skip integrity=%t, timeout=%s)", opts.SkipIntegrity, opts.Timeout)
	if err := st.Maintain(ctx, opts); err != nil {
		logging.Errorf("Database maintenance failed: %v", err)
		return err
	}
	return nil
}
