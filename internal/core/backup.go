// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/snippets/internal/db"
	"github.com/toeirei/snippets/internal/logging"
	"github.com/toeirei/snippets/internal/model"
)

// ErrUnsupportedBackup is returned for backups written with an unknown schema version.
var ErrUnsupportedBackup = errors.New("unsupported backup schema version")

// RestoreOptions controls Restore.
type RestoreOptions struct {
	// Overwrite replaces the message of snippets that already exist. Without
	// it only missing keywords are added.
	Overwrite bool
}

// nowFunc is replaced in tests.
var nowFunc = time.Now

// Backup exports all snippets into a BackupData structure.
func Backup(ctx context.Context, st db.Store) (*model.BackupData, error) {
	snippets, err := st.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not export snippets: %w", err)
	}
	return &model.BackupData{
		SchemaVersion: model.CurrentBackupSchemaVersion,
		CreatedAt:     nowFunc().UTC(),
		Snippets:      snippets,
	}, nil
}

// WriteBackup streams data as JSON into a zstd-compressed writer.
func WriteBackup(data *model.BackupData, w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	encoder := json.NewEncoder(zw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	// Close flushes the final frame.
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish zstd stream: %w", err)
	}
	return nil
}

// ReadBackup decodes a zstd-compressed JSON backup.
func ReadBackup(r io.Reader) (*model.BackupData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var data model.BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if data.SchemaVersion < 1 || data.SchemaVersion > model.CurrentBackupSchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBackup, data.SchemaVersion)
	}
	return &data, nil
}

// Restore reads a backup from r and imports it into st. Nothing is deleted.
func Restore(ctx context.Context, st db.Store, r io.Reader, opts RestoreOptions) (db.ImportResult, error) {
	data, err := ReadBackup(r)
	if err != nil {
		return db.ImportResult{}, err
	}
	logging.Infof("Restoring %d snippets (overwrite=%t)", len(data.Snippets), opts.Overwrite)
	res, err := st.Import(ctx, data.Snippets, opts.Overwrite)
	if err != nil {
		return db.ImportResult{}, err
	}
	logging.Debugf("Restore finished: %d written, %d skipped", res.Written, res.Skipped)
	return res, nil
}
