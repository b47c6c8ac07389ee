// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "time"

// CurrentBackupSchemaVersion is written into every new backup.
const CurrentBackupSchemaVersion = 1

// BackupData is a container for all data exported for a backup.
type BackupData struct {
	// SchemaVersion helps in handling format changes during restore.
	SchemaVersion int       `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`
	Snippets      []Snippet `json:"snippets"`
}
