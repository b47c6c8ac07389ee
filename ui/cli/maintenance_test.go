// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/toeirei/snippets/internal/model"
)

func TestBackupAndRestore(t *testing.T) {
	dir, dsn := testEnv(t)
	mustRun(t, dsn, "put", "a", "alpha")
	mustRun(t, dsn, "put", "b", "beta")

	backupFile := filepath.Join(dir, "out.json")
	out := mustRun(t, dsn, "backup", backupFile)
	if !strings.Contains(out, "Backup of 2 snippets written to "+backupFile+".zst") {
		t.Fatalf("unexpected backup output %q", out)
	}

	// Restore into a fresh database that already has a conflicting keyword.
	other := filepath.Join(dir, "other.db")
	mustRun(t, other, "put", "a", "local")
	out = mustRun(t, other, "restore", backupFile+".zst")
	if !strings.Contains(out, "Restore complete: 1 written, 1 skipped.") {
		t.Fatalf("unexpected restore output %q", out)
	}
	if got := mustRun(t, other, "get", "a"); !strings.Contains(got, `"local"`) {
		t.Fatalf("integrate restore overwrote existing snippet: %q", got)
	}
	if got := mustRun(t, other, "get", "b"); !strings.Contains(got, `"beta"`) {
		t.Fatalf("missing restored snippet: %q", got)
	}

	out = mustRun(t, other, "restore", "--overwrite", backupFile+".zst")
	if !strings.Contains(out, "Restore complete: 2 written, 0 skipped.") {
		t.Fatalf("unexpected overwrite output %q", out)
	}
	if got := mustRun(t, other, "get", "a"); !strings.Contains(got, `"alpha"`) {
		t.Fatalf("overwrite restore did not replace snippet: %q", got)
	}
}

func TestBackup_DefaultFileName(t *testing.T) {
	dir, dsn := testEnv(t)
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	mustRun(t, dsn, "backup")
	if _, err := os.Stat(filepath.Join(dir, "snippets-backup-2026-03-01.json.zst")); err != nil {
		t.Fatalf("expected default backup file: %v", err)
	}
}

func TestRestore_MissingFile(t *testing.T) {
	_, dsn := testEnv(t)
	if _, err := runCLI(t, dsn, nil, "restore", "nope.json.zst"); err == nil {
		t.Fatalf("expected error for missing backup file")
	}
}

func TestDBMaintain(t *testing.T) {
	_, dsn := testEnv(t)
	mustRun(t, dsn, "put", "a", "alpha")
	out := mustRun(t, dsn, "db-maintain", "--skip-integrity", "--timeout", "30")
	if !strings.Contains(out, "Skipping integrity_check") {
		t.Fatalf("expected skip notice, got %q", out)
	}
	if !strings.Contains(out, "Maintenance completed successfully") {
		t.Fatalf("expected success message, got %q", out)
	}
}

func TestBrowse_RequiresTerminal(t *testing.T) {
	_, dsn := testEnv(t)
	_, err := runCLI(t, dsn, strings.NewReader(""), "browse")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestBrowse_CopiesSelection(t *testing.T) {
	_, dsn := testEnv(t)
	mustRun(t, dsn, "put", "k", "secret text")

	origTerm, origBrowse, origClip := isTerminal, runBrowse, clipboardWrite
	defer func() { isTerminal, runBrowse, clipboardWrite = origTerm, origBrowse, origClip }()
	isTerminal = func(io.Reader) bool { return true }
	var offered []model.Snippet
	runBrowse = func(s []model.Snippet) (model.Snippet, bool, error) {
		offered = s
		return s[0], true, nil
	}
	var copied string
	clipboardWrite = func(s string) error { copied = s; return nil }

	out := mustRun(t, dsn, "browse")
	if len(offered) != 1 {
		t.Fatalf("expected all snippets passed to browse, got %v", offered)
	}
	if copied != "secret text" {
		t.Fatalf("expected clipboard to hold the message, got %q", copied)
	}
	if !strings.Contains(out, `Copied "k" to clipboard.`) {
		t.Fatalf("unexpected output %q", out)
	}

	// Leaving without a selection copies nothing.
	copied = ""
	runBrowse = func([]model.Snippet) (model.Snippet, bool, error) { return model.Snippet{}, false, nil }
	mustRun(t, dsn, "browse")
	if copied != "" {
		t.Fatalf("expected nothing copied, got %q", copied)
	}

	runBrowse = func([]model.Snippet) (model.Snippet, bool, error) { return model.Snippet{}, false, errors.New("tty gone") }
	if _, err := runCLI(t, dsn, nil, "browse"); err == nil {
		t.Fatalf("expected browse error to propagate")
	}
}
