// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/snippets/internal/core"
	"github.com/toeirei/snippets/internal/db"
	"github.com/toeirei/snippets/internal/i18n"
	"github.com/toeirei/snippets/internal/logging"
)

// nowFunc is replaced in tests to get a stable default backup name.
var nowFunc = time.Now

func defaultBackupFile() string {
	return fmt.Sprintf("snippets-backup-%s.json.zst", nowFunc().Format("2006-01-02"))
}

func newBackupCmd(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: i18n.T("backup.short"),
		Long: `Dumps every snippet into a single, Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's not already present.
If no output file is specified, a default filename 'snippets-backup-YYYY-MM-DD.json.zst' is used.

Examples:
  # Backup to a default file (e.g., snippets-backup-2026-03-01.json.zst)
  snippets backup

  # Backup to a specific file
  snippets backup my-backup.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile := defaultBackupFile()
			if len(args) > 0 {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, i18n.T("backup.cli_starting"))

			data, err := core.Backup(cmd.Context(), svc.store)
			if err != nil {
				return err
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("could not create backup file: %w", err)
			}
			if err := core.WriteBackup(data, f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("could not write backup file: %w", err)
			}
			logging.Infof("Backup of %d snippets written to %s", len(data.Snippets), outputFile)
			_, _ = fmt.Fprintln(out, i18n.T("backup.cli_success", len(data.Snippets), outputFile))
			return nil
		},
	}
}

func newRestoreCmd(svc *services) *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "restore <backup-file>",
		Short: i18n.T("restore.short"),
		Long: `Imports snippets from a backup created with 'snippets backup'.

By default only keywords that do not exist yet are added; existing snippets
keep their current text. With --overwrite every snippet in the backup replaces
the stored one. Restore never removes snippets.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, i18n.T("restore.cli_starting", args[0]))
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open backup file: %w", err)
			}
			defer func() { _ = f.Close() }()

			res, err := core.Restore(cmd.Context(), svc.store, f, core.RestoreOptions{Overwrite: overwrite})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, i18n.T("restore.cli_success", res.Written, res.Skipped))
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the text of snippets that already exist")
	return cmd
}

func newDBMaintainCmd(svc *services) *cobra.Command {
	var skipIntegrity bool
	var timeoutSec int
	cmd := &cobra.Command{
		Use:   "db-maintain",
		Short: i18n.T("maintain.short"),
		Long:  `Runs engine-specific maintenance tasks (VACUUM, OPTIMIZE TABLE, PRAGMA optimize).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if skipIntegrity {
				_, _ = fmt.Fprintln(out, i18n.T("maintain.cli_skip_integrity"))
			}
			opts := db.MaintenanceOptions{
				SkipIntegrity: skipIntegrity,
				Timeout:       time.Duration(timeoutSec) * time.Second,
			}
			if err := core.RunDBMaintenance(cmd.Context(), svc.store, opts); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, i18n.T("maintain.cli_success"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipIntegrity, "skip-integrity", false, "Skip integrity_check (SQLite) during maintenance")
	cmd.Flags().IntVar(&timeoutSec, "timeout", 0, "Timeout in seconds for maintenance (0 means no timeout)")
	return cmd
}
