// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/snippets/internal/i18n"
	"github.com/toeirei/snippets/internal/model"
	"github.com/toeirei/snippets/internal/tui"
)

// runBrowse is a package-level variable so tests can bypass the terminal UI.
var runBrowse = func(snippets []model.Snippet) (model.Snippet, bool, error) {
	return tui.Run(snippets)
}

func newBrowseCmd(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: i18n.T("browse.short"),
		Long: `Opens an interactive list of all snippets. Typing filters by keyword and
text; enter copies the highlighted snippet to the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(os.Stdout) {
				return errors.New(i18n.T("browse.cli_requires_terminal"))
			}
			all, err := svc.store.All(cmd.Context())
			if err != nil {
				return err
			}
			s, ok, err := runBrowse(all)
			if err != nil || !ok {
				return err
			}
			if err := clipboardWrite(s.Message); err != nil {
				return fmt.Errorf("could not copy to clipboard: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("browse.cli_copied", s.Keyword))
			return nil
		},
	}
}
