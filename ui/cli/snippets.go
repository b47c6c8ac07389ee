// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/snippets/internal/core"
	"github.com/toeirei/snippets/internal/i18n"
	"golang.org/x/term"
)

// clipboardWrite is a package-level variable so tests can replace the
// system clipboard.
var clipboardWrite = clipboard.WriteAll

// isTerminal reports whether r is an interactive terminal.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newPutCmd(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:   "put <name> <snippet>",
		Short: i18n.T("put.short"),
		Long: `Stores a snippet under the given name. An existing snippet with the
same name is replaced. Pass "-" as the snippet to read the text from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := snippetArg(cmd, args[1])
			if err != nil {
				return err
			}
			name, stored, err := core.Put(cmd.Context(), svc.store, args[0], text)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("put.cli_stored", stored, name))
			return nil
		},
	}
}

// snippetArg returns arg, or the contents of stdin when arg is "-". A single
// trailing newline is dropped from stdin input.
func snippetArg(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	in := cmd.InOrStdin()
	if isTerminal(in) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("put.cli_reading_stdin"))
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("could not read snippet from stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func newGetCmd(svc *services) *cobra.Command {
	var copyToClipboard bool
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: i18n.T("get.short"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := core.Get(cmd.Context(), svc.store, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("get.cli_retrieved", text))
			if copyToClipboard && text != core.NotFoundMessage {
				if err := clipboardWrite(text); err != nil {
					return fmt.Errorf("could not copy to clipboard: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("get.cli_copied"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Also copy the snippet to the clipboard")
	return cmd
}

func newCatalogCmd(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: i18n.T("catalog.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords, err := core.Catalog(cmd.Context(), svc.store)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("catalog.cli_keywords", formatKeywords(keywords)))
			return nil
		},
	}
}

// formatKeywords renders keywords as a bracketed list of quoted strings.
func formatKeywords(keywords []string) string {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func newSearchCmd(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: i18n.T("search.short"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := core.Search(cmd.Context(), svc.store, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(found) == 0 {
				_, _ = fmt.Fprintln(out, i18n.T("search.cli_no_results"))
				return nil
			}
			_, _ = fmt.Fprintln(out, i18n.T("search.cli_results"))
			for _, s := range found {
				_, _ = fmt.Fprintln(out, s.String())
			}
			return nil
		},
	}
}
