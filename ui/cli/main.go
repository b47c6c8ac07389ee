// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, global flags and the per-invocation
// service bootstrap (config, i18n, logging, store).

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/snippets/buildvars"
	"github.com/toeirei/snippets/internal/config"
	"github.com/toeirei/snippets/internal/db"
	"github.com/toeirei/snippets/internal/i18n"
	"github.com/toeirei/snippets/internal/logging"
)

const modulePath = "github.com/toeirei/snippets"

// skipServices marks commands that run without config, logging or a store.
const skipServices = "snippets.skip-services"

var version = buildvars.VersionOrDefault("dev")
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// services holds what one command tree opens for a run. Each root command
// owns its own instance, so separate trees never share a store.
type services struct {
	verbose bool
	cfg     config.Config
	store   db.Store // opened by setup, released by close
}

func (svc *services) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipServices] == "true" {
		return nil
	}

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	svc.cfg, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run: persist the effective configuration for the user to edit.
		if writeErr := config.WriteConfigFile(&svc.cfg, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return errors.New(i18n.T("config.error_load", err))
	}

	// Empty values in a config file fall back to the defaults.
	if svc.cfg.Database.Type == "" {
		svc.cfg.Database.Type = defaults["database.type"].(string)
	}
	if svc.cfg.Database.Dsn == "" {
		svc.cfg.Database.Dsn = defaults["database.dsn"].(string)
	}
	if svc.cfg.Language == "" {
		svc.cfg.Language = defaults["language"].(string)
	}
	if cmd.Flags().Changed("log-file") {
		svc.cfg.Log.File, _ = cmd.Flags().GetString("log-file")
	}
	if svc.cfg.Log.File == "" {
		svc.cfg.Log.File = logging.DefaultFile
	}

	i18n.Init(svc.cfg.Language)

	if err := logging.Open(svc.cfg.Log.File, svc.verbose); err != nil {
		// Logging is best effort; keep writing to stderr.
		logging.Warnf("%v", err)
	}
	db.SetDebug(svc.verbose)

	logging.Debugf("Connecting to %s database", svc.cfg.Database.Type)
	st, err := db.NewStoreFromDSNContext(cmd.Context(), svc.cfg.Database.Type, svc.cfg.Database.Dsn)
	if err != nil {
		return errors.New(i18n.T("config.error_init_db", err))
	}
	svc.store = st
	logging.Debugf("Database connection established.")
	return nil
}

// close releases the store and the log file. It is safe to call more than
// once.
func (svc *services) close() error {
	var err error
	if svc.store != nil {
		err = svc.store.Close()
		svc.store = nil
	}
	if cerr := logging.Close(); err == nil {
		err = cerr
	}
	return err
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	cmd, svc := newRootCmd()
	defer func() { _ = svc.close() }()
	return cmd.Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// Every call builds a fresh command tree with its own services.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *services) {
	svc := &services{}
	cmd := &cobra.Command{
		Use:               "snippets",
		Short:             i18n.T("root.short"),
		Long:              i18n.T("root.long"),
		Version:           compositeVersion(resolveBuildVersion(nil)),
		SilenceUsage:      true,
		PersistentPreRunE: svc.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return svc.close()
		},
	}

	cmd.PersistentFlags().BoolVarP(&svc.verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./snippets.db", "Database connection string (DSN)")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)
	cmd.PersistentFlags().String("log-file", logging.DefaultFile, "Log file path")

	cmd.AddCommand(
		newPutCmd(svc),
		newGetCmd(svc),
		newCatalogCmd(svc),
		newSearchCmd(svc),
		newBrowseCmd(svc),
		newBackupCmd(svc),
		newRestoreCmd(svc),
		newDBMaintainCmd(svc),
		newVersionCmd(),
	)
	return cmd, svc
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       i18n.T("version.short"),
		Annotations: map[string]string{skipServices: "true"},
		Args:        cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version in the dependency list.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
