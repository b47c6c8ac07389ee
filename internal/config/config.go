// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the Snippets configuration from defaults, config
// files, a `.env` file, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Language string `mapstructure:"language" yaml:"language"`
	Log      struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"log" yaml:"log"`
}

// Defaults returns the built-in default values keyed by their viper path.
func Defaults() map[string]any {
	return map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./snippets.db",
		"language":      "en",
		"log.file":      "snippets.log",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Snippets")
		default: // Linux, macOS, etc.
			configDir = "/etc/snippets"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "snippets")
	}

	return filepath.Join(configDir, "snippets.yaml"), nil
}

// LoadConfig resolves configuration into T. Precedence, lowest first:
// defaults, config file, `.env`, environment (SNIPPETS_ prefix), flags.
// A missing config file is reported as viper.ConfigFileNotFoundError after
// the remaining sources have been applied, so callers may continue with c.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("snippets")
	v.SetConfigType("yaml")

	// An explicit --config file takes precedence over the search paths.
	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	}

	// Values from .env only fill variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("could not read .env: %w", err)
	}

	v.SetEnvPrefix("snippets")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(false)
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600) // may contain database credentials
}
