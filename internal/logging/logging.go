// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging provides the application-wide leveled logger. Output goes
// to stderr until Open redirects it to the log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	clog "github.com/charmbracelet/log"
)

// DefaultFile is the log file used when no other path is configured.
const DefaultFile = "snippets.log"

// L is the package-level logger. Callers should use the helper functions
// below rather than L directly.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	Level:           clog.InfoLevel,
	ReportTimestamp: true,
	Prefix:          "snippets",
})

var (
	mu      sync.Mutex
	logFile *os.File
)

// Open directs log output to the file at path, creating it (and its parent
// directory) when missing. Debug messages are emitted when debug is true.
func Open(path string, debug bool) error {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	prev := logFile
	logFile = f
	mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}

	SetOutput(f)
	SetDebug(debug)
	return nil
}

// Close closes the log file opened by Open, if any, and falls back to stderr.
func Close() error {
	mu.Lock()
	f := logFile
	logFile = nil
	mu.Unlock()
	SetOutput(os.Stderr)
	if f == nil {
		return nil
	}
	return f.Close()
}

// SetOutput redirects the package logger.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// SetDebug enables or disables debug-level output.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
