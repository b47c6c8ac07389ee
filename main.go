// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Snippets.
//
// Usage:
//
//	go run . put <name> <snippet>
//	./snippets get <name>
//
// See --help for all commands and options.
package main

import (
	"os"

	"github.com/toeirei/snippets/ui/cli"
)

func main() {
	// cobra has already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
