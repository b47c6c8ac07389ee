// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every key passed to i18n.T() exists in the primary
// locale, that every other locale carries the same keys, and reports keys
// no code uses any more.
//
// Run from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// report is the outcome of a lint run. Missing and Untranslated entries are
// errors; Orphaned entries are warnings.
type report struct {
	Used         int
	Missing      []string            // used in code, absent from the primary locale
	Untranslated map[string][]string // locale file -> keys absent from it
	Orphaned     []string            // in the primary locale, unused in code
}

func (r report) failed() bool {
	return len(r.Missing) > 0 || len(r.Untranslated) > 0
}

var tCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func main() {
	fmt.Println("Running i18n linter...")
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d unique translation keys used in source code.\n", r.Used)

	for _, k := range r.Missing {
		fmt.Printf("  - Missing in %s: %s\n", primaryLocale, k)
	}
	files := make([]string, 0, len(r.Untranslated))
	for f := range r.Untranslated {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		for _, k := range r.Untranslated[f] {
			fmt.Printf("  - Missing in %s: %s\n", f, k)
		}
	}
	for _, k := range r.Orphaned {
		fmt.Printf("  - Orphaned: %s\n", k)
	}

	if r.failed() {
		fmt.Println("Found issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("All translation files are consistent.")
}

// lint compares the keys used below root with the locale files in locales.
func lint(root, locales string) (report, error) {
	r := report{Untranslated: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("finding used keys: %w", err)
	}
	r.Used = len(used)

	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale: %w", err)
	}

	r.Missing = difference(used, primary)
	r.Orphaned = difference(primary, used)

	localeFiles, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		if missing := difference(primary, keys); len(missing) > 0 {
			r.Untranslated[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// findUsedKeys scans non-test .go files for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_")) {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range tCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts nested maps into dot-separated keys. Flat keys that
// already contain dots pass through unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
