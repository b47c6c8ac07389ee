// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Snippets.
// It uses the go-i18n library to load and manage translation files, allowing the
// command-line output to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu sync.RWMutex
	// bundle stores all the loaded translation messages from the locale files.
	bundle *i18n.Bundle
	// localizer is used to translate messages into a specific language.
	localizer *i18n.Localizer
	lang      string
)

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(l string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}

	mu.Lock()
	bundle = b
	localizer = i18n.NewLocalizer(b, l)
	lang = l
	mu.Unlock()
}

// T translates a message by its ID. Extra args are applied fmt-style to the
// translated text. If the i18n system has not been initialized, English is
// used. Unknown IDs are returned unchanged.
func T(messageID string, args ...any) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()
	if loc == nil {
		Init("en")
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// AvailableLanguages lists the languages that have an embedded locale file.
func AvailableLanguages() []string {
	files, _ := fs.ReadDir(localeFS, "locales")
	out := make([]string, 0, len(files))
	for _, f := range files {
		if tag, err := language.Parse(strings.TrimSuffix(f.Name(), ".yaml")); err == nil {
			out = append(out, tag.String())
		}
	}
	sort.Strings(out)
	return out
}
