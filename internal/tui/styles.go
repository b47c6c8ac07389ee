// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal views for Snippets.
// This file defines the shared lipgloss styles.
package tui // import "github.com/toeirei/snippets/internal/tui"

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	keywordStyle          = lipgloss.NewStyle().Bold(true)
	itemStyle             = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle     = lipgloss.NewStyle().PaddingLeft(1).Foreground(colorHighlight)
	messagePreviewStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	emptyListMessageStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
)
