// Copyright (c) 2026 ToeiRei
// Snippets - named text snippet store
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/snippets/internal/i18n"
	"github.com/toeirei/snippets/internal/model"
)

// maxVisible is the number of list rows rendered at once.
const maxVisible = 10

// browseModel filters a fixed set of snippets as the user types.
type browseModel struct {
	all      []model.Snippet
	matches  []model.Snippet
	input    textinput.Model
	cursor   int
	width    int
	selected *model.Snippet
}

func newBrowseModel(snippets []model.Snippet) browseModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T("browse.filter_placeholder")
	ti.Prompt = "> "
	ti.Focus()

	m := browseModel{all: snippets, input: ti}
	m.applyFilter()
	return m
}

// applyFilter recomputes matches from the current input. Matching is a
// case-sensitive substring test on keyword and message.
func (m *browseModel) applyFilter() {
	q := m.input.Value()
	m.matches = make([]model.Snippet, 0, len(m.all))
	for _, s := range m.all {
		if strings.Contains(s.Keyword, q) || strings.Contains(s.Message, q) {
			m.matches = append(m.matches, s)
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.matches) > 0 {
				s := m.matches[m.cursor]
				m.selected = &s
			}
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.applyFilter()
	}
	return m, cmd
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("browse.title")))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(emptyListMessageStyle.Render(i18n.T("browse.no_matches")))
		b.WriteString("\n")
	}

	// Keep the cursor inside the visible window.
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))
	for i := start; i < end; i++ {
		s := m.matches[i]
		line := keywordStyle.Render(s.Keyword) + "  " + messagePreviewStyle.Render(m.preview(s.Message))
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("browse.count", len(m.matches), len(m.all)) + "  " + i18n.T("browse.help")))
	return docStyle.Render(b.String())
}

// preview flattens a message to one line and shortens it to the window width.
func (m browseModel) preview(msg string) string {
	line := strings.Join(strings.Fields(msg), " ")
	limit := 60
	if m.width > 20 {
		limit = m.width - 20
	}
	r := []rune(line)
	if len(r) > limit {
		return string(r[:limit-1]) + "…"
	}
	return line
}

// Run starts the browse view over snippets and blocks until the user leaves
// it. The returned bool is false when nothing was selected.
func Run(snippets []model.Snippet, opts ...tea.ProgramOption) (model.Snippet, bool, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(newBrowseModel(snippets), opts...).Run()
	if err != nil {
		return model.Snippet{}, false, fmt.Errorf("browse view failed: %w", err)
	}
	m, ok := final.(browseModel)
	if !ok || m.selected == nil {
		return model.Snippet{}, false, nil
	}
	return *m.selected, true, nil
}
