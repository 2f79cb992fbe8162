package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/vessel-cli/internal/theme"
)

type pickerOutcome int

const (
	pickerOpen pickerOutcome = iota
	pickerChosen
	pickerAborted
)

// themePicker is a fuzzy-filtered theme list shown over the timer.
type themePicker struct {
	input   textinput.Model
	matches []theme.Theme
	cursor  int
}

func newThemePicker(current theme.ID) themePicker {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.Prompt = "🔍 "
	input.CharLimit = 24
	input.Focus()

	p := themePicker{input: input, matches: theme.All()}
	for i, t := range p.matches {
		if t.ID == current {
			p.cursor = i
		}
	}
	return p
}

// selected returns the highlighted theme, if any match.
func (p themePicker) selected() (theme.Theme, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return theme.Theme{}, false
	}
	return p.matches[p.cursor], true
}

func (p themePicker) update(msg tea.KeyMsg) (themePicker, pickerOutcome, tea.Cmd) {
	switch msg.String() {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
		}
		return p, pickerOpen, nil
	case "down", "ctrl+n":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return p, pickerOpen, nil
	case "enter":
		if _, ok := p.selected(); ok {
			return p, pickerChosen, nil
		}
		return p, pickerOpen, nil
	case "esc", "ctrl+c":
		return p, pickerAborted, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.matches = theme.Search(p.input.Value())
		p.cursor = 0
	}
	return p, pickerOpen, cmd
}

func (p themePicker) view(accent, dim lipgloss.Color) string {
	var b strings.Builder

	activeStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(dim)

	b.WriteString(p.input.View() + "\n\n")
	if len(p.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matching theme") + "\n")
	}
	for i, t := range p.matches {
		if i == p.cursor {
			b.WriteString(activeStyle.Render(fmt.Sprintf("▸ %s %-16s", t.Icon, t.Name)) + "\n")
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s %-16s", t.Icon, t.Name)) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ navigate · enter select · esc back"))
	return b.String()
}
