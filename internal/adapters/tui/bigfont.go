package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// digitMap maps each digit character (0-9) and colon to a 5-line block representation.
// Each digit is 4 chars wide, colon is 1 char wide.
var digitMap = map[rune][5]string{
	'0': {"████", "█  █", "█  █", "█  █", "████"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"████", "   █", "████", "█   ", "████"},
	'3': {"████", "   █", "████", "   █", "████"},
	'4': {"█  █", "█  █", "████", "   █", "   █"},
	'5': {"████", "█   ", "████", "   █", "████"},
	'6': {"████", "█   ", "████", "█  █", "████"},
	'7': {"████", "   █", "  █ ", " █  ", " █  "},
	'8': {"████", "█  █", "████", "█  █", "████"},
	'9': {"████", "█  █", "████", "   █", "████"},
	':': {" ", "█", " ", "█", " "},
}

// renderBigClock takes an MM:SS string and returns a multi-line styled
// block representation. Falls back to a single styled line if the
// terminal width is less than 40.
func renderBigClock(clock string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < 40 {
		return style.Render(clock)
	}

	lines := [5]string{}
	for _, ch := range clock {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}

	styled := make([]string, 5)
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return strings.Join(styled, "\n")
}
