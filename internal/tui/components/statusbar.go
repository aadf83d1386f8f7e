package components

import (
	"strings"

	"github.com/theirongolddev/cbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and a
// short message (last action, errors) on the right.
func RenderStatusBar(width int, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	left := " [f1]help  [f5]calculate  [^r]reset  [^t]tab  [^c]quit"
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		right = ""
		padding = max(0, width-lipgloss.Width(left))
	}

	return style.Render(left) +
		style.Render(strings.Repeat(" ", padding)) +
		style.Render(right)
}
