package components

import (
	"strings"

	"github.com/theirongolddev/cbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Budget"},
	{Name: "Regions"},
}

// tabPadding is the horizontal padding each tab label gets on both sides.
const tabPadding = 1

// TabVisualWidth returns the rendered width of a tab label.
func TabVisualWidth(tab Tab) int {
	return lipgloss.Width(tab.Name) + 2*tabPadding
}

// RenderTabBar renders the tab bar with the given active index, padded to width.
// Tabs are separated by a single column.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceBright).
		Bold(true).
		Padding(0, tabPadding)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, tabPadding)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
		} else {
			parts = append(parts, inactiveStyle.Render(tab.Name))
		}
	}

	row := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}
