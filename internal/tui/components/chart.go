package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Infographic renders precomputed bars as vertical columns, height rows tall,
// with region names and formatted values underneath.
func Infographic(bars []chart.Bar, width, height int) string {
	if len(bars) == 0 {
		return ""
	}
	if height < 3 {
		height = 3
	}

	t := theme.Active
	n := len(bars)

	gap := 1
	colW := (width - gap*(n-1)) / n
	if colW < 6 {
		colW = 6
	}
	barW := max(2, colW-4)
	barPad := (colW - barW) / 2

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	bg := lipgloss.NewStyle().Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	// Height of each bar in eighths of a row.
	eighths := make([]int, n)
	for i, b := range bars {
		eighths[i] = (b.HeightPct*height*8 + 50) / 100
	}

	var rows []string

	// Percentage labels sit on the row above each bar.
	var top strings.Builder
	for i, b := range bars {
		if i > 0 {
			top.WriteString(bg.Render(strings.Repeat(" ", gap)))
		}
		top.WriteString(pctStyle.Render(center(fmt.Sprintf("%d%%", b.HeightPct), colW)))
	}
	rows = append(rows, top.String())

	for row := height; row >= 1; row-- {
		var line strings.Builder
		rowPct := float64(row) / float64(height)
		for i := range bars {
			if i > 0 {
				line.WriteString(bg.Render(strings.Repeat(" ", gap)))
			}
			barStyle := lipgloss.NewStyle().Foreground(barColor(rowPct)).Background(t.Surface)

			full := eighths[i] / 8
			var cell string
			switch {
			case row <= full:
				cell = strings.Repeat("█", barW)
			case row == full+1 && eighths[i]%8 > 0:
				cell = strings.Repeat(string(blocks[eighths[i]%8]), barW)
			default:
				cell = strings.Repeat(" ", barW)
			}
			line.WriteString(bg.Render(strings.Repeat(" ", barPad)))
			line.WriteString(barStyle.Render(cell))
			line.WriteString(bg.Render(strings.Repeat(" ", colW-barPad-barW)))
		}
		rows = append(rows, line.String())
	}

	var labels, values strings.Builder
	for i, b := range bars {
		if i > 0 {
			labels.WriteString(bg.Render(strings.Repeat(" ", gap)))
			values.WriteString(bg.Render(strings.Repeat(" ", gap)))
		}
		labels.WriteString(labelStyle.Render(center(truncate(b.Region, colW), colW)))
		values.WriteString(valueStyle.Render(center(truncate(cli.FormatCurrency(b.Value), colW), colW)))
	}
	rows = append(rows, labels.String(), values.String())

	return strings.Join(rows, "\n")
}

func barColor(rowPct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case rowPct > 0.8:
		return t.AccentBright
	default:
		return t.Accent
	}
}

func center(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
