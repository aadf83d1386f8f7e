package chart

import (
	"fmt"
	"math"

	"github.com/theirongolddev/cbudget/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Palette is cycled by expense index: entry i uses Palette[i%len(Palette)].
var Palette = []string{"#0b74da", "#1e90ff", "#4db6ff", "#82cfff", "#aee0ff", "#66b2ff", "#b3d9ff"}

// LegendMax caps the number of legend rows; later entries still get wedges.
const LegendMax = 6

// LegendTextColor is the colour of legend labels.
const LegendTextColor = "#111111"

// Layout places the pie and its legend on a surface.
type Layout struct {
	CX, CY, Radius float64

	LegendX, LegendY float64 // top-left of the first swatch
	LegendStep       float64 // vertical distance between legend rows
	SwatchW, SwatchH float64
	TextDX, TextDY   float64 // label offset from the swatch origin
	TextColor        string
	TextMaxX         float64 // labels end before this x; 0 means unclipped
}

// CanvasLayout mirrors a pixel canvas of w×h: pie centred, legend stacked
// from 58px above the bottom-left corner.
func CanvasLayout(w, h float64) Layout {
	return Layout{
		CX:         w / 2,
		CY:         h / 2,
		Radius:     math.Min(w, h)/2 - 10,
		LegendX:    10,
		LegendY:    h - 70 + 12,
		LegendStep: 16,
		SwatchW:    10,
		SwatchH:    10,
		TextDX:     18,
		TextDY:     10,
		TextColor:  LegendTextColor,
	}
}

// TerminalLayout fits a Raster of w×h pixels (two pixels per text row):
// the pie sits against the right edge so legend rows on the left stay readable.
func TerminalLayout(w, h int) Layout {
	radius := float64(h)/2 - 1
	if radius < 1 {
		radius = 1
	}
	legendY := float64(h - 2*LegendMax)
	if legendY < 0 {
		legendY = 0
	}
	cx := float64(w) - radius - 2
	return Layout{
		CX:         cx,
		CY:         float64(h) / 2,
		Radius:     radius,
		LegendX:    0,
		LegendY:    legendY,
		LegendStep: 2,
		SwatchW:    2,
		SwatchH:    2,
		TextDX:     3,
		TextDY:     0,
		TextMaxX:   max(cx-radius, 3), // no room left: labels vanish
	}
}

// DrawPie clears s and, when there is something to show, draws one wedge per
// expense starting at 12 o'clock and running clockwise, followed by the legend.
// An empty list or a total <= 0 leaves the surface blank.
func DrawPie(s Surface, l Layout, items []model.Expense, total float64) {
	s.Clear()
	if len(items) == 0 || total <= 0 {
		return
	}

	start := -0.5 * math.Pi
	for i, it := range items {
		end := start + it.Amount/total*2*math.Pi
		s.FillWedge(l.CX, l.CY, l.Radius, start, end, ColorFor(i))
		start = end
	}

	for i, it := range items[:min(len(items), LegendMax)] {
		y := l.LegendY + float64(i)*l.LegendStep
		s.FillRect(l.LegendX, y, l.SwatchW, l.SwatchH, ColorFor(i))
		x := l.LegendX + l.TextDX
		label := LegendLabel(it, total)
		if l.TextMaxX > 0 {
			label = clipLabel(label, int(l.TextMaxX-x))
		}
		s.DrawText(x, y+l.TextDY, label, l.TextColor)
	}
}

// ColorFor returns the palette colour of expense i.
func ColorFor(i int) string {
	return Palette[i%len(Palette)]
}

// LegendLabel renders "<category> — <pct>%".
func LegendLabel(e model.Expense, total float64) string {
	return fmt.Sprintf("%s — %d%%", e.Category, SharePercent(e.Amount, total))
}

// clipLabel shortens s to at most width cells, marking the cut with "…".
func clipLabel(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	var out []rune
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > width-1 {
			break
		}
		out = append(out, r)
		used += rw
	}
	return string(out) + "…"
}

// SharePercent returns amount/total as a whole percentage, halves rounding up.
func SharePercent(amount, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(amount/total*100 + 0.5))
}
