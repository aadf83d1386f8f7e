package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/cbudget/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func TestRaster_QuarterWedge(t *testing.T) {
	r := NewRaster(20, 20)
	// 12 o'clock to 3 o'clock
	r.FillWedge(10, 10, 8, -0.5*math.Pi, 0, "#f00")

	if got := r.PixelAt(13, 6); got != "#f00" {
		t.Errorf("top-right pixel = %q, want filled", got)
	}
	if got := r.PixelAt(6, 6); got != "" {
		t.Errorf("top-left pixel = %q, want empty", got)
	}
	if got := r.PixelAt(13, 13); got != "" {
		t.Errorf("bottom-right pixel = %q, want empty", got)
	}
	if got := r.PixelAt(19, 0); got != "" {
		t.Errorf("corner outside the circle = %q, want empty", got)
	}
}

func TestRaster_FullCircleAndClear(t *testing.T) {
	r := NewRaster(20, 20)
	r.FillWedge(10, 10, 8, -0.5*math.Pi, 1.5*math.Pi, "#0f0")
	for _, p := range [][2]int{{10, 10}, {4, 10}, {10, 4}, {15, 15}} {
		if r.PixelAt(p[0], p[1]) != "#0f0" {
			t.Errorf("pixel %v not filled by full circle", p)
		}
	}

	r.Clear()
	if !r.Blank() {
		t.Fatal("raster not blank after Clear")
	}
}

func TestRaster_DrawTextClips(t *testing.T) {
	r := NewRaster(10, 4)
	r.DrawText(6, 2, "Água — 50%", "")
	if got := r.TextRow(1); got != "      Água" {
		t.Fatalf("TextRow(1) = %q", got)
	}
	if strings.TrimSpace(r.TextRow(0)) != "" {
		t.Fatal("text leaked into row 0")
	}
}

func TestRaster_PieWithTerminalLayout(t *testing.T) {
	r := NewRaster(64, 32)
	items := model.ExampleExpenses()
	DrawPie(r, TerminalLayout(64, 32), items, 2070)

	if r.Blank() {
		t.Fatal("pie not drawn")
	}
	l := TerminalLayout(64, 32)
	if got := r.PixelAt(int(l.CX), int(l.CY)-10); got != Palette[0] && got != Palette[3] {
		t.Errorf("pixel just right of 12 o'clock = %q, want first or last wedge colour", got)
	}
	if row := r.TextRow(int(l.LegendY) / 2); !strings.Contains(row, "Alimentação — 34%") {
		t.Errorf("first legend row = %q", row)
	}

	view := r.View("#000000", "#ffffff")
	if lines := strings.Count(view, "\n") + 1; lines != 16 {
		t.Fatalf("view has %d lines, want 16", lines)
	}
}

func TestDrawPie_TerminalLegendStopsBeforePie(t *testing.T) {
	l := TerminalLayout(64, 32)
	rec := NewRecorder(64, 32)
	DrawPie(rec, l, model.ExampleExpenses(), 2070)

	texts := rec.VisibleOf(OpText)
	if len(texts) != 4 {
		t.Fatalf("got %d legend labels, want 4", len(texts))
	}
	pieLeft := l.CX - l.Radius
	for _, op := range texts {
		if end := op.X + float64(lipgloss.Width(op.Text)); end > pieLeft {
			t.Errorf("label %q ends at %v, pie starts at %v", op.Text, end, pieLeft)
		}
	}
	if got := texts[3].Text; !strings.HasPrefix(got, "Contas (água") || !strings.HasSuffix(got, "…") {
		t.Errorf("long label = %q, want it cut with an ellipsis", got)
	}
	if got := texts[0].Text; got != "Alimentação — 34%" {
		t.Errorf("short label = %q, want it untouched", got)
	}

	r := NewRaster(64, 32)
	DrawPie(r, l, model.ExampleExpenses(), 2070)
	row := []rune(r.TextRow(int(l.LegendY)/2 + 3))
	for col := int(pieLeft); col < len(row); col++ {
		if row[col] != ' ' {
			t.Fatalf("legend text at column %d overlaps the pie: %q", col, string(row))
		}
	}
}
