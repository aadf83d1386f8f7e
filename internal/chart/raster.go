package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Raster is a Surface backed by terminal cells. Each cell holds two vertically
// stacked pixels drawn with an upper half block, so a w×h raster renders as
// w columns by h/2 rows.
type Raster struct {
	w, h int
	px   []string     // pixel colours, "" is background
	text [][]textCell // overlay per cell row
}

type textCell struct {
	r     rune
	color string
	set   bool
	cont  bool // right half of a wide rune
}

// NewRaster creates a raster of w×h pixels. Odd heights are rounded up.
func NewRaster(w, h int) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	if h%2 == 1 {
		h++
	}
	r := &Raster{w: w, h: h}
	r.Clear()
	return r
}

func (r *Raster) Size() (int, int) { return r.w, r.h }

func (r *Raster) Clear() {
	r.px = make([]string, r.w*r.h)
	r.text = make([][]textCell, r.h/2)
	for i := range r.text {
		r.text[i] = make([]textCell, r.w)
	}
}

// FillWedge paints pixels whose centre lies inside the circle and within the
// clockwise sweep from start to end.
func (r *Raster) FillWedge(cx, cy, radius, start, end float64, color string) {
	span := end - start
	if span <= 0 || radius <= 0 {
		return
	}
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if span < 2*math.Pi {
				a := math.Mod(math.Atan2(dy, dx)-start, 2*math.Pi)
				if a < 0 {
					a += 2 * math.Pi
				}
				if a >= span {
					continue
				}
			}
			r.px[y*r.w+x] = color
		}
	}
}

func (r *Raster) FillRect(x, y, w, h float64, color string) {
	x0 := max(0, int(math.Floor(x)))
	y0 := max(0, int(math.Floor(y)))
	x1 := min(r.w, int(math.Ceil(x+w)))
	y1 := min(r.h, int(math.Ceil(y+h)))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			r.px[py*r.w+px] = color
		}
	}
}

// DrawText writes text on the cell row containing pixel row y, clipped at the
// right edge. Text replaces any pixels underneath it.
func (r *Raster) DrawText(x, y float64, text, color string) {
	row := int(math.Floor(y)) / 2
	if row < 0 || row >= len(r.text) {
		return
	}
	col := int(math.Floor(x))
	for _, ch := range text {
		cw := lipgloss.Width(string(ch))
		if cw < 1 {
			continue
		}
		if col+cw > r.w {
			break
		}
		if col >= 0 {
			r.text[row][col] = textCell{r: ch, color: color, set: true}
			if cw == 2 {
				r.text[row][col+1] = textCell{set: true, cont: true}
			}
		}
		col += cw
	}
}

// PixelAt returns the colour of a pixel, "" for background or out of range.
func (r *Raster) PixelAt(x, y int) string {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return ""
	}
	return r.px[y*r.w+x]
}

// TextRow returns the text overlay of a cell row with unset cells as spaces.
func (r *Raster) TextRow(row int) string {
	if row < 0 || row >= len(r.text) {
		return ""
	}
	var b strings.Builder
	for _, c := range r.text[row] {
		switch {
		case c.cont:
		case c.set:
			b.WriteRune(c.r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Blank reports whether nothing is drawn.
func (r *Raster) Blank() bool {
	for _, p := range r.px {
		if p != "" {
			return false
		}
	}
	for _, row := range r.text {
		for _, c := range row {
			if c.set {
				return false
			}
		}
	}
	return true
}

// View renders the raster. bg fills empty pixels; fg is used for text drawn
// without a colour.
func (r *Raster) View(bg, fg lipgloss.Color) string {
	var b strings.Builder
	for row := 0; row < r.h/2; row++ {
		for col := 0; col < r.w; col++ {
			if tc := r.text[row][col]; tc.set {
				if tc.cont {
					continue
				}
				c := fg
				if tc.color != "" {
					c = lipgloss.Color(tc.color)
				}
				b.WriteString(lipgloss.NewStyle().Foreground(c).Background(bg).Render(string(tc.r)))
				continue
			}
			top := r.px[2*row*r.w+col]
			bottom := r.px[(2*row+1)*r.w+col]
			if top == "" && bottom == "" {
				b.WriteString(lipgloss.NewStyle().Background(bg).Render(" "))
				continue
			}
			style := lipgloss.NewStyle().Foreground(orColor(top, bg)).Background(orColor(bottom, bg))
			b.WriteString(style.Render("▀"))
		}
		if row < r.h/2-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func orColor(c string, fallback lipgloss.Color) lipgloss.Color {
	if c == "" {
		return fallback
	}
	return lipgloss.Color(c)
}
