// Package chart draws the expense pie and computes the regional infographic.
//
// Drawing goes through Surface so geometry can be checked without a real
// graphics backend. Recorder captures calls for tests; Raster paints them into
// terminal half-block cells.
package chart

// Surface is the minimal drawing API the pie chart needs.
// Angles are in radians, measured clockwise from the positive x axis with y
// growing downward, like a 2D canvas.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillWedge(cx, cy, r, start, end float64, color string)
	FillRect(x, y, w, h float64, color string)
	DrawText(x, y float64, text, color string)
}

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpWedge
	OpRect
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64 // wedge centre in X/Y, rect origin and size, text origin
	R          float64
	Start, End float64
	Color      string
	Text       string
}

// Recorder is a Surface that records calls instead of drawing them.
type Recorder struct {
	W, H int
	Ops  []Op
}

// NewRecorder returns a recorder reporting the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillWedge(cx, cy, radius, start, end float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpWedge, X: cx, Y: cy, R: radius, Start: start, End: end, Color: color})
}

func (r *Recorder) FillRect(x, y, w, h float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: color})
}

func (r *Recorder) DrawText(x, y float64, text, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Color: color})
}

// Visible returns the ops drawn since the last Clear.
func (r *Recorder) Visible() []Op {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Kind == OpClear {
			return r.Ops[i+1:]
		}
	}
	return r.Ops
}

// VisibleOf returns the visible ops of one kind.
func (r *Recorder) VisibleOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Visible() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Cleared reports whether at least one Clear was recorded.
func (r *Recorder) Cleared() bool {
	for _, op := range r.Ops {
		if op.Kind == OpClear {
			return true
		}
	}
	return false
}
