package budget

import (
	"fmt"

	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/log"
	"github.com/theirongolddev/cbudget/internal/model"
)

// Target names a text output the controller writes to.
type Target int

const (
	TargetTotal Target = iota
	TargetBalance
	TargetIncome
	TargetNewCategory
	TargetNewAmount
)

// Display receives text for the widget's outputs and input fields.
type Display interface {
	Show(target Target, text string)
}

// TableSink receives the full row set after every structural change.
type TableSink interface {
	RenderRows(rows []Row)
}

// Controller owns one widget's state and pushes every change to its sinks.
// It is not safe for concurrent use; events are handled one at a time.
type Controller struct {
	state   State
	summary model.Summary

	display Display
	table   TableSink
	surface chart.Surface
	layout  chart.Layout
	log     *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.log = l.WithComponent("budget") }
}

// WithLayout overrides the pie layout. The default mirrors a canvas of the
// surface's size.
func WithLayout(l chart.Layout) Option {
	return func(c *Controller) { c.layout = l }
}

// NewController wires a controller to its output sinks.
func NewController(display Display, table TableSink, surface chart.Surface, opts ...Option) *Controller {
	w, h := surface.Size()
	c := &Controller{
		display: display,
		table:   table,
		surface: surface,
		layout:  chart.CanvasLayout(float64(w), float64(h)),
		log:     log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the state, renders the rows and runs a first calculation.
func (c *Controller) Load(expenses []model.Expense, income string) {
	c.state = NewState(expenses, income)
	c.display.Show(TargetIncome, income)
	c.table.RenderRows(Rows(c.state.Expenses))
	c.calculate()
	c.log.Debug("loaded", "expenses", len(c.state.Expenses))
}

// Dispatch applies one action and performs its side effects.
func (c *Controller) Dispatch(a Action) error {
	h, ok := dispatch[a.Kind]
	if !ok {
		c.log.Warn("unknown action", "kind", string(a.Kind))
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}

	c.state = h.apply(c.state, a)
	c.log.Debug("dispatch", "action", a.String(), "expenses", len(c.state.Expenses))

	if h.effect&effectClearInput != 0 {
		c.display.Show(TargetNewCategory, "")
		c.display.Show(TargetNewAmount, "")
	}
	if h.effect&effectRender != 0 {
		c.table.RenderRows(Rows(c.state.Expenses))
	}
	if h.effect&effectCalculate != 0 {
		c.calculate()
	}
	if h.effect&effectReset != 0 {
		c.summary = model.Summary{}
		c.display.Show(TargetIncome, c.state.Income)
		c.display.Show(TargetTotal, cli.FormatCurrency(0))
		c.display.Show(TargetBalance, cli.FormatCurrency(0))
		c.surface.Clear()
	}
	return nil
}

// Replay dispatches actions in order, stopping at the first error.
func (c *Controller) Replay(actions ...Action) error {
	for i, a := range actions {
		if err := c.Dispatch(a); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	s.Expenses = cloneExpenses(s.Expenses)
	return s
}

// Summary returns the result of the last calculation.
func (c *Controller) Summary() model.Summary {
	return c.summary
}

func (c *Controller) calculate() {
	c.summary = Calculate(c.state)
	c.display.Show(TargetTotal, cli.FormatCurrency(c.summary.TotalExpenses))
	c.display.Show(TargetBalance, cli.FormatCurrency(c.summary.Balance))
	chart.DrawPie(c.surface, c.layout, c.state.Expenses, c.summary.TotalExpenses)
}
