package budget

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/model"
)

type memDisplay map[Target]string

func (d memDisplay) Show(t Target, text string) { d[t] = text }

type memTable struct {
	rows    []Row
	renders int
}

func (m *memTable) RenderRows(rows []Row) {
	m.rows = rows
	m.renders++
}

type fixture struct {
	ctl     *Controller
	display memDisplay
	table   *memTable
	surface *chart.Recorder
}

func newFixture(expenses []model.Expense, income string) fixture {
	f := fixture{
		display: memDisplay{},
		table:   &memTable{},
		surface: chart.NewRecorder(300, 300),
	}
	f.ctl = NewController(f.display, f.table, f.surface)
	f.ctl.Load(expenses, income)
	return f
}

func wedgeSweep(ops []chart.Op) float64 {
	sweep := 0.0
	for _, w := range ops {
		sweep += w.End - w.Start
	}
	return sweep
}

func TestController_LoadAndCalculateExample(t *testing.T) {
	f := newFixture(model.ExampleExpenses(), "0")
	if err := f.ctl.Dispatch(Calc()); err != nil {
		t.Fatalf("Dispatch(calculate): %v", err)
	}

	if got := f.display[TargetTotal]; got != "R$ 2.070,00" {
		t.Errorf("total display = %q, want R$ 2.070,00", got)
	}
	if got := f.display[TargetBalance]; got != "-R$ 2.070,00" {
		t.Errorf("balance display = %q, want -R$ 2.070,00", got)
	}
	wedges := f.surface.VisibleOf(chart.OpWedge)
	if len(wedges) != 4 {
		t.Fatalf("got %d wedges, want 4", len(wedges))
	}
	if sweep := wedgeSweep(wedges); math.Abs(sweep-2*math.Pi) > 1e-9 {
		t.Fatalf("wedges sweep %v, want 2π", sweep)
	}
	if len(f.table.rows) != 4 {
		t.Fatalf("rendered %d rows, want 4", len(f.table.rows))
	}
}

func TestController_CalculateIsIdempotent(t *testing.T) {
	f := newFixture(model.ExampleExpenses(), "1500")

	_ = f.ctl.Dispatch(Calc())
	total, balance := f.display[TargetTotal], f.display[TargetBalance]
	first := append([]chart.Op(nil), f.surface.Visible()...)

	_ = f.ctl.Dispatch(Calc())
	if f.display[TargetTotal] != total || f.display[TargetBalance] != balance {
		t.Fatal("second calculate changed the displays")
	}
	if !reflect.DeepEqual(first, f.surface.Visible()) {
		t.Fatal("second calculate drew a different chart")
	}
}

func TestController_RowsTrackListUnderRandomEdits(t *testing.T) {
	f := newFixture(model.ExampleExpenses(), "")
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 300; step++ {
		n := len(f.ctl.State().Expenses)
		var a Action
		switch op := rng.Intn(4); {
		case op == 0 || n == 0:
			_ = f.ctl.Dispatch(SetNewCategory("c"))
			_ = f.ctl.Dispatch(SetNewAmount("10"))
			a = Add()
		case op == 1:
			a = Remove(rng.Intn(n + 1)) // sometimes out of range
		case op == 2:
			a = EditAmount(rng.Intn(n), "42")
		default:
			a = EditCategory(rng.Intn(n), "edited")
		}

		renders := f.table.renders
		if err := f.ctl.Dispatch(a); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		if a.Kind == ActionEditAmount || a.Kind == ActionEditCategory {
			if f.table.renders != renders {
				t.Fatalf("step %d: in-place edit re-rendered the table", step)
			}
			continue
		}

		expenses := f.ctl.State().Expenses
		if len(f.table.rows) != len(expenses) {
			t.Fatalf("step %d: %d rows for %d expenses", step, len(f.table.rows), len(expenses))
		}
		for i, r := range f.table.rows {
			if r.Index != i || r.Category != expenses[i].Category || r.Amount != expenses[i].Amount {
				t.Fatalf("step %d: row %d = %+v, expense %+v", step, i, r, expenses[i])
			}
		}
	}
}

func TestController_AddClearsInputs(t *testing.T) {
	f := newFixture(nil, "")
	_ = f.ctl.Replay(SetNewCategory("Academia"), SetNewAmount("120"))
	f.display[TargetNewCategory] = "Academia"
	f.display[TargetNewAmount] = "120"

	if err := f.ctl.Dispatch(Add()); err != nil {
		t.Fatal(err)
	}
	if f.display[TargetNewCategory] != "" || f.display[TargetNewAmount] != "" {
		t.Fatalf("inputs not cleared: %q %q", f.display[TargetNewCategory], f.display[TargetNewAmount])
	}
	if got := f.ctl.State().Expenses; len(got) != 1 || got[0].Amount != 120 {
		t.Fatalf("expenses after add: %+v", got)
	}
}

func TestController_Reset(t *testing.T) {
	f := newFixture(model.ExampleExpenses(), "4000")
	_ = f.ctl.Dispatch(Calc())

	if err := f.ctl.Dispatch(Reset()); err != nil {
		t.Fatal(err)
	}
	if f.display[TargetIncome] != "0" {
		t.Errorf("income shown as %q, want 0", f.display[TargetIncome])
	}
	if f.display[TargetTotal] != "R$ 0,00" || f.display[TargetBalance] != "R$ 0,00" {
		t.Errorf("displays after reset: total=%q balance=%q", f.display[TargetTotal], f.display[TargetBalance])
	}
	if len(f.table.rows) != 0 {
		t.Errorf("table still has %d rows", len(f.table.rows))
	}
	if ops := f.surface.Visible(); len(ops) != 0 {
		t.Errorf("surface not blank after reset: %d ops", len(ops))
	}
	if f.ctl.Summary() != (model.Summary{}) {
		t.Errorf("summary not zeroed: %+v", f.ctl.Summary())
	}

	// Calculating an empty list keeps everything blank.
	_ = f.ctl.Dispatch(Calc())
	if ops := f.surface.Visible(); len(ops) != 0 {
		t.Errorf("empty list drew %d ops", len(ops))
	}
	if f.display[TargetBalance] != "R$ 0,00" {
		t.Errorf("balance = %q after reset+calculate", f.display[TargetBalance])
	}
}

func TestController_UnknownActionIsNoOp(t *testing.T) {
	f := newFixture(model.ExampleExpenses(), "")
	renders := f.table.renders

	err := f.ctl.Replay(Remove(0), Action{Kind: "bogus"}, Remove(0))
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
	if n := len(f.ctl.State().Expenses); n != 3 {
		t.Fatalf("replay should stop at the bad action, have %d expenses", n)
	}
	if f.table.renders != renders+1 {
		t.Fatalf("renders = %d, want %d", f.table.renders, renders+1)
	}
}

func TestController_StateIsACopy(t *testing.T) {
	f := newFixture(model.ExampleExpenses(), "")
	s := f.ctl.State()
	s.Expenses[0].Amount = 1

	if f.ctl.State().Expenses[0].Amount != 700 {
		t.Fatal("State() exposed internal slice")
	}
}
