package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func newTestApp() App {
	a := NewApp(Options{Expenses: model.ExampleExpenses(), Income: "5000"})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return m.(App)
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focusOn(t *testing.T, a App, want focusTarget) App {
	t.Helper()
	for i, f := range a.view.focusables() {
		if f == want {
			a.focus = i
			a.syncFocus()
			return a
		}
	}
	t.Fatalf("no focusable %+v", want)
	return a
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	a := App{}
	pos := 0
	for i, tab := range components.Tabs {
		w := len(tab.Name) + 2
		if got := a.tabAtX(pos + w/2); got != i {
			t.Fatalf("x=%d -> tab=%d, want %d", pos+w/2, got, i)
		}
		pos += w + 1
	}
	if got := a.tabAtX(pos + 40); got != -1 {
		t.Fatalf("x past the last tab -> %d, want -1", got)
	}
}

func TestNewAppLoadsAndCalculates(t *testing.T) {
	a := newTestApp()
	if len(a.view.rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(a.view.rows))
	}
	if a.view.total != "R$ 2.070,00" {
		t.Errorf("total = %q", a.view.total)
	}
	if a.view.balance != "R$ 2.930,00" {
		t.Errorf("balance = %q", a.view.balance)
	}
	if a.pie.Blank() {
		t.Error("pie should be drawn after load")
	}
}

func TestEnterInNewAmountAddsRow(t *testing.T) {
	a := newTestApp()
	a = focusOn(t, a, focusTarget{kind: fieldNewCategory, row: -1})
	a = send(t, a, keyRunes("Lazer"), tea.KeyMsg{Type: tea.KeyTab}, keyRunes("150"), tea.KeyMsg{Type: tea.KeyEnter})

	st := a.ctl.State()
	if len(st.Expenses) != 5 {
		t.Fatalf("expenses = %d, want 5", len(st.Expenses))
	}
	if got := st.Expenses[4]; got != (model.Expense{Category: "Lazer", Amount: 150}) {
		t.Errorf("added = %+v", got)
	}
	if a.view.newCategory.Value() != "" || a.view.newAmount.Value() != "" {
		t.Error("new-expense inputs should be cleared")
	}
	if len(a.view.rows) != 5 {
		t.Errorf("rendered rows = %d, want 5", len(a.view.rows))
	}
	if got := a.focusTarget(); got.kind != fieldNewAmount {
		t.Errorf("focus = %+v, want new amount", got)
	}
}

func TestDecimalCommaInputs(t *testing.T) {
	a := NewApp(Options{Expenses: model.ExampleExpenses()})
	a = send(t, a, tea.WindowSizeMsg{Width: 160, Height: 48})

	a = focusOn(t, a, focusTarget{kind: fieldNewCategory, row: -1})
	a = send(t, a, keyRunes("Lazer"), tea.KeyMsg{Type: tea.KeyTab}, keyRunes("12,50"), tea.KeyMsg{Type: tea.KeyEnter})

	st := a.ctl.State()
	if got := st.Expenses[len(st.Expenses)-1]; got != (model.Expense{Category: "Lazer", Amount: 12.5}) {
		t.Fatalf("added = %+v, want Lazer 12.5", got)
	}

	a = focusOn(t, a, focusTarget{kind: fieldIncome, row: -1})
	a = send(t, a, keyRunes("2.500,75"), tea.KeyMsg{Type: tea.KeyF5})

	sum := a.ctl.Summary()
	if sum.Income != 2500.75 {
		t.Errorf("income = %v, want 2500.75", sum.Income)
	}
	if a.view.total != "R$ 2.082,50" {
		t.Errorf("total = %q, want R$ 2.082,50", a.view.total)
	}
	if a.view.balance != "R$ 418,25" {
		t.Errorf("balance = %q, want R$ 418,25", a.view.balance)
	}
}

func TestCtrlDRemovesFocusedRow(t *testing.T) {
	a := newTestApp()
	a = focusOn(t, a, focusTarget{kind: fieldAmount, row: 1})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlD})

	st := a.ctl.State()
	if len(st.Expenses) != 3 {
		t.Fatalf("expenses = %d, want 3", len(st.Expenses))
	}
	if st.Expenses[1].Category != "Transporte" {
		t.Errorf("row 1 = %q, want Transporte", st.Expenses[1].Category)
	}
	for i, r := range a.view.rows {
		if r.index != i {
			t.Errorf("row %d carries index %d", i, r.index)
		}
	}
}

func TestEditThenCalculate(t *testing.T) {
	a := newTestApp()
	a = focusOn(t, a, focusTarget{kind: fieldAmount, row: 0})
	a = send(t, a, keyRunes("0"))

	if got := a.ctl.State().Expenses[0].Amount; got != 7000 {
		t.Fatalf("amount = %v, want 7000", got)
	}
	if a.view.total != "R$ 2.070,00" {
		t.Fatalf("total changed before calculate: %q", a.view.total)
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyF5})
	if a.view.total != "R$ 8.370,00" {
		t.Errorf("total = %q, want R$ 8.370,00", a.view.total)
	}
	if a.view.balance != "-R$ 3.370,00" {
		t.Errorf("balance = %q, want -R$ 3.370,00", a.view.balance)
	}
}

func TestCtrlRResets(t *testing.T) {
	a := newTestApp()
	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})

	if len(a.view.rows) != 0 || len(a.ctl.State().Expenses) != 0 {
		t.Fatal("reset should empty the list")
	}
	if a.view.income.Value() != "0" {
		t.Errorf("income = %q, want 0", a.view.income.Value())
	}
	if a.view.total != "R$ 0,00" || a.view.balance != "R$ 0,00" {
		t.Errorf("displays = %q / %q", a.view.total, a.view.balance)
	}
	if !a.pie.Blank() {
		t.Error("pie should be cleared")
	}
}

func TestEnterOnButtons(t *testing.T) {
	a := newTestApp()
	a = focusOn(t, a, focusTarget{kind: fieldRemove, row: 3})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if n := len(a.ctl.State().Expenses); n != 3 {
		t.Fatalf("expenses = %d, want 3", n)
	}

	a = focusOn(t, a, focusTarget{kind: fieldCalculate, row: -1})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.view.total != "R$ 1.850,00" {
		t.Errorf("total = %q, want R$ 1.850,00", a.view.total)
	}
}

func TestFocusWraps(t *testing.T) {
	a := newTestApp()
	n := len(a.view.focusables())
	a = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.focus != n-1 {
		t.Fatalf("focus = %d, want %d", a.focus, n-1)
	}
	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != 0 {
		t.Fatalf("focus = %d, want 0", a.focus)
	}
}

func TestSwitchTabs(t *testing.T) {
	a := newTestApp()
	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlT})
	if a.activeTab != tabRegions {
		t.Fatalf("activeTab = %d, want regions", a.activeTab)
	}

	x := components.TabVisualWidth(components.Tabs[0]) / 2
	a = send(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != tabBudget {
		t.Fatalf("click did not select budget tab")
	}
}

func TestViewRendersBothTabs(t *testing.T) {
	a := newTestApp()
	out := a.View()
	for _, want := range []string{"Despesas", "Alimentação", "Distribuição", "Saldo"} {
		if !strings.Contains(out, want) {
			t.Errorf("budget view missing %q", want)
		}
	}
	if h := lipgloss.Height(out); h != 48 {
		t.Errorf("view height = %d, want 48", h)
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlT})
	out = a.View()
	for _, r := range model.Regions {
		if !strings.Contains(out, r.Region) {
			t.Errorf("regions view missing %q", r.Region)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := newTestApp()
	a = send(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(a.View(), "too narrow") {
		t.Fatal("expected narrow-terminal notice")
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := SetupValues{Theme: "ocean", Symbol: " US$ ", Separators: ".,", LoadExample: false}
	vals.Apply(&cfg)

	if cfg.Appearance.Theme != "ocean" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Currency.Symbol != "US$" || cfg.Currency.Decimal != "." || cfg.Currency.Thousand != "," {
		t.Errorf("currency = %+v", cfg.Currency)
	}
	if cfg.General.LoadExample {
		t.Error("LoadExample should be false")
	}
}
