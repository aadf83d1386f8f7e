package cmd

import (
	"errors"
	"testing"

	"github.com/theirongolddev/cbudget/internal/budget"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/model"
)

func TestExpenseActions(t *testing.T) {
	actions, err := expenseActions([]string{"Aluguel=1200", " =15", "Mercado=640,50", "Carro=1.234,56"})
	if err != nil {
		t.Fatalf("expenseActions: %v", err)
	}
	if len(actions) != 12 {
		t.Fatalf("actions = %d, want 12", len(actions))
	}

	sink := &textSink{}
	ctl := budget.NewController(sink, sink, chart.NewRecorder(400, 300))
	ctl.Load(nil, "3000")
	if err := ctl.Replay(append(actions, budget.Calc())...); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	want := []model.Expense{
		{Category: "Aluguel", Amount: 1200},
		{Category: budget.DefaultCategory, Amount: 15},
		{Category: "Mercado", Amount: 640.5},
		{Category: "Carro", Amount: 1234.56},
	}
	got := ctl.State().Expenses
	if len(got) != len(want) {
		t.Fatalf("expenses = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expense %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(sink.rows) != 4 {
		t.Errorf("rendered rows = %d, want 4", len(sink.rows))
	}
	if sink.total != "R$ 3.090,06" {
		t.Errorf("total = %q", sink.total)
	}
	if sink.balance != "-R$ 90,06" {
		t.Errorf("balance = %q", sink.balance)
	}
}

func TestExpenseActionsRejectsMissingSeparator(t *testing.T) {
	if _, err := expenseActions([]string{"Aluguel=900", "Mercado 300"}); err == nil {
		t.Fatal("expected an error for a value without '='")
	}
}

func TestUnknownActionStopsReplay(t *testing.T) {
	sink := &textSink{}
	ctl := budget.NewController(sink, sink, chart.NewRecorder(400, 300))
	ctl.Load(model.ExampleExpenses(), "")

	err := ctl.Replay(budget.Action{Kind: "bogus"}, budget.Add())
	if !errors.Is(err, budget.ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
	if n := len(ctl.State().Expenses); n != 4 {
		t.Errorf("expenses = %d, want 4", n)
	}
}
