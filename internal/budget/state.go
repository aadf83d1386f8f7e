// Package budget holds the widget state, the action dispatch table and the
// controller that turns actions into display, table and chart updates.
package budget

import (
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/cbudget/internal/model"
)

// DefaultCategory is used when an expense is added without a category.
const DefaultCategory = "Outra"

// State is everything the widget owns. Text fields hold raw input as typed;
// they are coerced to numbers only when read.
type State struct {
	Expenses    []model.Expense
	Income      string
	NewCategory string
	NewAmount   string
}

// NewState returns a state with a private copy of expenses.
func NewState(expenses []model.Expense, income string) State {
	return State{Expenses: cloneExpenses(expenses), Income: income}
}

// Row is one rendered expense row. Index is the row's position in the list and
// routes events from its controls back to the right entry.
type Row struct {
	Index    int
	Category string
	Amount   float64
}

// Rows builds one row per expense, in list order.
func Rows(expenses []model.Expense) []Row {
	rows := make([]Row, len(expenses))
	for i, e := range expenses {
		rows[i] = Row{Index: i, Category: e.Category, Amount: e.Amount}
	}
	return rows
}

// ParseAmount coerces text to a number. Both "1.234,56" and "1,234.56" are
// read as 1234.56: whichever separator comes last is the decimal one. Blank,
// malformed and non-finite input all become 0; it never fails.
func ParseAmount(s string) float64 {
	s = normalizeDecimal(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// normalizeDecimal rewrites s with "." as the only decimal separator and no
// grouping. A lone comma is a decimal comma.
func normalizeDecimal(s string) string {
	comma := strings.LastIndexByte(s, ',')
	if comma < 0 {
		return s
	}
	if strings.LastIndexByte(s, '.') > comma {
		return strings.ReplaceAll(s, ",", "")
	}
	s = strings.ReplaceAll(s, ".", "")
	return strings.Replace(s, ",", ".", 1)
}

// Calculate sums the expenses and compares them against income.
func Calculate(s State) model.Summary {
	income := ParseAmount(s.Income)
	total := 0.0
	for _, e := range s.Expenses {
		total += e.Amount
	}
	return model.Summary{
		Income:        income,
		TotalExpenses: total,
		Balance:       income - total,
	}
}

func cloneExpenses(in []model.Expense) []model.Expense {
	if in == nil {
		return nil
	}
	out := make([]model.Expense, len(in))
	copy(out, in)
	return out
}
