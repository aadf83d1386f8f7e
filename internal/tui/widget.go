package tui

import (
	"strconv"

	"github.com/theirongolddev/cbudget/internal/budget"

	"github.com/charmbracelet/bubbles/textinput"
)

// fieldKind identifies a focusable control on the budget tab.
type fieldKind int

const (
	fieldCategory fieldKind = iota
	fieldAmount
	fieldRemove
	fieldNewCategory
	fieldNewAmount
	fieldAdd
	fieldIncome
	fieldCalculate
	fieldReset
)

// focusTarget is one focusable control. row is set for per-row controls.
type focusTarget struct {
	kind fieldKind
	row  int
}

func (f focusTarget) isRowControl() bool {
	return f.kind == fieldCategory || f.kind == fieldAmount || f.kind == fieldRemove
}

// rowInputs are the editable controls of one expense row.
type rowInputs struct {
	index    int
	category textinput.Model
	amount   textinput.Model
}

// widgetView receives the controller's output: it is both the budget display
// and the table sink. Input models live here so the controller can clear or
// reset them.
type widgetView struct {
	rows        []rowInputs
	newCategory textinput.Model
	newAmount   textinput.Model
	income      textinput.Model
	total       string
	balance     string
	renders     int
}

func newWidgetView() *widgetView {
	v := &widgetView{
		newCategory: newInput("Categoria", 24),
		newAmount:   newInput("0,00", 12),
		income:      newInput("0", 12),
	}
	return v
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = width
	return ti
}

// Show implements budget.Display.
func (v *widgetView) Show(target budget.Target, text string) {
	switch target {
	case budget.TargetTotal:
		v.total = text
	case budget.TargetBalance:
		v.balance = text
	case budget.TargetIncome:
		v.income.SetValue(text)
	case budget.TargetNewCategory:
		v.newCategory.SetValue(text)
	case budget.TargetNewAmount:
		v.newAmount.SetValue(text)
	}
}

// RenderRows implements budget.TableSink. Every row is rebuilt.
func (v *widgetView) RenderRows(rows []budget.Row) {
	v.rows = make([]rowInputs, len(rows))
	for i, r := range rows {
		cat := newInput("Categoria", 40)
		cat.SetValue(r.Category)
		amt := newInput("0", 12)
		amt.SetValue(formatAmountInput(r.Amount))
		v.rows[i] = rowInputs{index: r.Index, category: cat, amount: amt}
	}
	v.renders++
}

// formatAmountInput shows an amount the way a number field would: no
// trailing zeros, at most two decimals.
func formatAmountInput(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	f, _ := strconv.ParseFloat(s, 64)
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// focusables lists the controls in tab order.
func (v *widgetView) focusables() []focusTarget {
	out := make([]focusTarget, 0, len(v.rows)*3+6)
	for _, r := range v.rows {
		out = append(out,
			focusTarget{kind: fieldCategory, row: r.index},
			focusTarget{kind: fieldAmount, row: r.index},
			focusTarget{kind: fieldRemove, row: r.index},
		)
	}
	return append(out,
		focusTarget{kind: fieldNewCategory, row: -1},
		focusTarget{kind: fieldNewAmount, row: -1},
		focusTarget{kind: fieldAdd, row: -1},
		focusTarget{kind: fieldIncome, row: -1},
		focusTarget{kind: fieldCalculate, row: -1},
		focusTarget{kind: fieldReset, row: -1},
	)
}

// input returns the text input behind f, or nil for buttons.
func (v *widgetView) input(f focusTarget) *textinput.Model {
	switch f.kind {
	case fieldCategory:
		if f.row >= 0 && f.row < len(v.rows) {
			return &v.rows[f.row].category
		}
	case fieldAmount:
		if f.row >= 0 && f.row < len(v.rows) {
			return &v.rows[f.row].amount
		}
	case fieldNewCategory:
		return &v.newCategory
	case fieldNewAmount:
		return &v.newAmount
	case fieldIncome:
		return &v.income
	}
	return nil
}

// editAction maps a changed input to the action that records its value.
func editAction(f focusTarget, value string) budget.Action {
	switch f.kind {
	case fieldCategory:
		return budget.EditCategory(f.row, value)
	case fieldAmount:
		return budget.EditAmount(f.row, value)
	case fieldNewCategory:
		return budget.SetNewCategory(value)
	case fieldNewAmount:
		return budget.SetNewAmount(value)
	default:
		return budget.SetIncome(value)
	}
}
