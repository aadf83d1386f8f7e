package budget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/cbudget/internal/model"
)

// ErrUnknownAction is returned when an action kind has no handler.
var ErrUnknownAction = errors.New("unknown action")

// ActionKind identifies a UI action.
type ActionKind string

const (
	ActionAdd            ActionKind = "add"
	ActionRemove         ActionKind = "remove"
	ActionEditCategory   ActionKind = "edit-category"
	ActionEditAmount     ActionKind = "edit-amount"
	ActionSetIncome      ActionKind = "set-income"
	ActionSetNewCategory ActionKind = "set-new-category"
	ActionSetNewAmount   ActionKind = "set-new-amount"
	ActionCalculate      ActionKind = "calculate"
	ActionReset          ActionKind = "reset"
)

// Action is a UI event: a kind plus its payload. Index addresses a row for
// remove and edit actions; Text carries typed input.
type Action struct {
	Kind  ActionKind
	Index int
	Text  string
}

func (a Action) String() string {
	switch a.Kind {
	case ActionRemove:
		return fmt.Sprintf("%s[%d]", a.Kind, a.Index)
	case ActionEditCategory, ActionEditAmount:
		return fmt.Sprintf("%s[%d]=%q", a.Kind, a.Index, a.Text)
	case ActionSetIncome, ActionSetNewCategory, ActionSetNewAmount:
		return fmt.Sprintf("%s=%q", a.Kind, a.Text)
	default:
		return string(a.Kind)
	}
}

// Convenience constructors.
func Add() Action { return Action{Kind: ActionAdd} }
func Remove(i int) Action { return Action{Kind: ActionRemove, Index: i} }
func EditCategory(i int, s string) Action { return Action{Kind: ActionEditCategory, Index: i, Text: s} }
func EditAmount(i int, s string) Action { return Action{Kind: ActionEditAmount, Index: i, Text: s} }
func SetIncome(s string) Action { return Action{Kind: ActionSetIncome, Text: s} }
func SetNewCategory(s string) Action { return Action{Kind: ActionSetNewCategory, Text: s} }
func SetNewAmount(s string) Action { return Action{Kind: ActionSetNewAmount, Text: s} }
func Calc() Action { return Action{Kind: ActionCalculate} }
func Reset() Action { return Action{Kind: ActionReset} }

// effect lists what the controller must do after a handler runs.
type effect uint8

const (
	effectRender     effect = 1 << iota // rebuild the table rows
	effectClearInput                    // blank the new-expense inputs
	effectCalculate                     // recompute totals and redraw the pie
	effectReset                         // zero the displays and clear the pie
)

type handler struct {
	apply  func(State, Action) State
	effect effect
}

// dispatch maps every action kind to its handler. Handlers never mutate the
// state they are given.
var dispatch = map[ActionKind]handler{
	ActionAdd:            {apply: applyAdd, effect: effectRender | effectClearInput},
	ActionRemove:         {apply: applyRemove, effect: effectRender},
	ActionEditCategory:   {apply: applyEditCategory},
	ActionEditAmount:     {apply: applyEditAmount},
	ActionSetIncome:      {apply: func(s State, a Action) State { s.Income = a.Text; return s }},
	ActionSetNewCategory: {apply: func(s State, a Action) State { s.NewCategory = a.Text; return s }},
	ActionSetNewAmount:   {apply: func(s State, a Action) State { s.NewAmount = a.Text; return s }},
	ActionCalculate:      {apply: func(s State, _ Action) State { return s }, effect: effectCalculate},
	ActionReset:          {apply: applyReset, effect: effectRender | effectReset},
}

// Reduce returns the state after a. Unknown kinds return s unchanged and
// ErrUnknownAction.
func Reduce(s State, a Action) (State, error) {
	h, ok := dispatch[a.Kind]
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}
	return h.apply(s, a), nil
}

func applyAdd(s State, _ Action) State {
	category := strings.TrimSpace(s.NewCategory)
	if category == "" {
		category = DefaultCategory
	}
	expenses := make([]model.Expense, len(s.Expenses), len(s.Expenses)+1)
	copy(expenses, s.Expenses)
	s.Expenses = append(expenses, model.Expense{Category: category, Amount: ParseAmount(s.NewAmount)})
	s.NewCategory = ""
	s.NewAmount = ""
	return s
}

func applyRemove(s State, a Action) State {
	if a.Index < 0 || a.Index >= len(s.Expenses) {
		return s
	}
	expenses := make([]model.Expense, 0, len(s.Expenses)-1)
	expenses = append(expenses, s.Expenses[:a.Index]...)
	s.Expenses = append(expenses, s.Expenses[a.Index+1:]...)
	return s
}

func applyEditCategory(s State, a Action) State {
	if a.Index < 0 || a.Index >= len(s.Expenses) {
		return s
	}
	s.Expenses = cloneExpenses(s.Expenses)
	s.Expenses[a.Index].Category = a.Text
	return s
}

func applyEditAmount(s State, a Action) State {
	if a.Index < 0 || a.Index >= len(s.Expenses) {
		return s
	}
	s.Expenses = cloneExpenses(s.Expenses)
	s.Expenses[a.Index].Amount = ParseAmount(a.Text)
	return s
}

func applyReset(s State, _ Action) State {
	s.Income = "0"
	s.Expenses = nil
	return s
}
