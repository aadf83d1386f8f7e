// Package tui provides the interactive Bubble Tea front end for cbudget.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cbudget/internal/budget"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/log"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/tui/components"
	"github.com/theirongolddev/cbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabBudget = iota
	tabRegions
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
	infographicRows  = 10
)

// Options configures a new App.
type Options struct {
	Expenses    []model.Expense
	Income      string
	ChartWidth  int // pie raster size in pixels
	ChartHeight int
	Logger      *log.Logger
	FirstRun    bool // show the setup form before the widget
	Setup       SetupValues
}

// App is the root Bubble Tea model. The pointer fields are shared between
// the copies Bubble Tea makes of the model.
type App struct {
	ctl  *budget.Controller
	view *widgetView
	pie  *chart.Raster
	bars []chart.Bar
	log  *log.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	focus     int
	status    string

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
}

// NewApp builds the widget, loads the initial expenses and runs the first
// calculation.
func NewApp(opts Options) App {
	lg := opts.Logger
	if lg == nil {
		lg = log.Discard()
	}
	w, h := opts.ChartWidth, opts.ChartHeight
	if w <= 0 || h <= 0 {
		w, h = 64, 32
	}

	view := newWidgetView()
	pie := chart.NewRaster(w, h)
	pw, ph := pie.Size()
	ctl := budget.NewController(view, view, pie,
		budget.WithLogger(lg),
		budget.WithLayout(chart.TerminalLayout(pw, ph)),
	)
	ctl.Load(opts.Expenses, opts.Income)

	a := App{
		ctl:  ctl,
		view: view,
		pie:  pie,
		bars: chart.ComputeBars(model.Regions),
		log:  lg.WithComponent("tui"),
	}
	if opts.FirstRun {
		vals := opts.Setup
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
	}
	a.syncFocus()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion, textinput.Blink}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "f1" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "ctrl+t":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "f5":
			a.dispatch(budget.Calc())
			return a, nil
		case "ctrl+r":
			a.dispatch(budget.Reset())
			return a, nil
		}

		if a.activeTab != tabBudget {
			return a, nil
		}
		return a.updateBudget(msg)
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if in := a.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateBudget handles keys on the budget tab: focus movement, buttons and
// typing into the focused input.
func (a App) updateBudget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	targets := a.view.focusables()
	cur := targets[a.focus]

	switch msg.String() {
	case "tab", "down":
		a.focus = (a.focus + 1) % len(targets)
		a.syncFocus()
		return a, nil
	case "shift+tab", "up":
		a.focus = (a.focus - 1 + len(targets)) % len(targets)
		a.syncFocus()
		return a, nil
	case "ctrl+d":
		if cur.isRowControl() {
			a.dispatch(budget.Remove(cur.row))
		}
		return a, nil
	case "enter":
		switch cur.kind {
		case fieldRemove:
			a.dispatch(budget.Remove(cur.row))
		case fieldNewAmount, fieldAdd:
			a.dispatch(budget.Add())
		case fieldCalculate:
			a.dispatch(budget.Calc())
		case fieldReset:
			a.dispatch(budget.Reset())
		default:
			a.focus = (a.focus + 1) % len(targets)
			a.syncFocus()
		}
		return a, nil
	}

	in := a.view.input(cur)
	if in == nil {
		return a, nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if after := in.Value(); after != before {
		a.dispatch(editAction(cur, after))
	}
	return a, cmd
}

// dispatch sends one action to the controller and keeps focus on the same
// control when the rows are rebuilt.
func (a *App) dispatch(act budget.Action) {
	prev := a.focusTarget()
	renders := a.view.renders

	if err := a.ctl.Dispatch(act); err != nil {
		a.log.Error("dispatch failed", "action", act.String(), "error", err)
		a.status = err.Error()
		return
	}

	switch act.Kind {
	case budget.ActionAdd:
		a.status = "despesa adicionada"
	case budget.ActionRemove:
		a.status = "despesa removida"
	case budget.ActionCalculate:
		a.status = "calculado"
	case budget.ActionReset:
		a.status = "zerado"
	}

	if a.view.renders != renders {
		a.refocus(prev)
	}
}

// focusTarget returns the currently focused control.
func (a App) focusTarget() focusTarget {
	targets := a.view.focusables()
	if a.focus < 0 || a.focus >= len(targets) {
		return targets[0]
	}
	return targets[a.focus]
}

func (a App) focusedInput() *textinput.Model {
	if a.activeTab != tabBudget {
		return nil
	}
	return a.view.input(a.focusTarget())
}

// refocus finds prev again after a re-render. A removed row hands focus to
// the control now at the same position.
func (a *App) refocus(prev focusTarget) {
	targets := a.view.focusables()
	for i, t := range targets {
		if t == prev {
			a.focus = i
			a.syncFocus()
			return
		}
	}
	a.focus = min(a.focus, len(targets)-1)
	a.syncFocus()
}

// syncFocus blurs every input and focuses the current one.
func (a *App) syncFocus() {
	targets := a.view.focusables()
	a.focus = max(0, min(a.focus, len(targets)-1))
	for i, t := range targets {
		in := a.view.input(t)
		if in == nil {
			continue
		}
		if i == a.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		err := saveSetup(*a.setupVals)
		// Totals are formatted text; redo them with the new currency.
		a.dispatch(budget.Calc())
		if err != nil {
			a.log.Error("save setup", "error", err)
			a.status = "config not saved"
		} else {
			a.status = "config saved"
		}
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cbudget needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"Tab ↓", "Next field"},
		{"S-Tab ↑", "Previous field"},
		{"Enter", "Press button / add from amount"},
		{"^d", "Remove focused row"},
		{"F5", "Calculate"},
		{"^r", "Reset"},
		{"^t", "Switch tab"},
		{"F1", "Toggle help"},
		{"^c", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.status)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabRegions:
		content = a.renderRegionsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}
