package tui

import (
	"strings"

	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/tui/components"
	"github.com/theirongolddev/cbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const (
	amountFieldWidth = 14
	minExpenseCardW  = 56
)

func (a App) renderBudgetTab(cw int) string {
	var b strings.Builder

	b.WriteString(a.renderSummaryRow(cw))
	b.WriteString("\n")

	pw, _ := a.pie.Size()
	pieCardW := pw + 4
	expenseW := cw - pieCardW

	if a.isCompactLayout() || expenseW < minExpenseCardW {
		b.WriteString(a.renderExpenseCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderPieCard(cw))
		return b.String()
	}

	b.WriteString(components.CardRow([]string{
		a.renderExpenseCard(expenseW),
		a.renderPieCard(pieCardW),
	}))
	return b.String()
}

// renderSummaryRow shows income, total and balance, plus the share of the
// income already spent when there is an income.
func (a App) renderSummaryRow(cw int) string {
	t := theme.Active
	sum := a.ctl.Summary()

	balanceColor := t.Positive
	if sum.Balance < 0 {
		balanceColor = t.Negative
	}

	metrics := []components.Metric{
		{Label: "Renda mensal", Value: cli.FormatCurrency(sum.Income)},
		{Label: "Total de despesas", Value: a.view.total, Note: cli.FormatNumber(int64(len(a.view.rows))) + " itens"},
		{Label: "Saldo", Value: a.view.balance, Color: balanceColor},
	}
	out := components.MetricCardRow(metrics, cw)

	if sum.Income > 0 {
		inner := components.CardInnerWidth(cw)
		bar := components.UsageBar("Orçamento usado", sum.UsedShare(), 16, inner-16-6)
		out += "\n" + components.ContentCard("", bar, cw, false)
	}
	return out
}

func (a App) renderExpenseCard(outerW int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outerW)
	cur := a.focusTarget()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	sp := spaceStyle.Render(" ")

	removeW := lipgloss.Width(" ✕ ")
	catW := max(10, inner-amountFieldWidth-removeW-2)

	var b strings.Builder
	b.WriteString(labelStyle.Render(padRight("Categoria", catW)))
	b.WriteString(sp)
	b.WriteString(labelStyle.Render(padRight("Valor", amountFieldWidth)))
	b.WriteString("\n")

	for _, r := range a.view.rows {
		b.WriteString(renderField(r.category, catW, cur == focusTarget{fieldCategory, r.index}))
		b.WriteString(sp)
		b.WriteString(renderField(r.amount, amountFieldWidth, cur == focusTarget{fieldAmount, r.index}))
		b.WriteString(sp)
		b.WriteString(renderButton("✕", t.Negative, cur == focusTarget{fieldRemove, r.index}))
		b.WriteString("\n")
	}
	if len(a.view.rows) == 0 {
		b.WriteString(cli.RenderNote("Nenhuma despesa."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Nova despesa"))
	b.WriteString("\n")
	addW := lipgloss.Width(" + Adicionar ")
	newCatW := max(10, inner-amountFieldWidth-addW-2)
	b.WriteString(renderField(a.view.newCategory, newCatW, cur.kind == fieldNewCategory))
	b.WriteString(sp)
	b.WriteString(renderField(a.view.newAmount, amountFieldWidth, cur.kind == fieldNewAmount))
	b.WriteString(sp)
	b.WriteString(renderButton("+ Adicionar", t.Accent, cur.kind == fieldAdd))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Renda mensal "))
	b.WriteString(renderField(a.view.income, amountFieldWidth, cur.kind == fieldIncome))
	b.WriteString(sp)
	b.WriteString(renderButton("Calcular", t.Accent, cur.kind == fieldCalculate))
	b.WriteString(sp)
	b.WriteString(renderButton("Limpar", t.Warning, cur.kind == fieldReset))

	return components.ContentCard("Despesas", b.String(), outerW, true)
}

func (a App) renderPieCard(outerW int) string {
	t := theme.Active
	body := a.pie.View(t.Surface, t.TextPrimary)
	if a.pie.Blank() {
		body = cli.RenderNote("Sem despesas para exibir.")
	}
	return components.ContentCard("Distribuição", body, outerW, false)
}

// renderField draws a text input on a fixed-width field background.
func renderField(in textinput.Model, width int, focused bool) string {
	t := theme.Active
	bg := t.Background
	if focused {
		bg = t.SurfaceBright
	}
	in.TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextDim).Background(bg)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(t.AccentBright)
	in.Width = max(1, width-2)

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		MaxWidth(width).
		Padding(0, 1).
		Render(in.View())
}

func renderButton(label string, color lipgloss.Color, focused bool) string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(color).Background(t.Background).Padding(0, 1)
	if focused {
		style = style.Foreground(t.Background).Background(color).Bold(true)
	}
	return style.Render(label)
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
