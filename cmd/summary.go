package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cbudget/internal/budget"
	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagExpenses []string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print totals, balance and the expense pie without the TUI",
	Example: `  cbudget summary --income 5000
  cbudget summary --empty -i 3200 -e "Aluguel=1200" -e "Mercado=640,50"`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringArrayVarP(&flagExpenses, "expense", "e", nil, `Add an expense as "Category=Amount" (repeatable)`)
	rootCmd.AddCommand(summaryCmd)
}

// textSink collects what the controller would show on screen.
type textSink struct {
	total   string
	balance string
	rows    []budget.Row
}

func (s *textSink) Show(target budget.Target, text string) {
	switch target {
	case budget.TargetTotal:
		s.total = text
	case budget.TargetBalance:
		s.balance = text
	}
}

func (s *textSink) RenderRows(rows []budget.Row) { s.rows = rows }

// expenseActions turns --expense values into the actions a user would take
// in the widget: fill the new-expense inputs, then add.
func expenseActions(values []string) ([]budget.Action, error) {
	actions := make([]budget.Action, 0, 3*len(values))
	for _, v := range values {
		cat, amt, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --expense %q: want Category=Amount", v)
		}
		actions = append(actions,
			budget.SetNewCategory(cat),
			budget.SetNewAmount(amt),
			budget.Add(),
		)
	}
	return actions, nil
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	lg, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	actions, err := expenseActions(flagExpenses)
	if err != nil {
		return err
	}

	sink := &textSink{}
	pie := chart.NewRaster(cfg.Chart.Width, cfg.Chart.Height)
	pw, ph := pie.Size()
	ctl := budget.NewController(sink, sink, pie,
		budget.WithLogger(lg),
		budget.WithLayout(chart.TerminalLayout(pw, ph)),
	)

	var start []model.Expense
	if len(flagExpenses) == 0 {
		start = startingExpenses(cfg)
	}
	ctl.Load(start, startingIncome(cfg))
	if err := ctl.Replay(append(actions, budget.Calc())...); err != nil {
		return err
	}

	sum := ctl.Summary()
	st := ctl.State()

	fmt.Println()
	fmt.Println(cli.RenderTitle("ORÇAMENTO MENSAL"))
	fmt.Println()

	if len(st.Expenses) == 0 {
		fmt.Println("  Nenhuma despesa.")
		fmt.Println()
	} else {
		rows := make([][]string, 0, len(sink.rows))
		for _, r := range sink.rows {
			rows = append(rows, []string{
				r.Category,
				cli.FormatCurrency(r.Amount),
				fmt.Sprintf("%d%%", chart.SharePercent(r.Amount, sum.TotalExpenses)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Categoria", "Valor", "Parte"},
			Rows:    rows,
			Footer: [][]string{
				{"Total de despesas", sink.total, ""},
			},
		}))
		fmt.Println()
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Renda mensal", cli.FormatCurrency(sum.Income)},
			{"Total de despesas", sink.total},
			{"Saldo", balanceStyle(sum.Balance).Render(sink.balance)},
		},
	}))
	if sum.Income > 0 {
		pct := sum.UsedShare() * 100
		fmt.Printf("  Orçamento usado  %s %s\n", cli.RenderHorizontalBar(pct, 30), cli.FormatPercent(sum.UsedShare()))
	}
	fmt.Println()

	if !pie.Blank() {
		fmt.Println(pie.View(lipgloss.Color(""), cli.ColorText))
		fmt.Println()
	}
	return nil
}

func balanceStyle(v float64) lipgloss.Style {
	if v < 0 {
		return lipgloss.NewStyle().Foreground(cli.ColorRed)
	}
	return lipgloss.NewStyle().Foreground(cli.ColorGreen)
}
