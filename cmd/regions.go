package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbudget/internal/chart"
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/model"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print the regional spending infographic",
	RunE:  runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(_ *cobra.Command, _ []string) error {
	loadConfig()

	bars := chart.ComputeBars(model.Regions)

	rows := make([][]string, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, []string{
			b.Region,
			cli.FormatCurrency(b.Value),
			cli.RenderHorizontalBar(float64(b.HeightPct), 30) + fmt.Sprintf(" %3d%%", b.HeightPct),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GASTO MÉDIO POR REGIÃO"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Região", "Valor", "Altura"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
