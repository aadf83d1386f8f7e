// Package cmd implements the cbudget CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cli.SetCurrency(cli.Currency{
		Symbol:   cfg.Currency.Symbol,
		Decimal:  cfg.Currency.Decimal,
		Thousand: cfg.Currency.Thousand,
	})

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Load example: %v\n", cfg.General.LoadExample)
	if cfg.General.Income != "" {
		fmt.Printf("    Income:       %s\n", cfg.General.Income)
	} else {
		fmt.Println("    Income:       not set")
	}
	fmt.Println()

	fmt.Println("  [Currency]")
	fmt.Printf("    Symbol:  %s\n", cfg.Currency.Symbol)
	fmt.Printf("    Example: %s\n", cli.FormatCurrency(1234.56))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s", cfg.Appearance.Theme)
	if active := config.Theme(cfg); active != cfg.Appearance.Theme {
		fmt.Printf(" (CBUDGET_THEME=%s)", active)
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("  [Chart]")
	fmt.Printf("    Pie size: %dx%d px\n", cfg.Chart.Width, cfg.Chart.Height)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", config.LogLevel(cfg))
	if cfg.Log.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Log.File)
	} else {
		fmt.Println("    File:  disabled")
	}
	fmt.Println()

	fmt.Println("  Run `cbudget setup` to reconfigure.")
	return nil
}
