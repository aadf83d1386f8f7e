package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/log"
	"github.com/theirongolddev/cbudget/internal/model"
	"github.com/theirongolddev/cbudget/internal/tui"
	"github.com/theirongolddev/cbudget/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagIncome   string
	flagEmpty    bool
	flagTheme    string
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "cbudget",
	Short: "Personal budget widget for the terminal",
	Long: "Track monthly expenses against your income: edit the expense list, " +
		"see the total and balance, a pie chart of where the money goes, " +
		"and a regional spending infographic.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagIncome, "income", "i", "", "Monthly income (overrides general.income)")
	rootCmd.PersistentFlags().BoolVar(&flagEmpty, "empty", false, "Start with an empty expense list")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: "+fmt.Sprint(theme.Names()))
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides log.file)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads the config file, applies flag overrides and activates
// the theme and currency format.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	tui.ApplyConfig(cfg)
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
		theme.SetActive(flagTheme)
	}
	return cfg
}

// openLogger returns a file logger when a log file is configured, and a
// discarding one otherwise. stdout belongs to the TUI.
func openLogger(cfg config.Config) (*log.Logger, func() error, error) {
	path := flagLogFile
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		return log.Discard(), func() error { return nil }, nil
	}
	level := flagLogLevel
	if level == "" {
		level = config.LogLevel(cfg)
	}
	return log.OpenFile(path, log.ParseLevel(level), "cbudget")
}

// startingExpenses returns the list the widget opens with.
func startingExpenses(cfg config.Config) []model.Expense {
	if flagEmpty || !cfg.General.LoadExample {
		return nil
	}
	return model.ExampleExpenses()
}

// startingIncome prefers --income over the configured income.
func startingIncome(cfg config.Config) string {
	if flagIncome != "" {
		return flagIncome
	}
	return cfg.General.Income
}
