package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget widget (default command)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	lg, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Expenses:    startingExpenses(cfg),
		Income:      startingIncome(cfg),
		ChartWidth:  cfg.Chart.Width,
		ChartHeight: cfg.Chart.Height,
		Logger:      lg,
		FirstRun:    !config.Exists(),
		Setup:       tui.SetupValuesFrom(cfg),
	})
	lg.Info("starting tui", "config", config.Path())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		lg.Error("tui exited", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
