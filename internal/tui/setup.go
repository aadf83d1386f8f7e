package tui

import (
	"strings"

	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/config"
	"github.com/theirongolddev/cbudget/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Theme       string
	Symbol      string
	Separators  string // decimal+thousand, e.g. ",." or ".,"
	LoadExample bool
}

var separatorOptions = []huh.Option[string]{
	huh.NewOption("1.234,56", ",."),
	huh.NewOption("1,234.56", ".,"),
	huh.NewOption("1 234,56", ", "),
}

// SetupValuesFrom seeds the form with the current config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:       cfg.Appearance.Theme,
		Symbol:      cfg.Currency.Symbol,
		Separators:  cfg.Currency.Decimal + cfg.Currency.Thousand,
		LoadExample: cfg.General.LoadExample,
	}
}

// NewSetupForm builds the setup form writing into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cbudget").
				Description("A few preferences before the widget opens.\nRun `cbudget setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Placeholder("R$").
				Value(&vals.Symbol),
			huh.NewSelect[string]().
				Title("Number format").
				Options(separatorOptions...).
				Value(&vals.Separators),
			huh.NewConfirm().
				Title("Start with the example expenses?").
				Value(&vals.LoadExample),
		),
	)
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	if sym := strings.TrimSpace(v.Symbol); sym != "" {
		cfg.Currency.Symbol = sym
	}
	if seps := []rune(v.Separators); len(seps) == 2 {
		cfg.Currency.Decimal = string(seps[0])
		cfg.Currency.Thousand = string(seps[1])
	}
	cfg.General.LoadExample = v.LoadExample
}

// ApplyConfig activates the theme and currency of cfg.
func ApplyConfig(cfg config.Config) {
	theme.SetActive(config.Theme(cfg))
	cli.SetCurrency(cli.Currency{
		Symbol:   cfg.Currency.Symbol,
		Decimal:  cfg.Currency.Decimal,
		Thousand: cfg.Currency.Thousand,
	})
}

// saveSetup applies the form answers, persists them and activates them.
func saveSetup(vals SetupValues) error {
	cfg := config.LoadOrDefault()
	vals.Apply(&cfg)
	ApplyConfig(cfg)
	return config.Save(cfg)
}
