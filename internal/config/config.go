// Package config loads and saves the cbudget TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all cbudget configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Currency   CurrencyConfig   `toml:"currency"`
	Appearance AppearanceConfig `toml:"appearance"`
	Chart      ChartConfig      `toml:"chart"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds startup preferences.
type GeneralConfig struct {
	LoadExample bool   `toml:"load_example"`
	Income      string `toml:"income,omitempty"`
}

// CurrencyConfig controls amount formatting.
type CurrencyConfig struct {
	Symbol   string `toml:"symbol"`
	Decimal  string `toml:"decimal"`
	Thousand string `toml:"thousand"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ChartConfig sizes the pie raster, in terminal columns and pixel rows.
type ChartConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// Default chart size; two pixel rows per terminal row.
const (
	DefaultChartWidth  = 64
	DefaultChartHeight = 32
	minChartWidth      = 20
	minChartHeight     = 8
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LoadExample: true,
		},
		Currency: CurrencyConfig{
			Symbol:   "R$",
			Decimal:  ",",
			Thousand: ".",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Chart: ChartConfig{
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cbudget")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// LoadOrDefault loads config, returning defaults on error so the widget
// can always start even if the file is corrupted.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

func (c *Config) normalize() {
	if c.Chart.Width < minChartWidth {
		c.Chart.Width = DefaultChartWidth
	}
	if c.Chart.Height < minChartHeight {
		c.Chart.Height = DefaultChartHeight
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Theme returns the theme from env var or config, in that order.
func Theme(cfg Config) string {
	if name := os.Getenv("CBUDGET_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// LogLevel returns the log level from env var or config, in that order.
func LogLevel(cfg Config) string {
	if lvl := os.Getenv("CBUDGET_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return cfg.Log.Level
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
