// Package theme defines color themes for the cbudget TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceBright lipgloss.Color // Focused input / selected row
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // Focused card border
	TextDim       lipgloss.Color // Hints, disabled
	TextMuted     lipgloss.Color // Labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Positive      lipgloss.Color // Non-negative balance
	Negative      lipgloss.Color // Negative balance, remove buttons
	Warning       lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme: warm, paper-inspired dark colors.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Positive:      lipgloss.Color("#879A39"),
	Negative:      lipgloss.Color("#D14D41"),
	Warning:       lipgloss.Color("#DA702C"),
}

// Ocean matches the blue pie palette.
var Ocean = Theme{
	Name:          "ocean",
	Background:    lipgloss.Color("#0A1A2F"),
	Surface:       lipgloss.Color("#102540"),
	SurfaceBright: lipgloss.Color("#1C3A5E"),
	Border:        lipgloss.Color("#2A4A70"),
	BorderAccent:  lipgloss.Color("#4DB6FF"),
	TextDim:       lipgloss.Color("#4A6585"),
	TextMuted:     lipgloss.Color("#8FAACC"),
	TextPrimary:   lipgloss.Color("#E6F2FF"),
	Accent:        lipgloss.Color("#1E90FF"),
	AccentBright:  lipgloss.Color("#82CFFF"),
	Positive:      lipgloss.Color("#5FD38D"),
	Negative:      lipgloss.Color("#FF6B6B"),
	Warning:       lipgloss.Color("#FFB347"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Positive:      lipgloss.Color("2"),
	Negative:      lipgloss.Color("1"),
	Warning:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, Ocean, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
