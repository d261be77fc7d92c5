// Package theme provides theme definitions and management for the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Cyan       lipgloss.Color
	Yellow     lipgloss.Color
}

// Theme names.
const (
	DraculaName    = "dracula"
	NarnaName      = "narna"
	CleanLightName = "clean-light"
	NordName       = "nord"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Accent:     lipgloss.Color("#BD93F9"),
		AccentDim:  lipgloss.Color("#44475A"),
		Border:     lipgloss.Color("#6272A4"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		SuccessFg:  lipgloss.Color("#50FA7B"),
		WarnFg:     lipgloss.Color("#FFB86C"),
		ErrorFg:    lipgloss.Color("#FF5555"),
		Cyan:       lipgloss.Color("#8BE9FD"),
		Yellow:     lipgloss.Color("#F1FA8C"),
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Background: lipgloss.Color("#0D1117"),
		Accent:     lipgloss.Color("#41ADFF"),
		AccentDim:  lipgloss.Color("#1A2230"),
		Border:     lipgloss.Color("#30363D"),
		MutedFg:    lipgloss.Color("#8B949E"),
		TextFg:     lipgloss.Color("#E6EDF3"),
		SuccessFg:  lipgloss.Color("#3FB950"),
		WarnFg:     lipgloss.Color("#E3B341"),
		ErrorFg:    lipgloss.Color("#F47067"),
		Cyan:       lipgloss.Color("#7CE0F3"),
		Yellow:     lipgloss.Color("#F2CC60"),
	}
}

// CleanLight returns a theme optimized for light terminal backgrounds.
func CleanLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#0598BC"),
		AccentDim:  lipgloss.Color("#DDF4FF"),
		Border:     lipgloss.Color("#D0D7DE"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		SuccessFg:  lipgloss.Color("#1A7F37"),
		WarnFg:     lipgloss.Color("#9A6700"),
		ErrorFg:    lipgloss.Color("#CF222E"),
		Cyan:       lipgloss.Color("#0598BC"),
		Yellow:     lipgloss.Color("#D4A72C"),
	}
}

// Nord returns the Nord theme (arctic, bluish colors).
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentDim:  lipgloss.Color("#3B4252"),
		Border:     lipgloss.Color("#4C566A"),
		MutedFg:    lipgloss.Color("#616E88"),
		TextFg:     lipgloss.Color("#D8DEE9"),
		SuccessFg:  lipgloss.Color("#A3BE8C"),
		WarnFg:     lipgloss.Color("#D08770"),
		ErrorFg:    lipgloss.Color("#BF616A"),
		Cyan:       lipgloss.Color("#8FBCBB"),
		Yellow:     lipgloss.Color("#EBCB8B"),
	}
}

// GetTheme returns the theme matching name, falling back to Dracula for
// unknown names.
func GetTheme(name string) *Theme {
	switch name {
	case NarnaName:
		return Narna()
	case CleanLightName:
		return CleanLight()
	case NordName:
		return Nord()
	case DraculaName:
		return Dracula()
	default:
		return Dracula()
	}
}

// AvailableThemes lists the selectable theme names.
func AvailableThemes() []string {
	return []string{DraculaName, NarnaName, CleanLightName, NordName}
}
