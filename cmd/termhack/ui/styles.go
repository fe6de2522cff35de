// Package ui provides the visual styling for the termhack terminal UI.
// The palette imitates a phosphor terminal, with a light variant for
// light-background terminals.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Dark mode (default): green phosphor on black
	DarkBackground = lipgloss.Color("#0b0f0b")
	DarkForeground = lipgloss.Color("#33ff66")
	DarkAccent     = lipgloss.Color("#a6ffbf")
	DarkMuted      = lipgloss.Color("#1f7a3a")
	DarkBorder     = lipgloss.Color("#1f7a3a")

	// Light mode
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#0f3d1f")
	LightAccent     = lipgloss.Color("#138a36")
	LightMuted      = lipgloss.Color("#6b8f76")
	LightBorder     = lipgloss.Color("#b7cbbd")

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// ThemeByName maps a config theme name to a Theme. "auto" asks DetectTheme;
// anything else unknown is dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "auto":
		return DetectTheme()
	default:
		return DarkTheme()
	}
}

// DetectTheme guesses the terminal background from COLORFGBG
// ("foreground;background"); dark unless the background index looks light.
func DetectTheme() Theme {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		bg, err := strconv.Atoi(parts[1])
		if err == nil && (bg == 7 || (bg >= 9 && bg <= 15)) {
			return LightTheme()
		}
	}
	return DarkTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Sidebar lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Interactive
	Prompt    lipgloss.Style
	UserInput lipgloss.Style
	Highlight lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Highlight: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Accent).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
	}
}
