// Package tui provides the terminal user interface for the sun
// exposure calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arnaudbellemare/sunexposure/internal/config"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	AccentColor    lipgloss.Color
	MutedColor     lipgloss.Color
	ErrorColor     lipgloss.Color
	WarningColor   lipgloss.Color
	SuccessColor   lipgloss.Color

	// Base styles
	Base      lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	// Component styles
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Box      lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style

	StatusDivider lipgloss.Style
}

// NewTheme creates a theme for the configured color scheme.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeGreen:
		return newGreenTheme()
	case config.ColorSchemeWhite:
		return newWhiteTheme()
	default:
		return newSolarTheme()
	}
}

// newSolarTheme is the default warm amber palette.
func newSolarTheme() *Theme {
	return buildTheme(
		lipgloss.Color("#FFB000"), // primary
		lipgloss.Color("#AA7700"), // secondary
		lipgloss.Color("#FFD75F"), // accent
		lipgloss.Color("#664400"), // muted
		lipgloss.Color("#FF5F5F"), // error
		lipgloss.Color("#FFFF5F"), // warning
		lipgloss.Color("#87D75F"), // success
	)
}

func newGreenTheme() *Theme {
	return buildTheme(
		lipgloss.Color("#00FF00"),
		lipgloss.Color("#00AA00"),
		lipgloss.Color("#66FF66"),
		lipgloss.Color("#006600"),
		lipgloss.Color("#FF4444"),
		lipgloss.Color("#FFAA00"),
		lipgloss.Color("#00FF00"),
	)
}

func newWhiteTheme() *Theme {
	return buildTheme(
		lipgloss.Color("#FFFFFF"),
		lipgloss.Color("#AAAAAA"),
		lipgloss.Color("#FFFFFF"),
		lipgloss.Color("#666666"),
		lipgloss.Color("#FF4444"),
		lipgloss.Color("#FFAA00"),
		lipgloss.Color("#00FF00"),
	)
}

func buildTheme(primary, secondary, accent, muted, errorColor, warningColor, successColor lipgloss.Color) *Theme {
	t := &Theme{
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		AccentColor:    accent,
		MutedColor:     muted,
		ErrorColor:     errorColor,
		WarningColor:   warningColor,
		SuccessColor:   successColor,
	}

	t.Base = lipgloss.NewStyle().Foreground(primary)
	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(successColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	t.Header = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Padding(0, 1)

	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().Foreground(secondary)
	t.Value = lipgloss.NewStyle().Foreground(primary)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	t.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(primary).
		Bold(true)

	t.Focused = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(muted).
		SetString(" │ ")

	return t
}

// DrawHorizontalLine draws a single horizontal rule.
func (t *Theme) DrawHorizontalLine(width int) string {
	return t.Secondary.Render(strings.Repeat("─", width))
}

// DrawDoubleLine draws a double horizontal rule.
func (t *Theme) DrawDoubleLine(width int) string {
	return t.Primary.Render(strings.Repeat("═", width))
}
