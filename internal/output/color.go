// Package output provides styled terminal rendering helpers for bashstats.
package output

import "github.com/charmbracelet/lipgloss"

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for completed challenges and unlocked badges.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for error counts and failed runs.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for caution indicators.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text, locked badges, and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Tier colors follow the badge ladder.
var (
	ColorBronze      = lipgloss.Color("#cd7f32")
	ColorSilver      = lipgloss.Color("#c0c0c0")
	ColorGold        = lipgloss.Color("#ffd700")
	ColorDiamond     = lipgloss.Color("#b9f2ff")
	ColorSingularity = lipgloss.Color("#bb86fc")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for positive values.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for error values.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for cautionary values.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for stat labels.
	StyleLabel = lipgloss.NewStyle().
			Width(28)
)

// tierStyles maps badge tiers 0..5 to their colors. Tier 0 renders muted.
var tierStyles = [6]lipgloss.Style{
	lipgloss.NewStyle().Foreground(ColorMuted),
	lipgloss.NewStyle().Foreground(ColorBronze),
	lipgloss.NewStyle().Foreground(ColorSilver),
	lipgloss.NewStyle().Foreground(ColorGold).Bold(true),
	lipgloss.NewStyle().Foreground(ColorDiamond).Bold(true),
	lipgloss.NewStyle().Foreground(ColorSingularity).Bold(true),
}

// TierStyle returns the style for a badge tier 0..5.
func TierStyle(tier int) lipgloss.Style {
	if noColor || tier < 0 || tier >= len(tierStyles) {
		return lipgloss.NewStyle()
	}
	return tierStyles[tier]
}

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(28)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
