// Package styles holds the color palette and pre-built lipgloss styles
// shared by the browse UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the application.
type Theme struct {
	// Accent colors
	Primary   lipgloss.Color // Gold - selections, active states
	Secondary lipgloss.Color // Muted red - the header gradient's far end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text
	FgMuted  lipgloss.Color // Secondary text
	FgSubtle lipgloss.Color // Help lines, separators

	// Cursor/selection highlight
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color // Unfocused frames
	BorderFocus lipgloss.Color // Focused frames

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text
	Title  lipgloss.Style // Bold, bright
	Accent lipgloss.Style // Selected artwork, highlights
	Cursor lipgloss.Style // Cursor row highlight
	Error  lipgloss.Style
}

var defaultTheme = Theme{
	// Gallery gold with an oxblood counterpoint
	Primary:   lipgloss.Color("#c9a227"),
	Secondary: lipgloss.Color("#9a3b3b"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#c9a227"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
