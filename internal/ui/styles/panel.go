package styles

import "github.com/charmbracelet/lipgloss"

var (
	unfocusedFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.Border)

	focusedFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.BorderFocus)
)

// Frame returns the rounded-border style for a panel, colored for its
// focus state.
func Frame(focused bool) lipgloss.Style {
	if focused {
		return focusedFrame
	}
	return unfocusedFrame
}
