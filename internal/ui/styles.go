package ui

import "github.com/charmbracelet/lipgloss"

// resultBoxColors maps theme names to the border color of the result box.
var resultBoxColors = map[string]lipgloss.TerminalColor{
	"dark":  lipgloss.Color("39"),
	"light": lipgloss.Color("27"),
}

// ResultBoxStyle returns the lipgloss style used to frame the final result.
// When the no-color theme is active the border is rendered with the
// terminal's default colors.
func ResultBoxStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if color, ok := resultBoxColors[GetCurrentTheme().Name]; ok {
		style = style.BorderForeground(color)
	}
	return style
}

// HeaderStyle returns the style for section headers in verbose output.
func HeaderStyle() lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if color, ok := resultBoxColors[GetCurrentTheme().Name]; ok {
		style = style.Foreground(color)
	}
	return style
}
