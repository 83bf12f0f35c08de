// Package ui provides terminal color themes and shared styles for the
// command-line output. Themes are plain ANSI escape sequences; the result
// summary box is rendered with lipgloss.
package ui
