package components

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a status message on the right.
func RenderStatusBar(width int, hints, status string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	right := ""
	if status != "" {
		right = status + " "
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
