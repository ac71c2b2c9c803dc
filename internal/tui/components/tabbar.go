package components

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one dashboard tab.
type Tab struct {
	Name string
	Key  rune
}

// Tabs lists the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Tables", Key: '1'},
	{Name: "Charts", Key: '2'},
	{Name: "Shares", Key: '3'},
}

const tabGap = "  "

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		name := inactiveStyle.Render(tab.Name)
		if i == activeIdx {
			name = activeStyle.Render(tab.Name)
		}
		parts[i] = keyStyle.Render(string(tab.Key)+" ") + name
	}

	bar := " " + strings.Join(parts, tabGap)
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

// TabAtX returns the tab under column x of the rendered tab bar, or -1.
func TabAtX(x int) int {
	pos := 1
	for i, tab := range Tabs {
		w := 2 + len(tab.Name)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + len(tabGap)
	}
	return -1
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
