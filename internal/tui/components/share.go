package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareStyle selects the glyphs of a proportional chart.
type ShareStyle int

const (
	SharePie ShareStyle = iota
	ShareDoughnut
)

// ShareBar renders one labeled slice of a proportional chart. fill sets the
// bar length (0-1); pct is the share printed after it.
func ShareBar(label string, fill, pct float64, color lipgloss.Color, style ShareStyle, labelW, barWidth int) string {
	t := theme.Active

	fill = min(1, max(0, fill))

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)
	if style == ShareDoughnut {
		bar.Full = '▓'
		bar.Empty = '·'
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}

// ShareChart renders one ShareBar per slice, scaled so the largest slice
// fills the width.
func ShareChart(labels []string, pcts []float64, color lipgloss.Color, style ShareStyle, width int) string {
	if len(labels) == 0 || len(labels) != len(pcts) {
		return ""
	}

	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, lipgloss.Width(l))
	}
	barW := width - labelW - 8
	if barW < 4 {
		barW = 4
	}

	peak := 0.0
	for _, p := range pcts {
		peak = max(peak, p)
	}
	if peak == 0 {
		peak = 1
	}

	lines := make([]string, len(labels))
	for i, l := range labels {
		lines[i] = ShareBar(l, pcts[i]/peak, pcts[i], color, style, labelW, barW)
	}
	return strings.Join(lines, "\n")
}
