// Package components provides the widgets of the salescast dashboard.
package components

import (
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Metric is one summary figure shown in a MetricCard.
type Metric struct {
	Label string
	Value string
	Delta string
	Color lipgloss.Color // value color; empty uses the primary text color
}

// MetricCard renders a small card with label, value and an optional delta.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	contentWidth := max(10, outerWidth-2)

	valueColor := m.Color
	if valueColor == "" {
		valueColor = t.TextPrimary
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(m.Value)
	if m.Delta != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Delta)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(10, outerWidth-2)).
		Padding(0, 1)

	content := ""
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered cards horizontally, padding shorter cards to
// the height of the tallest.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	tallest := 0
	for _, c := range cards {
		tallest = max(tallest, lipgloss.Height(c))
	}
	bg := lipgloss.NewStyle().Background(theme.Active.Surface)
	padded := make([]string, len(cards))
	for i, c := range cards {
		w := lipgloss.Width(c)
		for h := lipgloss.Height(c); h < tallest; h++ {
			c += "\n" + bg.Render(lipgloss.PlaceHorizontal(w, lipgloss.Left, ""))
		}
		padded[i] = c
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(10, outerWidth-4)
}
