package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func renderSharesTab(r model.Report, cw int) string {
	t := theme.Active
	halves := components.LayoutRow(cw, 2)

	return components.CardRow([]string{
		components.ContentCard("Future Revenue Share",
			shareBody(r.Revenue, t.Revenue, components.SharePie, components.CardInnerWidth(halves[0])),
			halves[0]),
		components.ContentCard("Future Profit Share",
			shareBody(r.Profit, t.Profit, components.ShareDoughnut, components.CardInnerWidth(halves[1])),
			halves[1]),
	})
}

func shareBody(m model.MetricReport, color lipgloss.Color, style components.ShareStyle, innerW int) string {
	t := theme.Active

	shares, err := pipeline.Shares(m)
	if errors.Is(err, forecast.ErrDegenerateDistribution) {
		return lipgloss.NewStyle().Foreground(t.Orange).Render(
			fmt.Sprintf("Predicted %s is zero or negative;\nshare chart skipped.",
				strings.ToLower(string(m.Forecast.Metric))))
	}

	labels := make([]string, len(shares))
	pcts := make([]float64, len(shares))
	for i, s := range shares {
		labels[i] = s.Label
		pcts[i] = s.Pct
	}

	total := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render("Total " + cli.FormatAmount(m.Total))
	return components.ShareChart(labels, pcts, color, style, innerW) + "\n\n" + total
}
