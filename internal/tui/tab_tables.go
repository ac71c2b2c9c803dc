package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func renderTablesTab(r model.Report, cw int) string {
	t := theme.Active
	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Revenue Jul-Dec", Value: cli.FormatAmount(r.Revenue.Total), Delta: cli.FormatGrowth(r.Revenue.Forecast.Growth), Color: t.Revenue},
		{Label: "Profit Jul-Dec", Value: cli.FormatAmount(r.Profit.Total), Delta: cli.FormatGrowth(r.Profit.Forecast.Growth), Color: t.Profit},
		{Label: "Revenue Dec", Value: cli.FormatAmount(r.Revenue.Forecast.Values[model.Horizon-1]), Delta: "vs Jun " + cli.FormatCompact(r.Revenue.History.Values[model.Horizon-1])},
		{Label: "Profit Dec", Value: cli.FormatAmount(r.Profit.Forecast.Values[model.Horizon-1]), Delta: "vs Jun " + cli.FormatCompact(r.Profit.History.Values[model.Horizon-1])},
	}, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Historical Data", monthTable(cli.HistoricalRows(r), components.CardInnerWidth(halves[0])), halves[0]),
		components.ContentCard("Predicted Data (Next 6 Months)", monthTable(cli.PredictedRows(r), components.CardInnerWidth(halves[1])), halves[1]),
	}))

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Data Entry Warnings", warningLines(r.Warnings), cw))
	}

	return b.String()
}

// monthTable renders Month/Revenue/Profit rows in fixed columns. A row of
// "---" renders as a separator.
func monthTable(rows [][]string, innerW int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	monthW := 6
	numW := max(10, (innerW-monthW)/2)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s%*s%*s", monthW, "Month", numW, model.Revenue, numW, model.Profit)))
	for _, row := range rows {
		b.WriteString("\n")
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(sepStyle.Render(strings.Repeat("─", monthW+2*numW)))
			continue
		}
		if len(row) < 3 {
			continue
		}
		style := rowStyle
		if row[0] == "TOTAL" {
			style = rowStyle.Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%-*s%*s%*s", monthW, row[0], numW, row[1], numW, row[2])))
	}
	return b.String()
}

func warningLines(ws []model.Warning) string {
	t := theme.Active
	mark := lipgloss.NewStyle().Foreground(t.Orange).Render("! ")
	text := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := make([]string, len(ws))
	for i, w := range ws {
		lines[i] = mark + text.Render(w.Message)
	}
	return strings.Join(lines, "\n")
}
