package tui

import (
	"strings"

	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"
)

const (
	lineChartHeight = 10
	barChartHeight  = 8
)

func renderChartsTab(r model.Report, cw int) string {
	t := theme.Active
	var b strings.Builder

	rev, prof := r.Revenue.Combined, r.Profit.Combined

	b.WriteString(components.ContentCard(
		"Revenue & Profit, Jan-Dec",
		components.LineChart([]components.LineSeries{
			{Name: string(model.Revenue), Values: rev.Values, Color: t.Revenue},
			{Name: string(model.Profit), Values: prof.Values, Color: t.Profit},
		}, rev.Labels, rev.Split, components.CardInnerWidth(cw), lineChartHeight),
		cw,
	))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Revenue by Month",
			components.BarChart(rev.Values, rev.Labels, t.Revenue, rev.Split, components.CardInnerWidth(halves[0]), barChartHeight),
			halves[0]),
		components.ContentCard("Profit by Month",
			components.BarChart(prof.Values, prof.Labels, t.Profit, prof.Split, components.CardInnerWidth(halves[1]), barChartHeight),
			halves[1]),
	}))

	return b.String()
}
