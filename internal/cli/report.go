package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"
)

const shareBarWidth = 30

// HistoricalRows returns the Month/Revenue/Profit rows for the observed months.
func HistoricalRows(r model.Report) [][]string {
	rows := make([][]string, 0, model.Horizon+2)
	for i, m := range model.HistoryMonths {
		rows = append(rows, []string{
			m,
			FormatAmount(r.Revenue.History.Values[i]),
			FormatAmount(r.Profit.History.Values[i]),
		})
	}
	return rows
}

// PredictedRows returns the Month/Revenue/Profit rows for the projected
// months, followed by a total row.
func PredictedRows(r model.Report) [][]string {
	rows := make([][]string, 0, model.Horizon+2)
	for i, m := range model.FutureMonths {
		rows = append(rows, []string{
			m,
			FormatAmount(r.Revenue.Forecast.Values[i]),
			FormatAmount(r.Profit.Forecast.Values[i]),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", FormatAmount(r.Revenue.Total), FormatAmount(r.Profit.Total)})
	return rows
}

// RenderTrend renders a combined series as a sparkline with the prediction
// start marked.
func RenderTrend(c model.CombinedSeries) string {
	if len(c.Values) == 0 {
		return ""
	}
	line := []rune(RenderSparkline(c.Values))
	split := c.Split
	if split < 0 || split > len(line) {
		split = len(line)
	}
	return string(line[:split]) + "┊" + string(line[split:])
}

// RenderShares renders a projected series as proportional bars, or a
// warning when it sums to zero.
func RenderShares(title string, m model.MetricReport) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	shares, err := pipeline.Shares(m)
	if errors.Is(err, forecast.ErrDegenerateDistribution) {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  Predicted %s is zero or negative; chart skipped.",
			strings.ToLower(string(m.Forecast.Metric)))))
		b.WriteString("\n")
		return b.String()
	}

	peak := 0.0
	for _, s := range shares {
		peak = max(peak, s.Pct)
	}
	for _, s := range shares {
		b.WriteString(RenderHorizontalBar(s.Label, s.Pct, peak, shareBarWidth))
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(FormatPercent(s.Pct)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderWarnings lists input guideline warnings.
func RenderWarnings(ws []model.Warning) string {
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(warnStyle.Render("Data entry warnings"))
	b.WriteString("\n")
	for _, w := range ws {
		b.WriteString(warnStyle.Render("  ! "))
		b.WriteString(valueStyle.Render(w.Message))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReport renders the full one-shot forecast output.
func RenderReport(r model.Report) string {
	var b strings.Builder
	headers := []string{"Month", string(model.Revenue), string(model.Profit)}

	b.WriteString("\n")
	b.WriteString(RenderTitle("SALES & PROFIT FORECAST  Jul-Dec"))
	b.WriteString("\n\n")

	if w := RenderWarnings(r.Warnings); w != "" {
		b.WriteString(w)
		b.WriteString("\n")
	}

	b.WriteString(RenderTable(Table{
		Title:   "Historical Data",
		Headers: headers,
		Rows:    HistoricalRows(r),
	}))
	b.WriteString("\n")
	b.WriteString(RenderTable(Table{
		Title:   "Predicted Data (Next 6 Months)",
		Headers: headers,
		Rows:    PredictedRows(r),
	}))
	b.WriteString("\n")

	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Trend"))
	b.WriteString(mutedStyle.Render("  Jan-Dec, ┊ marks prediction start"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-8s %s  %s\n",
		string(model.Revenue), revenueStyle.Render(RenderTrend(r.Revenue.Combined)), mutedStyle.Render(FormatGrowth(r.Revenue.Forecast.Growth))))
	b.WriteString(fmt.Sprintf("  %-8s %s  %s\n",
		string(model.Profit), profitStyle.Render(RenderTrend(r.Profit.Combined)), mutedStyle.Render(FormatGrowth(r.Profit.Forecast.Growth))))
	b.WriteString("\n")

	b.WriteString(RenderShares("Future Revenue Share", r.Revenue))
	b.WriteString("\n")
	b.WriteString(RenderShares("Future Profit Share", r.Profit))

	return b.String()
}
