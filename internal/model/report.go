package model

// MetricReport bundles everything rendered for a single metric.
type MetricReport struct {
	History  MonthlySeries
	Forecast ForecastResult
	Combined CombinedSeries
	Total    float64 // sum of Forecast.Values
}

// Degenerate reports whether the projected series has nothing to share out.
func (r MetricReport) Degenerate() bool {
	return r.Total <= 0
}

// Report is the output of one forecast run.
type Report struct {
	Revenue  MetricReport
	Profit   MetricReport
	Warnings []Warning
}

// Metrics returns the per-metric reports in display order.
func (r Report) Metrics() []MetricReport {
	return []MetricReport{r.Revenue, r.Profit}
}
