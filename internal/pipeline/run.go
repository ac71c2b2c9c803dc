// Package pipeline turns two input series into a complete forecast report.
package pipeline

import (
	"fmt"

	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
)

// Run projects revenue and profit with the same engine and assembles the
// report handed to renderers. It is pure; all state flows through arguments.
func Run(revenue, profit model.MonthlySeries, g forecast.Guidance) (model.Report, error) {
	revenue.Metric = model.Revenue
	profit.Metric = model.Profit

	revReport, err := buildMetric(revenue)
	if err != nil {
		return model.Report{}, err
	}
	profReport, err := buildMetric(profit)
	if err != nil {
		return model.Report{}, err
	}

	var warnings []model.Warning
	warnings = append(warnings, forecast.Inspect(revenue, g)...)
	warnings = append(warnings, forecast.Inspect(profit, g)...)

	return model.Report{
		Revenue:  revReport,
		Profit:   profReport,
		Warnings: warnings,
	}, nil
}

// RunValues is Run for plain value slices.
func RunValues(revenue, profit []float64, g forecast.Guidance) (model.Report, error) {
	return Run(model.NewSeries(model.Revenue, revenue), model.NewSeries(model.Profit, profit), g)
}

func buildMetric(s model.MonthlySeries) (model.MetricReport, error) {
	fc, err := forecast.Project(s)
	if err != nil {
		return model.MetricReport{}, fmt.Errorf("forecasting %s: %w", s.Metric, err)
	}
	hist := model.NewSeries(s.Metric, s.Values)
	return model.MetricReport{
		History:  hist,
		Forecast: fc,
		Combined: model.Combine(hist, fc),
		Total:    fc.Total(),
	}, nil
}

// Share is one slice of a proportional chart.
type Share struct {
	Label  string
	Value  float64
	Weight float64 // value used for sizing
	Pct    float64 // 0-1
}

// Shares splits a projected series into proportional slices. It fails with
// forecast.ErrDegenerateDistribution when there is nothing to split. Each
// slice is sized by max(1, value) so no slice vanishes.
func Shares(r model.MetricReport) ([]Share, error) {
	if err := forecast.CheckProportional(r); err != nil {
		return nil, err
	}

	shares := make([]Share, model.Horizon)
	var total float64
	for i, v := range r.Forecast.Values {
		w := max(1, v)
		shares[i] = Share{Label: model.FutureMonths[i], Value: v, Weight: w}
		total += w
	}
	for i := range shares {
		shares[i].Pct = shares[i].Weight / total
	}
	return shares, nil
}
