// Package model defines domain types for salescast series and forecasts.
package model

// Horizon is the number of months on each side of the prediction start.
const Horizon = 6

// Metric names a forecast series.
type Metric string

const (
	Revenue Metric = "Revenue"
	Profit  Metric = "Profit"
)

// HistoryMonths labels the observed months, in order.
var HistoryMonths = [Horizon]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// FutureMonths labels the projected months, in order.
var FutureMonths = [Horizon]string{"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlySeries holds the observed values for one metric, aligned with HistoryMonths.
type MonthlySeries struct {
	Metric Metric
	Values []float64
}

// NewSeries copies values into a fresh series for metric.
func NewSeries(metric Metric, values []float64) MonthlySeries {
	v := make([]float64, len(values))
	copy(v, values)
	return MonthlySeries{Metric: metric, Values: v}
}

// ForecastResult holds the projected values for one metric, aligned with FutureMonths.
type ForecastResult struct {
	Metric Metric
	Growth float64 // per-month linear increment
	Values [Horizon]float64
}

// Total sums the projected values.
func (f ForecastResult) Total() float64 {
	var sum float64
	for _, v := range f.Values {
		sum += v
	}
	return sum
}

// CombinedSeries is a history followed by its forecast, used for charting.
type CombinedSeries struct {
	Metric Metric
	Labels []string
	Values []float64
	Split  int // index of the first projected point
}

// Combine concatenates a series and its forecast.
func Combine(hist MonthlySeries, fc ForecastResult) CombinedSeries {
	labels := make([]string, 0, len(hist.Values)+Horizon)
	values := make([]float64, 0, len(hist.Values)+Horizon)
	for i, v := range hist.Values {
		if i < Horizon {
			labels = append(labels, HistoryMonths[i])
		}
		values = append(values, v)
	}
	labels = append(labels, FutureMonths[:]...)
	values = append(values, fc.Values[:]...)
	return CombinedSeries{
		Metric: hist.Metric,
		Labels: labels,
		Values: values,
		Split:  len(hist.Values),
	}
}
