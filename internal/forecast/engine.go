// Package forecast implements the linear-growth projection engine.
//
// The engine is pure: it takes a six-month series and returns the next six
// months, with no I/O and no shared state.
package forecast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/salescast/internal/model"
)

// MaxMagnitude bounds accepted input values. Beyond it float64 no longer
// holds whole currency units exactly.
const MaxMagnitude = 1e15

// steps is the number of month-to-month intervals in the observed window.
const steps = model.Horizon - 1

// Project extrapolates the next six months of series.
//
// The growth rate is the endpoint slope (last - first) / 5; interior points
// do not affect it. Projections are rounded half to even and floored at 0.
func Project(series model.MonthlySeries) (model.ForecastResult, error) {
	if err := Validate(series); err != nil {
		return model.ForecastResult{}, err
	}

	v := series.Values
	first, last := v[0], v[len(v)-1]
	growth := (last - first) / steps

	res := model.ForecastResult{Metric: series.Metric, Growth: growth}
	for k := 1; k <= model.Horizon; k++ {
		p := math.RoundToEven(last + float64(k)*growth)
		// math.Max also turns -0 into +0.
		res.Values[k-1] = math.Max(0, p)
	}
	return res, nil
}

// Validate checks that series can be projected.
func Validate(series model.MonthlySeries) error {
	if n := len(series.Values); n != model.Horizon {
		return InvalidInputError{
			Metric: series.Metric,
			Reason: fmt.Sprintf("need exactly %d monthly values, got %d", model.Horizon, n),
		}
	}
	for i, v := range series.Values {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return InvalidInputError{
				Metric: series.Metric,
				Month:  model.HistoryMonths[i],
				Value:  strconv.FormatFloat(v, 'g', -1, 64),
				Reason: "not a number",
			}
		case math.Abs(v) > MaxMagnitude:
			return InvalidInputError{
				Metric: series.Metric,
				Month:  model.HistoryMonths[i],
				Value:  strconv.FormatFloat(v, 'g', -1, 64),
				Reason: "exceeds supported magnitude",
			}
		}
	}
	return nil
}

// ParseSeries parses one text value per month into a series.
// Thousand separators and currency symbols are rejected.
func ParseSeries(metric model.Metric, raw []string) (model.MonthlySeries, error) {
	if len(raw) != model.Horizon {
		return model.MonthlySeries{}, InvalidInputError{
			Metric: metric,
			Reason: fmt.Sprintf("need exactly %d monthly values, got %d", model.Horizon, len(raw)),
		}
	}

	values := make([]float64, len(raw))
	for i, s := range raw {
		v, err := ParseValue(s)
		if err != nil {
			return model.MonthlySeries{}, InvalidInputError{
				Metric: metric,
				Month:  model.HistoryMonths[i],
				Value:  s,
				Reason: err.Error(),
			}
		}
		values[i] = v
	}

	series := model.MonthlySeries{Metric: metric, Values: values}
	if err := Validate(series); err != nil {
		return model.MonthlySeries{}, err
	}
	return series, nil
}

// ParseValue parses a single numeric field.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("use numeric values only")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a number")
	}
	return v, nil
}

// CheckProportional reports whether r can be drawn as a share chart.
func CheckProportional(r model.MetricReport) error {
	if r.Degenerate() {
		return fmt.Errorf("%s forecast sums to zero: %w", r.Forecast.Metric, ErrDegenerateDistribution)
	}
	return nil
}
