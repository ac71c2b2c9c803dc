package forecast

import (
	"fmt"
	"math"

	"github.com/theirongolddev/salescast/internal/model"
)

// Guidance holds the data entry guidelines. Zero fields disable a check.
type Guidance struct {
	MinValue     float64
	MaxValue     float64
	MaxJumpRatio float64
}

// Inspect flags values that break the guidelines. It never rejects input;
// extreme values still forecast, but the caller should surface the warnings.
func Inspect(series model.MonthlySeries, g Guidance) []model.Warning {
	var out []model.Warning
	for i, v := range series.Values {
		if i >= model.Horizon {
			break
		}
		month := model.HistoryMonths[i]

		if v < 0 {
			out = append(out, model.Warning{
				Metric:  series.Metric,
				Month:   month,
				Kind:    model.WarnNegative,
				Message: fmt.Sprintf("%s %s is negative (%.0f)", month, series.Metric, v),
			})
		} else if (g.MinValue > 0 && v < g.MinValue) || (g.MaxValue > 0 && v > g.MaxValue) {
			out = append(out, model.Warning{
				Metric: series.Metric,
				Month:  month,
				Kind:   model.WarnOutOfRange,
				Message: fmt.Sprintf("%s %s %.0f is outside the expected range %.0f-%.0f",
					month, series.Metric, v, g.MinValue, g.MaxValue),
			})
		}

		if i == 0 || g.MaxJumpRatio <= 0 {
			continue
		}
		prev := series.Values[i-1]
		if ratio := jumpRatio(prev, v); ratio > g.MaxJumpRatio {
			out = append(out, model.Warning{
				Metric: series.Metric,
				Month:  month,
				Kind:   model.WarnScaleJump,
				Message: fmt.Sprintf("%s %s jumps %.0fx from %s; keep the scale consistent",
					month, series.Metric, ratio, model.HistoryMonths[i-1]),
			})
		}
	}
	return out
}

// jumpRatio returns the larger-over-smaller magnitude ratio of a and b.
// Pairs involving zero are not comparable and return 0.
func jumpRatio(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	if a == 0 || b == 0 {
		return 0
	}
	if a < b {
		a, b = b, a
	}
	return a / b
}
