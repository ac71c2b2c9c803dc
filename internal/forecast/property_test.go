package forecast

import (
	"testing"

	"github.com/theirongolddev/salescast/internal/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// wholeSeries generates six whole-number observations, negative ones included.
// Whole numbers keep the monotonic laws exact under rounding.
func wholeSeries() gopter.Gen {
	return gen.SliceOfN(model.Horizon, gen.Int64Range(-1_000_000_000, 1_000_000_000))
}

func toSeries(xs []int64) model.MonthlySeries {
	values := make([]float64, len(xs))
	for i, x := range xs {
		values[i] = float64(x)
	}
	return model.MonthlySeries{Metric: model.Revenue, Values: values}
}

func TestProject_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("valid series never fail", prop.ForAll(
		func(xs []int64) bool {
			_, err := Project(toSeries(xs))
			return err == nil
		},
		wholeSeries(),
	))

	properties.Property("idempotent", prop.ForAll(
		func(xs []int64) bool {
			a, _ := Project(toSeries(xs))
			b, _ := Project(toSeries(xs))
			return a == b
		},
		wholeSeries(),
	))

	properties.Property("never negative", prop.ForAll(
		func(xs []int64) bool {
			res, _ := Project(toSeries(xs))
			for _, v := range res.Values {
				if v < 0 {
					return false
				}
			}
			return true
		},
		wholeSeries(),
	))

	properties.Property("growth continues the endpoint trend", prop.ForAll(
		func(xs []int64) bool {
			s := toSeries(xs)
			res, _ := Project(s)
			first, last := s.Values[0], s.Values[5]
			for _, v := range res.Values {
				switch {
				case last > first && v < last:
					return false
				case last < first && v > max(last, 0):
					return false
				}
			}
			return true
		},
		wholeSeries(),
	))

	properties.Property("projections are ordered by the growth sign", prop.ForAll(
		func(xs []int64) bool {
			res, _ := Project(toSeries(xs))
			for i := 1; i < len(res.Values); i++ {
				prev, cur := res.Values[i-1], res.Values[i]
				if res.Growth > 0 && cur < prev {
					return false
				}
				if res.Growth < 0 && cur > prev {
					return false
				}
			}
			return true
		},
		wholeSeries(),
	))

	properties.Property("flat series projects its own value", prop.ForAll(
		func(v int64) bool {
			res, _ := Project(toSeries([]int64{v, v, v, v, v, v}))
			want := max(float64(v), 0)
			for _, got := range res.Values {
				if got != want {
					return false
				}
			}
			return true
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
	))

	properties.Property("wrong length is rejected", prop.ForAll(
		func(xs []int64) bool {
			if len(xs) == model.Horizon {
				return true
			}
			_, err := Project(toSeries(xs))
			return err != nil
		},
		gen.SliceOf(gen.Int64Range(0, 1000)),
	))

	properties.TestingRun(t)
}
