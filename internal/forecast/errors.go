package forecast

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/salescast/internal/model"
)

// ErrInvalidInput is the sentinel for structural input violations.
// Match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrDegenerateDistribution is returned when a projected series sums to zero
// and cannot be drawn as shares of a whole.
var ErrDegenerateDistribution = errors.New("degenerate distribution")

// InvalidInputError describes why a series was rejected.
type InvalidInputError struct {
	// Metric is the series that failed, if known.
	Metric model.Metric
	// Month is the offending month label; empty for length errors.
	Month string
	// Value is the raw offending value, if any.
	Value string
	// Reason explains the violation.
	Reason string
}

func (e InvalidInputError) Error() string {
	switch {
	case e.Month != "" && e.Value != "":
		return fmt.Sprintf("invalid %s for %s (%q): %s", e.Metric, e.Month, e.Value, e.Reason)
	case e.Month != "":
		return fmt.Sprintf("invalid %s for %s: %s", e.Metric, e.Month, e.Reason)
	default:
		return fmt.Sprintf("invalid %s series: %s", e.Metric, e.Reason)
	}
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e InvalidInputError) Unwrap() error { return ErrInvalidInput }
