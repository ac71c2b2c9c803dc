// Package logging configures the zerolog logger used by salescast commands.
package logging

import (
	"io"
	"time"

	"github.com/theirongolddev/salescast/internal/model"

	"github.com/rs/zerolog"
)

// Options selects the logger verbosity.
type Options struct {
	Verbose bool // debug level
	Quiet   bool // errors only
	JSON    bool // structured output instead of the console writer
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	level := zerolog.InfoLevel
	switch {
	case opts.Quiet:
		level = zerolog.ErrorLevel
	case opts.Verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ForecastEvent logs the outcome of one forecast run at debug level, and its
// warnings at warn level.
func ForecastEvent(log zerolog.Logger, r model.Report) {
	for _, m := range r.Metrics() {
		log.Debug().
			Str("metric", string(m.Forecast.Metric)).
			Float64("growth", m.Forecast.Growth).
			Float64("total", m.Total).
			Bool("degenerate", m.Degenerate()).
			Msg("forecast computed")
	}
	for _, w := range r.Warnings {
		log.Warn().
			Str("metric", string(w.Metric)).
			Str("month", w.Month).
			Str("kind", string(w.Kind)).
			Msg(w.Message)
	}
}
