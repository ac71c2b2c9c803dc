package cmd

import (
	"errors"
	"strings"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/logging"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"
	"github.com/theirongolddev/salescast/internal/source"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagRevenue string
	flagProfit  string
	flagInput   string
)

func addInputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagRevenue, "revenue", "r", "", "Jan-Jun revenue as a comma-separated list")
	c.Flags().StringVarP(&flagProfit, "profit", "p", "", "Jan-Jun profit as a comma-separated list")
	c.Flags().StringVarP(&flagInput, "input", "i", "", "Read Month,Revenue,Profit rows from a .csv or .xlsx file")
}

// parseList parses a comma-separated list of six values.
func parseList(metric model.Metric, s string) (model.MonthlySeries, error) {
	return forecast.ParseSeries(metric, strings.Split(s, ","))
}

// resolveInput picks the input values: a file, the list flags, or the
// configured samples for whichever list flag is missing.
func resolveInput(log zerolog.Logger, cfg config.Config) (revenue, profit []float64, err error) {
	if flagInput != "" {
		if flagRevenue != "" || flagProfit != "" {
			return nil, nil, errors.New("use either --input or --revenue/--profit")
		}
		in, err := source.ReadFile(flagInput)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("path", in.Path).Msg("read input file")
		return in.Revenue.Values, in.Profit.Values, nil
	}

	revenue, profit = cfg.Defaults.Revenue, cfg.Defaults.Profit
	if flagRevenue != "" {
		s, err := parseList(model.Revenue, flagRevenue)
		if err != nil {
			return nil, nil, err
		}
		revenue = s.Values
	}
	if flagProfit != "" {
		s, err := parseList(model.Profit, flagProfit)
		if err != nil {
			return nil, nil, err
		}
		profit = s.Values
	}
	if flagRevenue == "" || flagProfit == "" {
		log.Info().
			Bool("sample_revenue", flagRevenue == "").
			Bool("sample_profit", flagProfit == "").
			Msg("using configured sample values")
	}
	return revenue, profit, nil
}

// buildReport resolves the input and runs the forecast.
func buildReport(log zerolog.Logger, cfg config.Config) (model.Report, error) {
	revenue, profit, err := resolveInput(log, cfg)
	if err != nil {
		return model.Report{}, err
	}
	report, err := pipeline.RunValues(revenue, profit, cfg.Guidance.Rules())
	if err != nil {
		return model.Report{}, err
	}
	logging.ForecastEvent(log, report)
	return report, nil
}
