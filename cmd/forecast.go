package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagFormat string

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project Jul-Dec revenue and profit and print the report",
	Example: "  salescast forecast --revenue 120000,115000,118000,122000,125000,130000 \\\n" +
		"    --profit 40000,38000,39000,41000,42000,45000\n" +
		"  salescast forecast --input sales.xlsx --format json",
	RunE: runForecast,
}

func init() {
	addInputFlags(forecastCmd)
	addFormatFlag(forecastCmd)
	rootCmd.AddCommand(forecastCmd)
}

func addFormatFlag(c *cobra.Command) {
	c.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table or json")
}

func runForecast(c *cobra.Command, _ []string) error {
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := buildReport(log, cfg)
	if err != nil {
		return err
	}

	return writeReport(c.OutOrStdout(), report, flagFormat)
}

func writeReport(w io.Writer, r model.Report, format string) error {
	switch format {
	case "table":
		_, err := fmt.Fprintln(w, cli.RenderReport(r))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newJSONReport(r))
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}

type jsonPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type jsonShare struct {
	Month string  `json:"month"`
	Pct   float64 `json:"pct"`
}

type jsonMetric struct {
	History    []jsonPoint `json:"history"`
	Forecast   []jsonPoint `json:"forecast"`
	Growth     float64     `json:"growth_per_month"`
	Total      float64     `json:"forecast_total"`
	Shares     []jsonShare `json:"shares,omitempty"`
	Degenerate bool        `json:"degenerate,omitempty"`
}

type jsonReport struct {
	Revenue  jsonMetric      `json:"revenue"`
	Profit   jsonMetric      `json:"profit"`
	Warnings []model.Warning `json:"warnings,omitempty"`
}

func newJSONReport(r model.Report) jsonReport {
	return jsonReport{
		Revenue:  newJSONMetric(r.Revenue),
		Profit:   newJSONMetric(r.Profit),
		Warnings: r.Warnings,
	}
}

func newJSONMetric(m model.MetricReport) jsonMetric {
	out := jsonMetric{
		Growth: m.Forecast.Growth,
		Total:  m.Total,
	}
	for i, v := range m.History.Values {
		out.History = append(out.History, jsonPoint{Month: model.HistoryMonths[i], Value: v})
	}
	for i, v := range m.Forecast.Values {
		out.Forecast = append(out.Forecast, jsonPoint{Month: model.FutureMonths[i], Value: v})
	}

	shares, err := pipeline.Shares(m)
	if errors.Is(err, forecast.ErrDegenerateDistribution) {
		out.Degenerate = true
		return out
	}
	for _, s := range shares {
		out.Shares = append(out.Shares, jsonShare{Month: s.Label, Pct: s.Pct})
	}
	return out
}
