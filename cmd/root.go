// Package cmd implements the salescast CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	exitFailure      = 1
	exitInvalidInput = 2
	exitConfig       = 4
)

var (
	flagVerbose bool
	flagQuiet   bool
	flagLogJSON bool
	flagConfig  string
	flagTheme   string
)

var rootCmd = &cobra.Command{
	Use:   "salescast",
	Short: "Six-month sales & profit predictor",
	Long: "Enter six months (Jan-Jun) of revenue and profit and salescast projects the\n" +
		"next six months (Jul-Dec) along the linear trend, with tables and charts.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  salescast: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log per-metric forecast details")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Override the configured theme")
	addInputFlags(rootCmd)
	addFormatFlag(rootCmd)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var cfgErr config.ConfigError
	switch {
	case errors.Is(err, forecast.ErrInvalidInput):
		return exitInvalidInput
	case errors.As(err, &cfgErr):
		return exitConfig
	default:
		return exitFailure
	}
}

func newLogger() zerolog.Logger {
	return logging.New(os.Stderr, logging.Options{
		Verbose: flagVerbose,
		Quiet:   flagQuiet,
		JSON:    flagLogJSON,
	})
}

// loadConfig loads the effective configuration, honoring --config and --theme.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadAt(configPath())
	if err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	return cfg, nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}
