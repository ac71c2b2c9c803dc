package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(c *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	path := configPath()
	fmt.Fprintf(out, "  Config file: %s\n", path)
	if _, statErr := os.Stat(path); statErr == nil {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Defaults]")
	fmt.Fprintf(out, "    Revenue: %s\n", joinValues(cfg.Defaults.Revenue))
	fmt.Fprintf(out, "    Profit:  %s\n", joinValues(cfg.Defaults.Profit))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Guidance]")
	fmt.Fprintf(out, "    Value range:    %.0f - %.0f\n", cfg.Guidance.MinValue, cfg.Guidance.MaxValue)
	fmt.Fprintf(out, "    Max jump ratio: %g\n", cfg.Guidance.MaxJumpRatio)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `salescast setup` to reconfigure.")
	return nil
}

func joinValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
