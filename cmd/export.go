package cmd

import (
	"github.com/theirongolddev/salescast/internal/export"

	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the forecast to an Excel workbook with native charts",
	Example: "  salescast export --out forecast.xlsx\n" +
		"  salescast export --input sales.csv --out forecast.xlsx",
	RunE: runExport,
}

func init() {
	addInputFlags(exportCmd)
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Workbook path (.xlsx)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := buildReport(log, cfg)
	if err != nil {
		return err
	}

	if err := export.WriteFile(flagOut, report); err != nil {
		return err
	}
	log.Info().Str("path", flagOut).Msg("workbook written")
	return nil
}
