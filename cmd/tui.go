package cmd

import (
	"fmt"

	"github.com/theirongolddev/salescast/internal/tui"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Enter data in a form and explore the forecast dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Logging would corrupt the alt screen.
	p := tea.NewProgram(tui.NewApp(cfg, zerolog.Nop()), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if app, ok := final.(tui.App); ok {
		if r, ok := app.Report(); ok {
			log.Debug().
				Float64("revenue_total", r.Revenue.Total).
				Float64("profit_total", r.Profit.Total).
				Msg("dashboard closed")
		}
	}
	return nil
}
