package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(c *cobra.Command, _ []string) error {
	// A broken config is replaced rather than blocking setup.
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(c.ErrOrStderr(), "  Ignoring unreadable config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	cfg, err = setupWizard(os.Stdin, c.OutOrStdout(), cfg)
	if err != nil {
		return err
	}

	path := configPath()
	if err := config.SaveFile(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", path)
	fmt.Fprintln(out, "  Run `salescast setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}

// setupWizard asks for the theme and the data entry guidelines. Blank
// answers keep the current value.
func setupWizard(in io.Reader, out io.Writer, cfg config.Config) (config.Config, error) {
	reader := bufio.NewReader(in)
	ask := func() string {
		fmt.Fprint(out, "     > ")
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to salescast!")
	fmt.Fprintln(out)

	// 1. Theme
	fmt.Fprintln(out, "  1. Color theme")
	for i, t := range theme.All {
		mark := ""
		if t.Name == cfg.Appearance.Theme {
			mark = " [current]"
		}
		fmt.Fprintf(out, "     (%d) %s%s\n", i+1, t.Name, mark)
	}
	if choice := ask(); choice != "" {
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(theme.All) {
			return cfg, fmt.Errorf("theme choice %q: pick 1-%d", choice, len(theme.All))
		}
		cfg.Appearance.Theme = theme.All[n-1].Name
	}
	fmt.Fprintln(out)

	// 2. Guidance
	fmt.Fprintln(out, "  2. Data entry guidelines")
	fmt.Fprintln(out, "     Values outside this range are flagged, not rejected.")

	fields := []struct {
		label string
		dst   *float64
	}{
		{"Typical minimum monthly value", &cfg.Guidance.MinValue},
		{"Typical maximum monthly value", &cfg.Guidance.MaxValue},
		{"Largest plausible month-to-month ratio", &cfg.Guidance.MaxJumpRatio},
	}
	for _, f := range fields {
		fmt.Fprintf(out, "     %s [%s]\n", f.label, strconv.FormatFloat(*f.dst, 'f', -1, 64))
		answer := ask()
		if answer == "" {
			continue
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil || v < 0 {
			return cfg, fmt.Errorf("%s: %q is not a non-negative number", strings.ToLower(f.label), answer)
		}
		*f.dst = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
