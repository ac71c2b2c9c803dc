// Package tui provides the interactive input form and forecast dashboard.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/logging"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"
	"github.com/theirongolddev/salescast/internal/tui/components"
	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// App is the root Bubble Tea model. It starts on the input form and moves
// to the dashboard once a prediction has run.
type App struct {
	cfg  config.Config
	log  zerolog.Logger
	keys KeyMap
	help help.Model

	// Input
	vals *formValues
	form *huh.Form // non-nil while editing
	err  error     // last rejected input, shown above the form

	// Results
	report *model.Report

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the app with the form prefilled from cfg's sample values.
func NewApp(cfg config.Config, log zerolog.Logger) App {
	vals := valuesFrom(cfg.Defaults)
	return App{
		cfg:  cfg,
		log:  log,
		keys: DefaultKeyMap(),
		help: help.New(),
		vals: vals,
		form: newInputForm(vals, 0),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// Report returns the last computed report, if any.
func (a App) Report() (model.Report, bool) {
	if a.report == nil {
		return model.Report{}, false
	}
	return *a.report, true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, formWidth))
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := components.TabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil
	}

	// Forward everything else (cursor blinks, etc.) to the form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		a.showHelp = false
		return a, nil
	}

	n := len(components.Tabs)
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	case key.Matches(msg, a.keys.Next):
		a.activeTab = (a.activeTab + 1) % n
	case key.Matches(msg, a.keys.Prev):
		a.activeTab = (a.activeTab - 1 + n) % n
	case key.Matches(msg, a.keys.Tables, a.keys.Charts, a.keys.Shares):
		if len(msg.Runes) == 1 {
			if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
				a.activeTab = tab
			}
		}
	case key.Matches(msg, a.keys.Edit):
		a.form = newInputForm(a.vals, a.width)
		return a, a.form.Init()
	case key.Matches(msg, a.keys.Reset):
		a.vals = valuesFrom(a.cfg.Defaults)
		return a.submit()
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.form = nil
		if !a.vals.Run {
			return a.cancelEdit()
		}
		return a.submit()
	case huh.StateAborted:
		a.form = nil
		return a.cancelEdit()
	}
	return a, cmd
}

// cancelEdit leaves the form, quitting when there is nothing to show.
func (a App) cancelEdit() (tea.Model, tea.Cmd) {
	if a.report == nil {
		return a, tea.Quit
	}
	return a, nil
}

// submit runs the prediction on the current inputs. Rejected input sends
// the user back to the form with the error shown.
func (a App) submit() (tea.Model, tea.Cmd) {
	report, err := a.run()
	if err != nil {
		a.log.Warn().Err(err).Msg("input rejected")
		a.err = err
		a.form = newInputForm(a.vals, a.width)
		return a, a.form.Init()
	}
	a.err = nil
	a.form = nil
	a.report = &report
	logging.ForecastEvent(a.log, report)
	return a, nil
}

func (a App) run() (model.Report, error) {
	rev, prof, err := a.vals.series()
	if err != nil {
		return model.Report{}, err
	}
	return pipeline.Run(rev, prof, a.cfg.Guidance.Rules())
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewForm() string {
	t := theme.Active

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(logoStyle.Render("◈ salescast"))
	b.WriteString(subtitleStyle.Render(" · Sales & Profit Predictor"))
	b.WriteString("\n\n")
	if banner := a.errorBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}
	b.WriteString(a.form.View())
	return b.String()
}

func (a App) errorBanner() string {
	if a.err == nil {
		return ""
	}
	t := theme.Active
	msg := a.err.Error()
	if errors.Is(a.err, forecast.ErrInvalidInput) {
		msg = "Invalid input: " + msg
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Orange).
		Foreground(t.Orange).
		Padding(0, 1).
		Width(min(max(a.width, 20), formWidth) - 2).
		Render(msg)
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  salescast needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	subtitle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Width(w).
		Render(" Jan-Jun observed · Jul-Dec projected")
	header := components.RenderTabBar(a.activeTab, w) + "\n" + subtitle

	status := ""
	if a.report != nil && len(a.report.Warnings) > 0 {
		status = fmt.Sprintf("%d input warning(s)", len(a.report.Warnings))
	}
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(a.keys.ShortHelp()), status)

	contentH := max(minContentHeight, h-lipgloss.Height(header)-lipgloss.Height(statusBar))

	var content string
	if a.report != nil {
		switch a.activeTab {
		case 0:
			content = renderTablesTab(*a.report, cw)
		case 1:
			content = renderChartsTab(*a.report, cw)
		case 2:
			content = renderSharesTab(*a.report, cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
