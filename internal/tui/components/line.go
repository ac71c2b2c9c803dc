package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/salescast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LineSeries is one plotted line.
type LineSeries struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

type plotCell struct {
	ch    rune
	color lipgloss.Color
}

// LineChart plots series against shared labels on one y-axis. When split is
// inside the label range a dashed divider is drawn before labels[split].
func LineChart(series []LineSeries, labels []string, split, width, height int) string {
	n := len(labels)
	if n == 0 || len(series) == 0 {
		return ""
	}
	if height < 4 {
		height = 4
	}
	t := theme.Active

	lo, hi := 0.0, 0.0
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	step := chartTickStep(hi - lo)
	floor := math.Floor(lo/step) * step
	ceiling := math.Ceil(hi/step) * step
	if ceiling <= floor {
		ceiling = floor + step
	}

	yLabels := map[int]string{
		height - 1: formatChartLabel(ceiling),
		(height - 1) / 2: formatChartLabel(floor + (ceiling-floor)/2),
		0: formatChartLabel(floor),
	}
	yLabelW := 4
	for _, l := range yLabels {
		yLabelW = max(yLabelW, len(l)+1)
	}

	colW := (width - yLabelW - 1) / n
	colW = min(8, max(2, colW))
	axisLen := n * colW
	xAt := func(i int) int { return i*colW + colW/2 }
	rowAt := func(v float64) int {
		r := int(math.Round((v - floor) / (ceiling - floor) * float64(height-1)))
		return min(height-1, max(0, r))
	}

	grid := make([][]plotCell, height)
	for r := range grid {
		grid[r] = make([]plotCell, axisLen)
		for c := range grid[r] {
			grid[r][c] = plotCell{ch: ' '}
		}
	}

	if split > 0 && split < n {
		x := split * colW
		for r := range grid {
			grid[r][x] = plotCell{ch: '┊', color: t.Divider}
		}
	}

	for _, s := range series {
		pts := min(len(s.Values), n)
		for i := 0; i+1 < pts; i++ {
			x0, x1 := xAt(i), xAt(i+1)
			for x := x0 + 1; x < x1; x++ {
				frac := float64(x-x0) / float64(x1-x0)
				v := s.Values[i] + frac*(s.Values[i+1]-s.Values[i])
				r := rowAt(v)
				if grid[r][x].ch == ' ' {
					grid[r][x] = plotCell{ch: '·', color: s.Color}
				}
			}
		}
	}
	for _, s := range series {
		for i := 0; i < min(len(s.Values), n); i++ {
			grid[rowAt(s.Values[i])][xAt(i)] = plotCell{ch: '●', color: s.Color}
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r := height - 1; r >= 0; r-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, yLabels[r])))
		b.WriteString(axisStyle.Render("│"))
		for _, c := range grid[r] {
			if c.ch == ' ' {
				b.WriteString(blank.Render(" "))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(c.color).Background(t.Surface).Render(string(c.ch)))
		}
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// X-axis labels, skipping any that would collide with the previous one.
	buf := []rune(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for i, l := range labels {
		lbl := []rune(l)
		pos := xAt(i) - len(lbl)/2
		if pos < 0 {
			pos = 0
		}
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	b.WriteString("\n")

	legend := make([]string, 0, len(series)+1)
	for _, s := range series {
		legend = append(legend,
			lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("●")+
				axisStyle.Render(" "+s.Name))
	}
	if split > 0 && split < n {
		legend = append(legend,
			lipgloss.NewStyle().Foreground(t.Divider).Background(t.Surface).Render("┊")+
				axisStyle.Render(" prediction start"))
	}
	b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(strings.Join(legend, axisStyle.Render("   ")))

	return b.String()
}
