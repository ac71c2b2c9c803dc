package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/salescast/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{80, 3}, {81, 2}, {7, 7}, {100, 6}} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("Line %d has no ANSI codes, padding is unstyled", i)
		}
	}
}

func TestMetricCardShowsFields(t *testing.T) {
	theme.SetActive("flexoki-dark")

	card := ansi.Strip(MetricCard(Metric{Label: "Revenue", Value: "1,500,000", Delta: "+2,000/mo"}, 24))
	for _, want := range []string{"Revenue", "1,500,000", "+2,000/mo"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}

func TestTabAtXMatchesKeys(t *testing.T) {
	if got := TabAtX(0); got != -1 {
		t.Errorf("TabAtX(0) = %d, want -1", got)
	}
	if got := TabAtX(1); got != 0 {
		t.Errorf("TabAtX(1) = %d, want 0", got)
	}
	// " 1 Tables  2 Charts": Charts starts at column 11.
	if got := TabAtX(11); got != 1 {
		t.Errorf("TabAtX(11) = %d, want 1", got)
	}
	if got := TabIdxByKey('3'); got != 2 {
		t.Errorf("TabIdxByKey('3') = %d, want 2", got)
	}
	if got := TabIdxByKey('x'); got != -1 {
		t.Errorf("TabIdxByKey('x') = %d, want -1", got)
	}
}
