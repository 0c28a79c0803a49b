package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/tally/internal/status"
	"github.com/theirongolddev/tally/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{80, 3}, {81, 4}, {7, 7}, {100, 1}} {
		sum := 0
		for _, w := range LayoutRow(tc.total, tc.n) {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)
	shortLines := lipgloss.Height(shortCard)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != lipgloss.Height(tallCard) {
		t.Fatalf("joined height = %d, want %d", len(lines), lipgloss.Height(tallCard))
	}

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d has no ANSI styling in the padded area", i)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Total", Value: "R$ 10,00"},
		{Label: "Entries", Value: "3"},
	}, 60)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestColorBarChartShape(t *testing.T) {
	values := []float64{10, 0, 5}
	labels := []string{"Food", "Health", "Home"}
	colors := []lipgloss.Color{"#ff0000", "#00ff00", "#0000ff"}

	out := ColorBarChart(values, labels, colors, 40, 8)
	lines := strings.Split(out, "\n")
	if len(lines) < 4 {
		t.Fatalf("chart too short:\n%s", out)
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "F") || !strings.Contains(last, "H") {
		t.Fatalf("label row = %q", last)
	}
	if !strings.Contains(out, "█") {
		t.Fatal("chart has no filled bar")
	}
}

func TestColorBarChartDegenerate(t *testing.T) {
	if ColorBarChart(nil, nil, nil, 40, 8) != "" {
		t.Fatal("empty values should render nothing")
	}
	if out := ColorBarChart([]float64{1, 2}, nil, nil, 10, 2); out == "" {
		t.Fatal("small area should fall back to a sparkline")
	}
}

func TestClipLabel(t *testing.T) {
	if got := clipLabel("Country House", 5); got != "Coun…" {
		t.Fatalf("clipLabel = %q", got)
	}
	if got := clipLabel("Food", 5); got != "Food" {
		t.Fatalf("clipLabel = %q", got)
	}
}

func TestLegendLines(t *testing.T) {
	out := Legend([]string{"Food", "Credit Card"}, []string{"R$ 1,00", "R$ 2,00"}, []lipgloss.Color{"#ff0000"})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Credit Card") || !strings.Contains(lines[1], "R$ 2,00") {
		t.Fatalf("Legend = %q", out)
	}
}

func TestShareBarClamps(t *testing.T) {
	out := ShareBar("Food", 1.7, "#ff0000", 8, 10)
	if !strings.Contains(out, "100.0%") {
		t.Fatalf("ShareBar = %q", out)
	}
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(60, "[?]help", status.Message{Text: "Expense added", Kind: status.Success}, true)
	if w := lipgloss.Width(bar); w != 60 {
		t.Fatalf("width = %d, want 60", w)
	}
	if !strings.Contains(bar, "Expense added") {
		t.Fatalf("status bar missing message: %q", bar)
	}

	narrow := RenderStatusBar(20, strings.Repeat("x", 30), status.Message{Text: "saved"}, true)
	if !strings.Contains(narrow, "saved") {
		t.Fatalf("message dropped on narrow bar: %q", narrow)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if TabIdxByKey('2') != 1 {
		t.Fatal("key 2 should select the chart tab")
	}
	if TabIdxByKey('z') != -1 {
		t.Fatal("unknown key should return -1")
	}
}
