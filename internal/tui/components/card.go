// Package components provides reusable TUI widgets for the tally interface.
package components

import (
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one card of a MetricCardRow: a label over a bold value with an
// optional detail line. Warn draws the value in the warning color.
type Metric struct {
	Label  string
	Value  string
	Detail string
	Warn   bool
}

// LayoutRow splits totalWidth into n widths summing to exactly totalWidth;
// the first widths take the remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// frame is the rounded, surface-filled box shared by every card.
func frame(outerWidth int) lipgloss.Style {
	t := theme.Active
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)
}

// MetricCard renders m in a card outerWidth cells wide including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active
	on := lipgloss.NewStyle().Background(t.Surface)

	valueColor := t.TextPrimary
	if m.Warn {
		valueColor = t.Warning
	}

	content := on.Foreground(t.TextMuted).Render(m.Label) + "\n" +
		on.Foreground(valueColor).Bold(true).Render(m.Value)
	if m.Detail != "" {
		content += "\n" + on.Foreground(t.TextDim).Render(m.Detail)
	}
	return frame(outerWidth).Render(content)
}

// MetricCardRow renders metric cards side by side, exactly totalWidth wide.
func MetricCardRow(cards []Metric, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(cards))
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = MetricCard(c, widths[i])
	}
	return CardRow(rendered)
}

// ContentCard renders body in a card with an optional bold title line.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active
	if title != "" {
		body = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true).
			Render(title) + "\n" + body
	}
	return frame(outerWidth).Render(body)
}

// CardRow joins rendered cards horizontally, padding shorter ones with the
// background color so no unstyled cells remain.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	tallest := 0
	for _, c := range cards {
		tallest = max(tallest, lipgloss.Height(c))
	}
	bg := theme.Active.Background
	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.Place(lipgloss.Width(c), tallest, lipgloss.Left, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth is the text width inside a card of outerWidth: border and
// padding take four cells.
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
