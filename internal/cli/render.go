package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorShade     = lipgloss.Color("#1C1B1A")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	shadedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorShade)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// SeparatorRow is a row marker that renders as a horizontal rule.
const SeparatorRow = "---"

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil

	// Shaded marks data rows (by index into Rows) drawn with a background.
	Shaded map[int]bool
	// Footer is drawn after a separator in the total style.
	Footer []string
	// AlignRight marks columns padded on the left; nil right-aligns all
	// columns except the first.
	AlignRight []bool
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		measure := func(row []string) {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
		measure(t.Headers)
		for _, row := range t.Rows {
			measure(row)
		}
		measure(t.Footer)
	}

	rightAligned := func(col int) bool {
		if t.AlignRight != nil {
			return col < len(t.AlignRight) && t.AlignRight[col]
		}
		return col > 0
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	row := func(cells []string, style lipgloss.Style, align func(int) bool) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style.Render(" " + pad(cell, widths[i], align(i)) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Top border
	rule("╭", "┬", "╮")

	// Header row
	if len(t.Headers) > 0 {
		row(t.Headers, headerStyle, func(int) bool { return false })
		rule("├", "┼", "┤")
	}

	// Data rows
	for i, r := range t.Rows {
		if len(r) == 1 && r[0] == SeparatorRow {
			rule("├", "┼", "┤")
			continue
		}
		style := valueStyle
		if t.Shaded[i] {
			style = shadedStyle
		}
		row(r, style, rightAligned)
	}

	if len(t.Footer) > 0 {
		if len(t.Rows) > 0 {
			rule("├", "┼", "┤")
		}
		row(t.Footer, totalStyle, rightAligned)
	}

	// Bottom border
	rule("╰", "┴", "╯")

	return b.String()
}

// pad fills s to width display cells, truncating with an ellipsis when it
// does not fit.
func pad(s string, width int, right bool) string {
	w := lipgloss.Width(s)
	if w > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
		w = lipgloss.Width(s)
	}
	fill := strings.Repeat(" ", max(0, width-w))
	if right {
		return fill + s
	}
	return s + fill
}

// RenderHorizontalBar renders a labeled horizontal bar chart entry in the
// given color, scaled against maxValue.
func RenderHorizontalBar(label string, labelWidth int, value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	name := pad(label, labelWidth, false)
	if maxValue <= 0 {
		return fmt.Sprintf("  %s │", mutedStyle.Render(name))
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if value > 0 && barLen == 0 {
		barLen = 1
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("  %s │%s %s", mutedStyle.Render(name), bar, valueStyle.Render(FormatAmount(value)))
}
