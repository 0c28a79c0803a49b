package tui

import (
	"strings"

	"github.com/theirongolddev/tally/internal/chart"
	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderChartTab(cw, h int) string {
	t := theme.Active
	summary := a.store.Summary()
	spec := chart.FromSummary(summary)

	var series chart.Series
	if len(spec.Series) > 0 {
		series = spec.Series[0]
	}
	colors := make([]lipgloss.Color, len(series.Colors))
	for i, c := range series.Colors {
		colors[i] = lipgloss.Color(c)
	}

	top, topAmount := "-", 0.0
	for _, ct := range summary.ByCategory {
		if ct.Amount > topAmount {
			top, topAmount = ct.Category, ct.Amount
		}
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total", Value: cli.FormatAmount(summary.Total)},
		{Label: "Expenses", Value: cli.FormatNumber(int64(a.store.Len()))},
		{Label: "Top Category", Value: top},
	}, cw))
	b.WriteString("\n")

	// Bar chart
	chartH := h - 6 - len(summary.ByCategory)
	if chartH > 16 {
		chartH = 16
	}
	if chartH < 3 {
		chartH = 3
	}
	innerW := components.CardInnerWidth(cw)
	bars := components.ColorBarChart(series.Values, spec.Labels, colors, innerW, chartH)
	b.WriteString(components.ContentCard(series.Name+" by Category", bars, cw))
	b.WriteString("\n")

	// Legend with amounts beside share bars
	amounts := make([]string, len(summary.ByCategory))
	labelW := 0
	for i, ct := range summary.ByCategory {
		amounts[i] = cli.FormatAmount(ct.Amount)
		labelW = max(labelW, lipgloss.Width(ct.Category))
	}

	legendW := cw / 3
	shareW := cw - legendW

	var shares strings.Builder
	barW := components.CardInnerWidth(shareW) - labelW - 8
	for i, ct := range summary.ByCategory {
		pct := 0.0
		if summary.Total > 0 {
			pct = ct.Amount / summary.Total
		}
		color := t.Accent
		if i < len(colors) {
			color = colors[i]
		}
		shares.WriteString(components.ShareBar(ct.Category, pct, color, labelW, barW))
		if i < len(summary.ByCategory)-1 {
			shares.WriteString("\n")
		}
	}

	shareText := shares.String()
	if summary.Total <= 0 {
		shareText = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No expenses yet")
	}
	cards := components.CardRow([]string{
		components.ContentCard("Legend", components.Legend(spec.Labels, amounts, colors), legendW),
		components.ContentCard("Share", shareText, shareW),
	})
	b.WriteString(cards)
	return b.String()
}
