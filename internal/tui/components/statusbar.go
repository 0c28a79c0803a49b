package components

import (
	"github.com/theirongolddev/tally/internal/status"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// current status message (if any) on the right.
func RenderStatusBar(width int, hints string, msg status.Message, hasMsg bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := ""
	rightStyle := lipgloss.NewStyle().Background(t.Surface).Bold(true)
	if hasMsg {
		right = msg.Text + " "
		switch msg.Kind {
		case status.Error:
			rightStyle = rightStyle.Foreground(t.Danger)
		case status.Success:
			rightStyle = rightStyle.Foreground(t.Success)
		default:
			rightStyle = rightStyle.Foreground(t.Accent)
		}
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		// Message wins over hints when space is short
		left = ""
		padding = max(0, width-lipgloss.Width(right))
	}

	bar := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(left) +
		lipgloss.NewStyle().Background(t.Surface).Render(spaces(padding)) +
		rightStyle.Render(right)

	return style.Render(bar)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
