package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/export"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
	"github.com/theirongolddev/tally/internal/status"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// expensesState holds the expenses tab state. cursor indexes the filtered
// rows, not the store.
type expensesState struct {
	cursor int
	offset int // scroll offset for the list

	criteria model.Criteria

	searching   bool
	searchInput textinput.Model
	prevSearch  string // restored when the search is cancelled
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "description contains..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	return ti
}

func filterRows(list []model.Expense, c model.Criteria) []int {
	return pipeline.FilterIndices(list, c)
}

func (a *App) moveCursor(delta int) {
	n := len(a.visibleRows())
	a.exp.cursor += delta
	a.clampCursor(n)
}

func (a *App) clampCursor(n int) {
	if a.exp.cursor >= n {
		a.exp.cursor = n - 1
	}
	if a.exp.cursor < 0 {
		a.exp.cursor = 0
	}
}

// selected returns the store position under the cursor.
func (a App) selected() (int, bool) {
	rows := a.visibleRows()
	if a.exp.cursor < 0 || a.exp.cursor >= len(rows) {
		return 0, false
	}
	return rows[a.exp.cursor], true
}

func (a App) updateExpensesKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.moveCursor(1)
		return a, nil, true
	case "k", "up":
		a.moveCursor(-1)
		return a, nil, true
	case "g":
		a.exp.cursor = 0
		a.exp.offset = 0
		return a, nil, true
	case "G":
		a.exp.cursor = len(a.visibleRows()) - 1
		a.clampCursor(len(a.visibleRows()))
		return a, nil, true

	case "a":
		m, cmd := a.openAddForm()
		return m, cmd, true
	case "e", "enter":
		pos, ok := a.selected()
		if !ok {
			return a, a.setStatus("Nothing to edit", status.Info), true
		}
		m, cmd := a.openEditForm(pos)
		return m, cmd, true
	case "d":
		pos, ok := a.selected()
		if !ok {
			return a, a.setStatus("Nothing to delete", status.Info), true
		}
		m, cmd := a.openDeleteForm(pos)
		return m, cmd, true

	case "/":
		a.exp.searching = true
		a.exp.prevSearch = a.exp.criteria.Description
		a.exp.searchInput = newSearchInput()
		a.exp.searchInput.SetValue(a.exp.criteria.Description)
		a.exp.searchInput.Focus()
		return a, a.exp.searchInput.Cursor.BlinkCmd(), true
	case "c":
		a.exp.criteria.Category = nextCategory(a.exp.criteria.Category, a.store.Categories())
		a.exp.cursor = 0
		a.exp.offset = 0
		return a, nil, true
	case "esc":
		if _, ok := a.store.Editing(); ok {
			a.store.CancelEdit()
			return a, a.setStatus("Edit cancelled", status.Info), true
		}
		if !a.exp.criteria.Empty() {
			a.exp.criteria = model.Criteria{}
			a.exp.cursor = 0
			a.exp.offset = 0
			return a, nil, true
		}
		// Nothing else to undo: dismiss a sticky error.
		a.status.Reset()
		return a, nil, true

	case "p":
		return a, a.exportCmd(), true
	}
	return a, nil, false
}

// updateSearch handles key events while typing a description filter. The
// filter applies live; esc restores the previous one.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.exp.criteria.Description = strings.TrimSpace(a.exp.searchInput.Value())
		a.exp.searching = false
		return a, nil
	case "esc":
		a.exp.criteria.Description = a.exp.prevSearch
		a.exp.searching = false
		a.clampCursor(len(a.visibleRows()))
		return a, nil
	}

	var cmd tea.Cmd
	a.exp.searchInput, cmd = a.exp.searchInput.Update(msg)
	a.exp.criteria.Description = strings.TrimSpace(a.exp.searchInput.Value())
	a.exp.cursor = 0
	a.exp.offset = 0
	return a, cmd
}

// exportCmd writes the full, unfiltered collection to a PDF in the export
// directory.
func (a App) exportCmd() tea.Cmd {
	doc := export.Build(a.store.List(), a.store.Summary())
	if a.cfg.Export.Title != "" {
		doc.Title = a.cfg.Export.Title
	}
	path := filepath.Join(config.ExportDir(a.cfg),
		fmt.Sprintf("expenses-%s.pdf", a.now().Format("20060102-150405")))

	return func() tea.Msg {
		return exportDoneMsg{path: path, err: export.WriteFile(path, doc)}
	}
}

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	list := a.store.List()
	rows := a.visibleRows()
	summary := a.store.Summary()

	var shown float64
	for _, pos := range rows {
		shown += list[pos].Amount
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Total", Value: cli.FormatAmount(summary.Total)},
		{Label: "Entries", Value: cli.FormatNumber(int64(len(list)))},
		{Label: "Shown", Value: cli.FormatAmount(shown), Detail: fmt.Sprintf("%d of %d", len(rows), len(list)), Warn: a.store.Dirty()},
	}, cw)

	var body strings.Builder
	if a.exp.searching {
		body.WriteString(a.exp.searchInput.View())
		body.WriteString("\n")
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(list) == 0 {
		body.WriteString(mutedStyle.Render("No expenses yet. Press a to add one."))
		return cards + "\n" + components.ContentCard("Expenses", body.String(), cw)
	}
	if len(rows) == 0 {
		body.WriteString(mutedStyle.Render("No expenses match the filter. Press esc to clear it."))
		return cards + "\n" + components.ContentCard("Expenses", body.String(), cw)
	}

	innerW := components.CardInnerWidth(cw)
	amountW := 16
	catW := 14
	idxW := 5
	descW := innerW - amountW - catW - idxW - 3
	if descW < 10 {
		descW = 10
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	editStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Bold(true)

	line := func(idx, desc, cat, amount string) string {
		return fmt.Sprintf("%-*s %-*s %-*s %*s", idxW, idx, descW, truncStr(desc, descW), catW, truncStr(cat, catW), amountW, amount)
	}

	body.WriteString(headerStyle.Render(line("#", "Description", "Category", "Amount")))
	body.WriteString("\n")

	visible := h - lipgloss.Height(cards) - 5 // card border (2) + title + header + slack
	if a.exp.searching {
		visible--
	}
	if visible < 3 {
		visible = 3
	}

	offset := a.exp.offset
	if a.exp.cursor < offset {
		offset = a.exp.cursor
	}
	if a.exp.cursor >= offset+visible {
		offset = a.exp.cursor - visible + 1
	}

	editing, isEditing := a.store.Editing()
	end := min(len(rows), offset+visible)
	for i := offset; i < end; i++ {
		pos := rows[i]
		e := list[pos]
		idx := fmt.Sprintf("%d", pos+1)
		if isEditing && pos == editing {
			idx = "✎" + idx
		}
		text := line(idx, e.Description, e.Category, cli.FormatAmount(e.Amount))
		switch {
		case i == a.exp.cursor:
			body.WriteString(selectedStyle.Render(padRight(text, innerW)))
		case isEditing && pos == editing:
			body.WriteString(editStyle.Render(text))
		default:
			body.WriteString(rowStyle.Render(text))
		}
		if i < end-1 {
			body.WriteString("\n")
		}
	}

	if len(rows) > visible {
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%d-%d of %d", offset+1, end, len(rows))))
	}

	return cards + "\n" + components.ContentCard("Expenses", body.String(), cw)
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
