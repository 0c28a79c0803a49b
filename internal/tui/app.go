// Package tui provides the interactive Bubble Tea interface for tally.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/status"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	tabExpenses = iota
	tabChart
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// clearStatusMsg asks for the status message of generation gen to be
// cleared. Stale generations are ignored.
type clearStatusMsg struct {
	gen uint64
}

// exportDoneMsg reports the result of a PDF export.
type exportDoneMsg struct {
	path string
	err  error
}

// Options configures an App.
type Options struct {
	Config config.Config
	Logger *log.Logger
	// SaveConfig persists settings changes; defaults to config.Save.
	SaveConfig func(config.Config) error
	// Now stamps export file names; defaults to time.Now.
	Now func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	store *ledger.Store
	log   *log.Logger
	cfg   config.Config

	saveConfig func(config.Config) error
	now        func() time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	exp      expensesState
	settings settingsState

	// Add/edit/delete form (huh)
	form     *huh.Form
	formVals *formValues
	formKind formKind

	status status.Line
}

// NewApp creates a new TUI app model around an open store.
func NewApp(store *ledger.Store, opts Options) App {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SaveConfig == nil {
		opts.SaveConfig = config.Save
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	theme.SetActive(opts.Config.Appearance.Theme)

	return App{
		store:      store,
		log:        opts.Logger,
		cfg:        opts.Config,
		saveConfig: opts.SaveConfig,
		now:        opts.Now,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to the form if active
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth()).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil || msg.Action != tea.MouseActionPress {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabExpenses {
				a.moveCursor(-1)
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabExpenses {
				a.moveCursor(1)
			}
		case tea.MouseButtonLeft:
			// Tab bar is the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case clearStatusMsg:
		a.status.Clear(msg.gen)
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.log.Error("export failed", "err", msg.err)
			return a, a.setStatus(fmt.Sprintf("Export failed: %v", msg.err), status.Error)
		}
		a.log.Info("exported", "path", msg.path)
		return a, a.setStatus("Exported to "+msg.path, status.Success)

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The form intercepts all keys
		if a.form != nil {
			if key == "esc" {
				return a.cancelForm()
			}
			return a.updateForm(msg)
		}

		// Settings text input
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Description search input
		if a.activeTab == tabExpenses && a.exp.searching {
			return a.updateSearch(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabExpenses:
			if m, cmd, handled := a.updateExpensesKey(key); handled {
				return m, cmd
			}
		case tabSettings:
			if m, cmd, handled := a.updateSettingsKey(key); handled {
				return m, cmd
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "ctrl+s":
			return a.flush()
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab", "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.activeTab == tabExpenses && a.exp.searching {
		var cmd tea.Cmd
		a.exp.searchInput, cmd = a.exp.searchInput.Update(msg)
		return a, cmd
	}
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// setStatus shows a message and, unless it is an error, schedules its
// clearing after status.ClearAfter.
func (a *App) setStatus(text string, kind status.Kind) tea.Cmd {
	gen, auto := a.status.Set(text, kind)
	if !auto {
		return nil
	}
	return tea.Tick(status.ClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}

// reportStoreError turns a store error into a status message.
func (a *App) reportStoreError(err error) tea.Cmd {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return a.setStatus(err.Error(), status.Error)
	case errors.Is(err, ledger.ErrPersistence):
		a.log.Error("store not saved", "err", err)
		return a.setStatus("Not saved (ctrl+s to retry): "+err.Error(), status.Error)
	case errors.Is(err, ledger.ErrIndexOutOfRange):
		return a.setStatus("That expense no longer exists", status.Error)
	default:
		return a.setStatus(err.Error(), status.Error)
	}
}

func (a App) flush() (tea.Model, tea.Cmd) {
	if !a.store.Dirty() {
		return a, a.setStatus("Nothing to save", status.Info)
	}
	if err := a.store.Flush(); err != nil {
		return a, a.reportStoreError(err)
	}
	return a, a.setStatus("Saved", status.Success)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tally needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Key).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k g G", "Move through the list"},
		}},
		{"Expenses", []struct{ key, desc string }{
			{"a", "Add expense"},
			{"e Enter", "Edit selected"},
			{"d", "Delete selected"},
			{"/", "Filter by description"},
			{"c", "Cycle category filter"},
			{"Esc", "Clear filter / Cancel edit"},
			{"p", "Export PDF"},
		}},
		{"General", []struct{ key, desc string }{
			{"^s", "Retry save"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + filter pill
	header := components.RenderTabBar(a.activeTab, w) + "\n" + a.renderFilterPill(w)

	// 2. Status bar
	msg, hasMsg := a.status.Current()
	statusBar := components.RenderStatusBar(w, a.statusHints(), msg, hasMsg)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content, or the form when one is open
	var content string
	switch {
	case a.form != nil:
		content = a.renderForm(cw)
	case a.activeTab == tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case a.activeTab == tabChart:
		content = a.renderChartTab(cw, contentH)
	case a.activeTab == tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderFilterPill(w int) string {
	t := theme.Active

	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	editStyle := lipgloss.NewStyle().
		Foreground(t.Warning).
		Background(t.Surface).
		Bold(true)

	c := a.exp.criteria
	s := pillStyle.Render(" ")
	switch {
	case c.Empty():
		s += pillStyle.Render("all expenses")
	default:
		var parts []string
		if c.Description != "" {
			parts = append(parts, accentStyle.Render(fmt.Sprintf("%q", c.Description)))
		}
		if c.Category != "" {
			parts = append(parts, accentStyle.Render(c.Category))
		}
		s += strings.Join(parts, pillStyle.Render(" │ "))
	}
	if pos, ok := a.store.Editing(); ok {
		s += pillStyle.Render(" │ ") + editStyle.Render(fmt.Sprintf("editing #%d", pos+1))
	}
	if a.store.Dirty() {
		s += pillStyle.Render(" │ ") + editStyle.Render("unsaved")
	}

	return lipgloss.NewStyle().Background(t.Surface).Width(w).Render(s)
}

func (a App) statusHints() string {
	switch {
	case a.form != nil:
		return "[enter]confirm  [esc]cancel"
	case a.exp.searching:
		return "[enter]apply  [esc]cancel"
	case a.activeTab == tabExpenses:
		return "[a]dd [e]dit [d]elete [/]filter [c]ategory [p]df [?]help [q]uit"
	case a.activeTab == tabSettings:
		return "[j/k]move [enter]edit [?]help [q]uit"
	default:
		return "[?]help  [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// visibleRows maps filtered rows to store positions for the current
// criteria.
func (a App) visibleRows() []int {
	return filterRows(a.store.List(), a.exp.criteria)
}

func nextCategory(current string, categories []string) string {
	if current == "" {
		if len(categories) == 0 {
			return ""
		}
		return categories[0]
	}
	for i, c := range categories {
		if c == current && i+1 < len(categories) {
			return categories[i+1]
		}
	}
	return ""
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
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
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}
