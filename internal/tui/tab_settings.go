package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/status"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldExportDir
	settingsFieldExportTitle
	settingsFieldCount // sentinel
)

var errUnknownTheme = errors.New("unknown theme")

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) updateSettingsKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter":
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	}
	return a, nil, false
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldExportDir:
		ti.Placeholder = config.ExportDir(config.Config{})
		ti.SetValue(a.cfg.Export.Dir)
	case settingsFieldExportTitle:
		ti.Placeholder = "Expenses"
		ti.SetValue(a.cfg.Export.Title)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settings.editing = false
		a.settings.saveErr = a.settingsSave()
		a.settings.saved = a.settings.saveErr == nil
		if a.settings.saveErr != nil {
			return a, a.setStatus("Settings not saved: "+a.settings.saveErr.Error(), status.Error)
		}
		return a, a.setStatus("Settings saved", status.Success)
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited field to a copy of the config and keeps it
// only once it has been written.
func (a *App) settingsSave() error {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if _, ok := theme.Lookup(val); !ok {
			return fmt.Errorf("%w: %q", errUnknownTheme, val)
		}
		cfg.Appearance.Theme = val
	case settingsFieldExportDir:
		cfg.Export.Dir = val
	case settingsFieldExportTitle:
		cfg.Export.Title = val
	}

	if err := a.saveConfig(cfg); err != nil {
		a.log.Error("saving config", "err", err)
		return err
	}
	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Success).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	orDefault := func(v, def string) string {
		if v == "" {
			return def + " (default)"
		}
		return v
	}

	fields := []struct {
		label string
		value string
	}{
		{"Theme", a.cfg.Appearance.Theme},
		{"Export Directory", orDefault(a.cfg.Export.Dir, config.ExportDir(a.cfg))},
		{"Export Title", orDefault(a.cfg.Export.Title, "Expenses")},
	}

	innerW := components.CardInnerWidth(cw)
	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			if padLen := innerW - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(value); padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	state := "saved"
	if a.store.Dirty() {
		state = "unsaved changes ([ctrl+s] to retry)"
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Database:      ") + valueStyle.Render(truncStr(config.DBPath(a.cfg), innerW-15)) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(truncStr(config.ConfigPath(), innerW-15)) + "\n")
	infoBody.WriteString(labelStyle.Render("Expenses:      ") + valueStyle.Render(cli.FormatNumber(int64(a.store.Len()))) + "\n")
	infoBody.WriteString(labelStyle.Render("Store:         ") + valueStyle.Render(state))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))
	return b.String()
}
