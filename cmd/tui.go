package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/logging"
	"github.com/theirongolddev/tally/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive expense manager",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The terminal belongs to Bubble Tea, so logs go to a file.
	logger, closeLog, err := logging.File(config.StateDir(), flagVerbose)
	if err != nil {
		logger, closeLog = logging.New(io.Discard, false), func() error { return nil }
	}
	defer func() { _ = closeLog() }()

	cfg := loadConfig(logger)
	s, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("closing store", "err", err)
		}
	}()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s, tui.Options{Config: cfg, Logger: logger})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if s.Dirty() {
		if err := s.Flush(); err != nil {
			return fmt.Errorf("unsaved changes: %w", err)
		}
	}
	return nil
}
