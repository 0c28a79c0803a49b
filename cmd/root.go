// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/logging"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagDB        string
	flagEphemeral bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:          "tally",
	Short:        "Personal expense tracker",
	Long:         "Record, filter, total, chart and export your expenses.",
	RunE:         runList,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (default $XDG_DATA_HOME/tally/tally.db)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep expenses in memory only")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// loadConfig reads the config file, falling back to defaults when it is
// unreadable.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using default config", "err", err)
		return config.DefaultConfig()
	}
	return cfg
}

func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	return config.DBPath(cfg)
}

// openStore opens the ledger over the SQLite slot, or over a memory slot
// with --ephemeral. The returned func closes the slot.
func openStore(cfg config.Config, logger *log.Logger) (*ledger.Store, func() error, error) {
	if flagEphemeral {
		s, err := ledger.New(store.NewMemorySlot(nil), ledger.WithLogger(logger))
		return s, func() error { return nil }, err
	}

	path := dbPath(cfg)
	slot, err := store.Open(path, store.DefaultKey)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	logger.Debug("opened store", "path", path)

	s, err := ledger.New(slot, ledger.WithLogger(logger))
	if err != nil {
		_ = slot.Close()
		return nil, nil, err
	}
	return s, slot.Close, nil
}

// withStore runs fn against an open store with a stderr logger, closing the
// store afterwards.
func withStore(fn func(s *ledger.Store, cfg config.Config, logger *log.Logger) error) error {
	logger := logging.Stderr(flagVerbose)
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

	return fn(s, cfg, logger)
}

// parseIndex converts a 1-based index argument to a store position.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid index %q: want a number from `tally list`", arg)
	}
	return n - 1, nil
}
