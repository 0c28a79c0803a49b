package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/logging"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/spf13/cobra"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write a default config file if none exists")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	logger := logging.Stderr(flagVerbose)

	if configInit {
		if config.Exists() {
			fmt.Printf("  Config already exists at %s\n", config.ConfigPath())
		} else {
			if err := config.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("  Wrote %s\n", config.ConfigPath())
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", config.ConfigPath())

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if flagEphemeral {
		fmt.Println("    Database: in memory (--ephemeral)")
	} else {
		fmt.Printf("    Database: %s\n", dbPath(cfg))
		fmt.Printf("    Saved:    %s\n", lastSaved(dbPath(cfg)))
	}
	fmt.Printf("    Log file: %s/tally.log\n", config.StateDir())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Directory: %s\n", config.ExportDir(cfg))
	fmt.Printf("    Title:     %s\n", cfg.Export.Title)
	fmt.Println()

	fmt.Println("  Edit the file or use the Settings tab in `tally tui`.")
	return nil
}

// lastSaved describes when the expense slot in the database at path was
// last written, without creating the database.
func lastSaved(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "never (no database yet)"
	}
	slot, err := store.Open(path, store.DefaultKey)
	if err != nil {
		return fmt.Sprintf("unknown (%v)", err)
	}
	defer func() { _ = slot.Close() }()

	ts, err := slot.UpdatedAt()
	switch {
	case err != nil:
		return fmt.Sprintf("unknown (%v)", err)
	case ts.IsZero():
		return "never"
	}
	return ts.Local().Format(time.DateTime)
}
