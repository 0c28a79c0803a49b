package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <index>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete an expense",
	Long:    "Delete the expense at <index> as shown by `tally list`. Later expenses move up by one.",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	pos, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	return withStore(func(s *ledger.Store, _ config.Config, _ *log.Logger) error {
		list := s.List()
		if pos >= len(list) {
			return fmt.Errorf("no expense #%d (have %d)", pos+1, len(list))
		}
		e := list[pos]
		// The position was checked, so an error here is a failed save of an
		// applied removal.
		err := s.Remove(pos)
		fmt.Printf("  Removed #%d  %s · %s · %s\n", pos+1, e.Description, e.Category, cli.FormatAmount(e.Amount))
		return err
	})
}
