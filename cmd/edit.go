package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	editDescription string
	editAmount      string
	editCategory    string
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Change fields of an existing expense",
	Long:  "Change fields of the expense at <index> as shown by `tally list`. Fields not given keep their value.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVarP(&editAmount, "amount", "a", "", "New amount")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	pos, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("description") && !flags.Changed("amount") && !flags.Changed("category") {
		return fmt.Errorf("nothing to change: pass --description, --amount or --category")
	}

	return withStore(func(s *ledger.Store, _ config.Config, _ *log.Logger) error {
		e, err := s.BeginEdit(pos)
		if err != nil {
			return err
		}

		if flags.Changed("description") {
			e.Description = editDescription
		}
		if flags.Changed("amount") {
			if e.Amount, err = cli.ParseAmount(editAmount); err != nil {
				return err
			}
		}
		if flags.Changed("category") {
			if e.Category, err = resolveCategory(editCategory); err != nil {
				return err
			}
		}

		outcome, err := s.Commit(e.Description, e.Amount, e.Category)
		if outcome == ledger.OutcomeNone {
			return err
		}
		e = s.List()[pos]
		fmt.Printf("  Updated #%d  %s · %s · %s\n", pos+1, e.Description, e.Category, cli.FormatAmount(e.Amount))
		return err
	})
}
