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
	addDescription string
	addAmount      string
	addCategory    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Example: `  tally add -d "Groceries" -a 152,30 -c food
  tally add --description Rent --amount "1.200,00" --category home`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "What the money was spent on")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Amount, e.g. 12,50 or 1.234,56")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (see `tally total`)")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	amount, err := cli.ParseAmount(addAmount)
	if err != nil {
		return err
	}
	category, err := resolveCategory(addCategory)
	if err != nil {
		return err
	}

	return withStore(func(s *ledger.Store, _ config.Config, _ *log.Logger) error {
		outcome, err := s.Commit(addDescription, amount, category)
		if outcome == ledger.OutcomeNone {
			return err
		}
		e := s.List()[s.Len()-1]
		fmt.Printf("  Added #%d  %s · %s · %s\n", s.Len(), e.Description, e.Category, cli.FormatAmount(e.Amount))
		return err
	})
}
