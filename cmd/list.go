package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listDescription string
	listCategory    string
	listOutput      string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses, optionally filtered",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDescription, "description", "d", "", "Filter by description (case-insensitive substring)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format: table, json or yaml")
	rootCmd.AddCommand(listCmd)
}

// listItem is one row of machine-readable list output.
type listItem struct {
	Index         int `json:"index" yaml:"index"`
	model.Expense `yaml:",inline"`
}

// resolveCategory maps user input onto a known category. An unknown name
// is an error rather than a filter that silently matches nothing.
func resolveCategory(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	name, ok := model.ResolveCategory(input)
	if !ok {
		return "", fmt.Errorf("%w: %q", ledger.ErrUnknownCategory, input)
	}
	return name, nil
}

func runList(_ *cobra.Command, _ []string) error {
	category, err := resolveCategory(listCategory)
	if err != nil {
		return err
	}
	criteria := model.Criteria{Description: listDescription, Category: category}

	return withStore(func(s *ledger.Store, _ config.Config, logger *log.Logger) error {
		expenses := s.List()
		positions := pipeline.FilterIndices(expenses, criteria)
		logger.Debug("listing", "total", len(expenses), "matched", len(positions))

		items := make([]listItem, len(positions))
		for i, pos := range positions {
			items[i] = listItem{Index: pos + 1, Expense: expenses[pos]}
		}

		switch listOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(items); err != nil {
				return err
			}
			return enc.Close()
		case "table", "":
		default:
			return fmt.Errorf("unknown output format %q", listOutput)
		}

		if len(expenses) == 0 {
			fmt.Println("\n  No expenses yet. Add one with `tally add`.")
			return nil
		}
		if len(items) == 0 {
			fmt.Println("\n  No expenses match the filter.")
			return nil
		}

		title := "EXPENSES"
		if !criteria.Empty() {
			title = fmt.Sprintf("EXPENSES  %d of %d", len(items), len(expenses))
		}
		fmt.Println()
		fmt.Println(cli.RenderTitle(title))
		fmt.Println()

		var total float64
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			total += it.Amount
			rows = append(rows, []string{
				strconv.Itoa(it.Index),
				it.Description,
				it.Category,
				cli.FormatAmount(it.Amount),
			})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers:    []string{"#", "Description", "Category", "Amount"},
			Rows:       rows,
			Footer:     []string{"", "Total", "", cli.FormatAmount(total)},
			AlignRight: []bool{true, false, false, true},
		}))
		return nil
	})
}
