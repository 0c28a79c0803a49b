package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	totalDescription string
	totalCategory    string
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Totals per category and overall",
	Args:  cobra.NoArgs,
	RunE:  runTotal,
}

func init() {
	totalCmd.Flags().StringVarP(&totalDescription, "description", "d", "", "Only count expenses whose description contains this")
	totalCmd.Flags().StringVarP(&totalCategory, "category", "c", "", "Only count this category")
	rootCmd.AddCommand(totalCmd)
}

func runTotal(_ *cobra.Command, _ []string) error {
	category, err := resolveCategory(totalCategory)
	if err != nil {
		return err
	}
	criteria := model.Criteria{Description: totalDescription, Category: category}

	return withStore(func(s *ledger.Store, _ config.Config, _ *log.Logger) error {
		summary, count := s.Summary(), s.Len()
		if !criteria.Empty() {
			matched := pipeline.Filter(s.List(), criteria)
			summary, count = pipeline.AggregateByCategory(matched, s.Categories()), len(matched)
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("TOTALS  %d expenses", count)))
		fmt.Println()

		rows := make([][]string, 0, len(summary.ByCategory))
		for _, ct := range summary.ByCategory {
			share := "-"
			if summary.Total > 0 {
				share = cli.FormatPercent(ct.Amount / summary.Total)
			}
			rows = append(rows, []string{ct.Category, cli.FormatAmount(ct.Amount), share})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Category", "Amount", "Share"},
			Rows:    rows,
			Footer:  []string{"Total", cli.FormatAmount(summary.Total), ""},
		}))
		return nil
	})
}
