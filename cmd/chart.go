package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/tally/internal/chart"
	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var chartOutput string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Bar chart of spending per category",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "bars", "Output format: bars, json or yaml")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	return withStore(func(s *ledger.Store, _ config.Config, _ *log.Logger) error {
		spec := chart.FromSummary(s.Summary())

		switch chartOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(spec)
		case "yaml":
			return yaml.NewEncoder(os.Stdout).Encode(spec)
		case "bars", "":
		default:
			return fmt.Errorf("unknown output format %q", chartOutput)
		}

		series := spec.Series[0]
		labelW := 0
		for _, l := range spec.Labels {
			labelW = max(labelW, lipgloss.Width(l))
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
		fmt.Println()
		for i, label := range spec.Labels {
			fmt.Println(cli.RenderHorizontalBar(label, labelW, series.Values[i], spec.Max(), 36,
				lipgloss.Color(series.Colors[i])))
		}
		fmt.Printf("\n  %s %s\n", "Total", cli.FormatAmount(s.Summary().Total))
		return nil
	})
}
