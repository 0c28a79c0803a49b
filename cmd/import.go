package cmd

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/source"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file.json|dir>...",
	Short: "Import expenses from JSON dumps",
	Long: `Import expenses from JSON files: a plain array of records, an object keyed
"despesas" or "expenses", or a browser storage dump whose value is such an
array encoded as a string. Directories are scanned for *.json files.
Records are appended in file order; invalid ones are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importDryRun, "dry-run", "n", false, "Parse and report without saving")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	var files []string
	for _, arg := range args {
		found, err := source.ScanDir(arg)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		fmt.Println("\n  No JSON files found.")
		return nil
	}

	return withStore(func(s *ledger.Store, _ config.Config, logger *log.Logger) error {
		st := importFiles(s, files, importDryRun, logger)

		verb := "Imported"
		if importDryRun {
			verb = "Would import"
		}
		fmt.Printf("  %s %d expenses (%s) from %d files", verb, st.added, cli.FormatAmount(st.total), len(files)-st.unreadable)
		if st.rejected > 0 {
			fmt.Printf(", %d rejected", st.rejected)
		}
		if st.unreadable > 0 {
			fmt.Printf(", %d unreadable", st.unreadable)
		}
		fmt.Println()

		if st.saveErr != nil {
			// Later commits may have saved the whole collection already.
			if err := s.Flush(); err != nil {
				return err
			}
		}
		return nil
	})
}

type importStats struct {
	added      int
	rejected   int
	unreadable int
	total      float64
	saveErr    error
}

// importFiles appends every valid record from files to s. With dryRun set
// records are only validated, so the counts match what a real run reports.
func importFiles(s *ledger.Store, files []string, dryRun bool, logger *log.Logger) importStats {
	var st importStats
	for _, path := range files {
		res := source.ParseFile(path, logger)
		if res.Err != nil {
			logger.Warn("skipping file", "path", path, "err", res.Err)
			st.unreadable++
			continue
		}
		st.rejected += res.Skipped

		for _, e := range res.Expenses {
			clean, err := ledger.Validate(e.Description, e.Amount, e.Category)
			if err != nil {
				logger.Warn("rejected record", "path", path, "description", e.Description, "err", err)
				st.rejected++
				continue
			}
			if !dryRun {
				if _, err := s.Commit(clean.Description, clean.Amount, clean.Category); err != nil {
					st.saveErr = err
				}
			}
			st.added++
			st.total += clean.Amount
		}
	}
	return st
}
