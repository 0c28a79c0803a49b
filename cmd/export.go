package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/export"
	"github.com/theirongolddev/tally/internal/ledger"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	exportOut     string
	exportTitle   string
	exportPreview bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all expenses to a PDF table",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default <export dir>/expenses-<timestamp>.pdf)")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "Document title (default from config)")
	exportCmd.Flags().BoolVar(&exportPreview, "preview", false, "Also print the table to the terminal")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	return withStore(func(s *ledger.Store, cfg config.Config, logger *log.Logger) error {
		doc := export.Build(s.List(), s.Summary())
		switch {
		case exportTitle != "":
			doc.Title = exportTitle
		case cfg.Export.Title != "":
			doc.Title = cfg.Export.Title
		}

		path := exportOut
		if path == "" {
			path = filepath.Join(config.ExportDir(cfg),
				fmt.Sprintf("expenses-%s.pdf", time.Now().Format("20060102-150405")))
		}

		if exportPreview {
			fmt.Println()
			fmt.Print(export.RenderTable(doc))
			fmt.Println()
		}

		if err := export.WriteFile(path, doc); err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
		logger.Debug("exported", "path", path, "rows", len(doc.Rows))
		fmt.Printf("  Exported %d expenses to %s\n", len(doc.Rows), path)
		return nil
	})
}
