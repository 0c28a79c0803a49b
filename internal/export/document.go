// Package export lays the expense collection out as a table document and
// renders it to PDF or to the terminal.
package export

import (
	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"
)

// DefaultTitle heads an exported document when none is configured.
const DefaultTitle = "Expenses"

// Header is the fixed column header row.
var Header = []string{"Description", "Amount", "Category"}

// Row is one table row. Shaded asks the renderer for a background fill.
type Row struct {
	Cells  []string
	Shaded bool
}

// Document is a renderer-neutral table: header, data rows, total.
type Document struct {
	Title  string
	Header []string
	Rows   []Row
	Total  Row
}

// Build lays out every expense in display order, regardless of any active
// filter, followed by a Total row. Every other data row starting with the
// first is shaded; the header and total never are.
func Build(expenses []model.Expense, summary model.Summary) Document {
	doc := Document{
		Title:  DefaultTitle,
		Header: append([]string(nil), Header...),
		Rows:   make([]Row, len(expenses)),
		Total:  Row{Cells: []string{"Total", cli.FormatCurrency(&summary.Total), ""}},
	}
	for i, e := range expenses {
		doc.Rows[i] = Row{
			Cells:  []string{e.Description, cli.FormatCurrency(&e.Amount), e.Category},
			Shaded: i%2 == 0,
		}
	}
	return doc
}

// RenderTable renders doc as a bordered terminal table.
func RenderTable(doc Document) string {
	t := cli.Table{
		Title:      doc.Title,
		Headers:    doc.Header,
		Rows:       make([][]string, len(doc.Rows)),
		Shaded:     make(map[int]bool),
		Footer:     doc.Total.Cells,
		AlignRight: []bool{false, true, false},
	}
	for i, r := range doc.Rows {
		t.Rows[i] = r.Cells
		if r.Shaded {
			t.Shaded[i] = true
		}
	}
	return cli.RenderTable(t)
}
