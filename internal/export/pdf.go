package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfRowHeight  = 8.0
	pdfTitleSize  = 16.0
	pdfBodySize   = 10.0
	pdfShadeLevel = 240

	pdfBottomMargin = 15.0
)

// column widths as fractions of the printable width
var pdfColumns = []float64{0.55, 0.2, 0.25}

// WritePDF renders doc as an A4 portrait PDF: a centered title and a grid
// table whose shaded rows get a light gray fill. The header row is repeated
// at the top of every page and cell text is clipped to its column.
func WritePDF(w io.Writer, doc Document) error {
	if err := buildPDF(doc).Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func buildPDF(doc Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(false, pdfBottomMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	usable := pageW - left - right

	widths := make([]float64, len(pdfColumns))
	for i, f := range pdfColumns {
		widths[i] = usable * f
	}

	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	pdf.CellFormat(usable, 12, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(cells []string, fill bool) {
		for i, width := range widths {
			text := ""
			if i < len(cells) {
				text = fitText(pdf, tr(cells[i]), width)
			}
			align := "L"
			if i == 1 {
				align = "R"
			}
			pdf.CellFormat(width, pdfRowHeight, text, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	header := func() {
		pdf.SetFont(pdfFont, "B", pdfBodySize)
		row(doc.Header, false)
	}
	// room makes sure the next row fits, starting a new page under a fresh
	// header when it does not.
	room := func() {
		if pdf.GetY()+pdfRowHeight <= pageH-bottom {
			return
		}
		pdf.AddPage()
		header()
	}

	pdf.SetFillColor(pdfShadeLevel, pdfShadeLevel, pdfShadeLevel)
	header()

	for _, r := range doc.Rows {
		room()
		pdf.SetFont(pdfFont, "", pdfBodySize)
		row(r.Cells, r.Shaded)
	}

	room()
	pdf.SetFont(pdfFont, "B", pdfBodySize)
	row(doc.Total.Cells, doc.Total.Shaded)
	return pdf
}

// fitText shortens s with a trailing ellipsis until it fits a cell of the
// given width in the current font. s is already in the single-byte page
// encoding, so trimming by byte never splits a character.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	avail := width - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(s) <= avail {
		return s
	}
	for n := len(s) - 1; n > 0; n-- {
		if cut := s[:n] + "..."; pdf.GetStringWidth(cut) <= avail {
			return cut
		}
	}
	return ""
}

// WriteFile renders doc as PDF into path, creating parent directories.
func WriteFile(path string, doc Document) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return WritePDF(f, doc)
}
