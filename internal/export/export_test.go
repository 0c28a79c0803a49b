package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-pdf/fpdf"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sampleDoc() Document {
	exps := []model.Expense{
		{Description: "Lunch", Amount: 30, Category: "Food"},
		{Description: "Movie", Amount: 20, Category: "Leisure"},
		{Description: "Rent", Amount: 1500, Category: "Home"},
	}
	return Build(exps, pipeline.AggregateByCategory(exps, model.Categories))
}

func TestBuildRowsAndShading(t *testing.T) {
	doc := sampleDoc()

	if strings.Join(doc.Header, "|") != "Description|Amount|Category" {
		t.Fatalf("Header = %v", doc.Header)
	}
	if len(doc.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(doc.Rows))
	}
	wantShade := []bool{true, false, true}
	for i, r := range doc.Rows {
		if r.Shaded != wantShade[i] {
			t.Errorf("Rows[%d].Shaded = %v, want %v", i, r.Shaded, wantShade[i])
		}
	}
	if doc.Rows[2].Cells[1] != "R$ 1.500,00" {
		t.Fatalf("amount cell = %q", doc.Rows[2].Cells[1])
	}
}

func TestBuildTotalRow(t *testing.T) {
	doc := sampleDoc()
	want := []string{"Total", "R$ 1.550,00", ""}
	if strings.Join(doc.Total.Cells, "|") != strings.Join(want, "|") {
		t.Fatalf("Total = %v, want %v", doc.Total.Cells, want)
	}
	if doc.Total.Shaded {
		t.Fatal("total row must not be shaded")
	}
}

func TestBuildEmpty(t *testing.T) {
	doc := Build(nil, model.Summary{})
	if len(doc.Rows) != 0 {
		t.Fatalf("len(Rows) = %d", len(doc.Rows))
	}
	if doc.Total.Cells[1] != "R$ 0,00" {
		t.Fatalf("Total = %v", doc.Total.Cells)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	doc := sampleDoc()
	doc.Rows[0].Cells[0] = "Almoço"

	if err := WritePDF(&buf, doc); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func longDoc(n int) Document {
	exps := make([]model.Expense, n)
	for i := range exps {
		exps[i] = model.Expense{Description: fmt.Sprintf("Item %d", i+1), Amount: 10, Category: "Other"}
	}
	return Build(exps, pipeline.AggregateByCategory(exps, model.Categories))
}

func TestPDFRepeatsHeaderOnEveryPage(t *testing.T) {
	pdf := buildPDF(longDoc(200))
	pages := pdf.PageCount()
	if pages < 2 {
		t.Fatalf("PageCount = %d, want at least 2", pages)
	}

	pdf.SetCompression(false)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if got := bytes.Count(buf.Bytes(), []byte("(Description)")); got != pages {
		t.Errorf("header drawn %d times, want once per page (%d)", got, pages)
	}
	if got := bytes.Count(buf.Bytes(), []byte("(Item 200)")); got != 1 {
		t.Errorf("last row drawn %d times, want 1", got)
	}
}

func TestPDFSmallDocIsOnePage(t *testing.T) {
	if got := buildPDF(sampleDoc()).PageCount(); got != 1 {
		t.Fatalf("PageCount = %d, want 1", got)
	}
}

func TestFitText(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfBodySize)
	width := 40.0
	avail := width - 2*pdf.GetCellMargin()

	if got := fitText(pdf, "Lunch", width); got != "Lunch" {
		t.Errorf("fitText(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("Supermarket run ", 20)
	got := fitText(pdf, long, width)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("fitText(long) = %q, want ellipsis", got)
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(got, "...")) {
		t.Errorf("fitText(long) = %q, not a prefix of the input", got)
	}
	if w := pdf.GetStringWidth(got); w > avail {
		t.Errorf("clipped width = %.2f, want <= %.2f", w, avail)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleDoc())
	for _, want := range []string{"Expenses", "Lunch", "R$ 1.550,00", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "expenses.pdf")
	if err := WriteFile(path, sampleDoc()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("Stat = (%v, %v)", info, err)
	}
}
