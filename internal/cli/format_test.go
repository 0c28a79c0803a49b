package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.5, "R$ 1.234,50"},
		{0.005, "R$ 0,01"},
		{1.005, "R$ 1,01"},
		{999.999, "R$ 1.000,00"},
		{1234567.891, "R$ 1.234.567,89"},
		{100, "R$ 100,00"},
		{-1, "-R$ 1,00"},
		{-0.001, "R$ 0,00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmountNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := FormatAmount(v); got != "R$ 0,00" {
			t.Errorf("FormatAmount(%v) = %q, want %q", v, got, "R$ 0,00")
		}
	}
	nan := math.NaN()
	if got := FormatCurrency(&nan); got != "R$ 0,00" {
		t.Errorf("FormatCurrency(NaN) = %q, want %q", got, "R$ 0,00")
	}
}

func TestFormatCurrencyNil(t *testing.T) {
	if got := FormatCurrency(nil); got != "R$ 0,00" {
		t.Fatalf("FormatCurrency(nil) = %q, want %q", got, "R$ 0,00")
	}
	v := 42.1
	if got := FormatCurrency(&v); got != "R$ 42,10" {
		t.Fatalf("FormatCurrency(42.1) = %q, want %q", got, "R$ 42,10")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4321, "-4,321"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.34", 12.34, false},
		{"12,34", 12.34, false},
		{"1.234,56", 1234.56, false},
		{"1,234.56", 1234.56, false},
		{"R$ 1.234,56", 1234.56, false},
		{"1.234.567", 1234567, false},
		{" 7 ", 7, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderTableFooterAndWidths(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTable(Table{
		Headers: []string{"Description", "Amount"},
		Rows:    [][]string{{"Pão de açúcar", "R$ 5,00"}},
		Footer:  []string{"Total", "R$ 5,00"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != want {
			t.Errorf("line %d width = %d, want %d: %q", i, w, want, l)
		}
	}
	if !strings.Contains(lines[5], "Total") {
		t.Errorf("footer line = %q, want Total", lines[5])
	}
}
