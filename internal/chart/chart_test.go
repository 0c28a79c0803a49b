package chart

import (
	"testing"

	"github.com/theirongolddev/tally/internal/model"
)

func TestPalette(t *testing.T) {
	got := Palette(3)
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Palette(3)[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if len(Palette(0)) != 0 {
		t.Fatal("Palette(0) should be empty")
	}
}

func TestFromSummary(t *testing.T) {
	s := model.Summary{
		ByCategory: []model.CategoryTotal{{Category: "Food", Amount: 10}, {Category: "Health", Amount: 0}, {Category: "Home", Amount: 4}},
		Total:      14,
	}
	spec := FromSummary(s)

	if len(spec.Labels) != 3 || spec.Labels[2] != "Home" {
		t.Fatalf("Labels = %v", spec.Labels)
	}
	if len(spec.Series) != 1 {
		t.Fatalf("len(Series) = %d, want 1", len(spec.Series))
	}
	series := spec.Series[0]
	if series.Name != SeriesName {
		t.Fatalf("Name = %q", series.Name)
	}
	if len(series.Values) != 3 || series.Values[0] != 10 || series.Values[1] != 0 {
		t.Fatalf("Values = %v", series.Values)
	}
	if len(series.CSS) != 3 || series.CSS[1] != "hsl(120, 100%, 50%)" {
		t.Fatalf("CSS = %v", series.CSS)
	}
	if len(series.Colors) != 3 {
		t.Fatalf("Colors = %v", series.Colors)
	}
	if spec.Max() != 10 {
		t.Fatalf("Max = %v, want 10", spec.Max())
	}
}

func TestCSS(t *testing.T) {
	if got := CSS(0, 7); got != "hsl(0, 100%, 50%)" {
		t.Fatalf("CSS(0, 7) = %q", got)
	}
	if got := CSS(2, 4); got != "hsl(180, 100%, 50%)" {
		t.Fatalf("CSS(2, 4) = %q", got)
	}
}
