// Package chart builds the data handed to bar-chart surfaces.
package chart

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/theirongolddev/tally/internal/model"
)

// SeriesName labels the single expense series.
const SeriesName = "Expenses"

// Series is one named run of values with a color per bar. Colors are hex;
// CSS holds the same colors in hsl() notation for web surfaces.
type Series struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
	Colors []string  `json:"colors" yaml:"colors"`
	CSS    []string  `json:"css" yaml:"css"`
}

// Spec is everything a chart surface needs: category labels and the series
// whose values line up with them.
type Spec struct {
	Labels []string `json:"labels" yaml:"labels"`
	Series []Series `json:"series" yaml:"series"`
}

// FromSummary turns an aggregation into a single-series spec, one bar per
// category in category order.
func FromSummary(s model.Summary) Spec {
	return Spec{
		Labels: s.Labels(),
		Series: []Series{{
			Name:   SeriesName,
			Values: s.Amounts(),
			Colors: Palette(len(s.ByCategory)),
			CSS:    cssPalette(len(s.ByCategory)),
		}},
	}
}

// Palette returns n hex colors evenly spaced around the hue wheel at full
// saturation and half lightness: hsl(i*360/n, 100%, 50%).
func Palette(n int) []string {
	out := make([]string, n)
	for i := range out {
		hue := float64(i) * 360 / float64(n)
		out[i] = colorful.Hsl(hue, 1, 0.5).Hex()
	}
	return out
}

func cssPalette(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = CSS(i, n)
	}
	return out
}

// CSS returns the hsl() notation for bar i of n.
func CSS(i, n int) string {
	if n <= 0 {
		return "hsl(0, 100%, 50%)"
	}
	return fmt.Sprintf("hsl(%g, 100%%, 50%%)", float64(i)*360/float64(n))
}

// Max returns the largest value across all series, or 0.
func (s Spec) Max() float64 {
	var m float64
	for _, series := range s.Series {
		for _, v := range series.Values {
			if v > m {
				m = v
			}
		}
	}
	return m
}
