// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix precedes every formatted amount.
const CurrencyPrefix = "R$ "

// FormatCurrency formats an optional amount. A nil amount renders as the
// canonical zero, "R$ 0,00".
func FormatCurrency(amount *float64) string {
	if amount == nil {
		return FormatAmount(0)
	}
	return FormatAmount(*amount)
}

// FormatAmount formats v with "." thousands grouping, "," as the decimal
// separator and exactly two fraction digits.
// e.g., 1234.5 -> "R$ 1.234,50", 0.005 -> "R$ 0,01", -1 -> "-R$ 1,00"
//
// Rounding is half away from zero on the shortest decimal representation of
// the float, so 1.005 rounds to 1,01 even though its binary value is below.
// NaN and infinities have no decimal form and render as the canonical zero.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	d := decimal.NewFromFloat(v).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + CurrencyPrefix + groupDigits(intPart, '.') + "," + frac
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10), ',')
}

func groupDigits(s string, sep byte) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(sep)
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// ParseAmount reads a user-typed amount. Both separator conventions are
// accepted: "12.34", "12,34", "1.234,56", "1,234.56" and an optional "R$"
// prefix. When only one kind of separator appears once it is the decimal
// separator; when it repeats it is grouping.
func ParseAmount(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("parsing amount %q: empty", raw)
	}

	dot := strings.LastIndexByte(s, '.')
	comma := strings.LastIndexByte(s, ',')
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case dot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	f, _ := d.Float64()
	return f, nil
}
