// Package pipeline derives views from the expense collection: category
// aggregation and text filtering.
package pipeline

import (
	"strings"

	"github.com/theirongolddev/tally/internal/model"
)

// AggregateByCategory sums amounts per category, in the order given by
// categories, and the grand total across all expenses. Categories without
// expenses appear with a zero sum. Expenses whose category is not listed
// still count toward the total.
func AggregateByCategory(expenses []model.Expense, categories []string) model.Summary {
	idx := make(map[string]int, len(categories))
	byCat := make([]model.CategoryTotal, len(categories))
	for i, c := range categories {
		byCat[i] = model.CategoryTotal{Category: c}
		if _, dup := idx[c]; !dup {
			idx[c] = i
		}
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
		if i, ok := idx[e.Category]; ok {
			byCat[i].Amount += e.Amount
		}
	}

	return model.Summary{ByCategory: byCat, Total: total}
}

// Matches reports whether e satisfies c. The description criterion is a
// case-insensitive substring test; the category criterion is exact.
func Matches(e model.Expense, c model.Criteria) bool {
	if c.Description != "" && !containsIgnoreCase(e.Description, c.Description) {
		return false
	}
	if c.Category != "" && e.Category != c.Category {
		return false
	}
	return true
}

// Filter returns the expenses matching c, in order.
func Filter(expenses []model.Expense, c model.Criteria) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if Matches(e, c) {
			out = append(out, e)
		}
	}
	return out
}

// FilterIndices returns the positions of the expenses matching c so a
// filtered row can be mapped back to its index in the full collection.
func FilterIndices(expenses []model.Expense, c model.Criteria) []int {
	out := make([]int, 0, len(expenses))
	for i, e := range expenses {
		if Matches(e, c) {
			out = append(out, i)
		}
	}
	return out
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
