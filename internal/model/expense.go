// Package model defines domain types for tally expenses and their summaries.
package model

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Expense is a single recorded outlay. It is a value type and is always
// replaced whole.
type Expense struct {
	Description string  `json:"description" yaml:"description"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Category    string  `json:"category" yaml:"category"`
}

// Entry is an Expense as held by the store, tagged with an ID that stays
// stable across insertions and removals of other entries.
type Entry struct {
	ID uint64
	Expense
}

// Categories is the fixed, ordered set of selectable categories. Its order
// is also the chart axis order.
var Categories = []string{
	"Food",
	"Country House",
	"Health",
	"Leisure",
	"Home",
	"Credit Card",
	"Other",
}

// IsCategory reports whether name is an exact member of Categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// legacyCategories maps the labels written by the legacy browser app to
// members of Categories.
var legacyCategories = map[string]string{
	"Alimentação":       "Food",
	"Chácara":           "Country House",
	"Saúde":             "Health",
	"Lazer":             "Leisure",
	"Casa":              "Home",
	"Cartão de Crédito": "Credit Card",
	"Outros":            "Other",
}

// LegacyCategory translates a label written by the legacy browser app.
func LegacyCategory(label string) (string, bool) {
	c, ok := legacyCategories[label]
	return c, ok
}

// ResolveCategory maps user input to a member of Categories. Exact matches
// win, then case-insensitive ones, then the closest fuzzy match. It returns
// false when nothing matches.
func ResolveCategory(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if IsCategory(input) {
		return input, true
	}
	for _, c := range Categories {
		if strings.EqualFold(c, input) {
			return c, true
		}
	}

	ranks := fuzzy.RankFindFold(input, Categories)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}

// Criteria narrows a list of expenses. Empty fields are treated as absent.
type Criteria struct {
	Description string
	Category    string
}

// Empty reports whether no filter is active.
func (c Criteria) Empty() bool {
	return c.Description == "" && c.Category == ""
}
