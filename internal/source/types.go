package source

import "github.com/theirongolddev/tally/internal/model"

// ParseResult holds the output of parsing one import file.
type ParseResult struct {
	Path     string
	Expenses []model.Expense
	// Skipped counts records that could not be read at all.
	Skipped int
	Err     error
}

// legacyKeys are the top-level keys a browser localStorage dump may hold the
// collection under.
var legacyKeys = []string{"despesas", "expenses"}
