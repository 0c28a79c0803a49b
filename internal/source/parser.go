// Package source reads expense collections exported from other places,
// such as a browser localStorage dump of the legacy web app.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"
)

// ParseFile reads one import file. See Parse for the accepted layouts.
func ParseFile(path string, logger *log.Logger) ParseResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{Path: path, Err: err}
	}
	res := Parse(data, logger)
	res.Path = path
	return res
}

// Parse accepts three layouts:
//   - a JSON array of records
//   - an object keyed by "despesas" or "expenses" holding that array
//   - the same object with the array stored as a JSON string, which is how
//     localStorage keeps values
//
// Legacy category labels are translated while decoding; other labels are
// resolved against the category set and left as is when nothing matches.
func Parse(data []byte, logger *log.Logger) ParseResult {
	payload, err := unwrap(bytes.TrimSpace(data))
	if err != nil {
		return ParseResult{Err: err}
	}

	expenses, skipped, err := store.DecodeExpenses(payload)
	if err != nil {
		return ParseResult{Err: err}
	}

	for i := range expenses {
		expenses[i].Category = translateCategory(expenses[i].Category, logger)
	}
	if skipped > 0 && logger != nil {
		logger.Warn("skipped unreadable records", "count", skipped)
	}
	return ParseResult{Expenses: expenses, Skipped: skipped}
}

func unwrap(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	if data[0] == '[' {
		return data, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing import: %w", err)
	}
	for _, key := range legacyKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '"' {
			var inner string
			if err := json.Unmarshal(raw, &inner); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", key, err)
			}
			return []byte(inner), nil
		}
		return raw, nil
	}
	return nil, fmt.Errorf("no expense list found (looked for %v)", legacyKeys)
}

func translateCategory(c string, logger *log.Logger) string {
	if model.IsCategory(c) {
		return c
	}
	if resolved, ok := model.ResolveCategory(c); ok {
		if logger != nil {
			logger.Debug("resolved category", "from", c, "to", resolved)
		}
		return resolved
	}
	return c
}
