package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/model"
)

// record is the on-disk shape of one expense. The Portuguese keys are the
// layout written by the legacy browser app and are read but never written.
type record struct {
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`

	Descricao string          `json:"descricao"`
	Valor     json.RawMessage `json:"valor"`
	Categoria string          `json:"categoria"`
}

// EncodeExpenses serializes the collection as a JSON array of flat records.
func EncodeExpenses(expenses []model.Expense) ([]byte, error) {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return json.Marshal(expenses)
}

// DecodeExpenses parses a JSON array of records. Elements that are not
// objects or carry an unreadable amount are skipped and counted; the caller
// decides what to do with records that decode but fail validation.
func DecodeExpenses(data []byte) ([]model.Expense, int, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, 0, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decoding expenses: %w", err)
	}

	out := make([]model.Expense, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		e, err := decodeRecord(r)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, e)
	}
	return out, skipped, nil
}

func decodeRecord(data json.RawMessage) (model.Expense, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return model.Expense{}, err
	}

	e := model.Expense{Description: r.Description, Category: r.Category}
	if e.Description == "" {
		e.Description = r.Descricao
	}
	if e.Category == "" {
		e.Category = r.Categoria
	}
	if c, ok := model.LegacyCategory(e.Category); ok {
		e.Category = c
	}

	amount := r.Amount
	if len(amount) == 0 {
		amount = r.Valor
	}
	v, err := decodeAmount(amount)
	if err != nil {
		return model.Expense{}, err
	}
	e.Amount = v
	return e, nil
}

// decodeAmount accepts a JSON number or a numeric string.
func decodeAmount(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("amount %s: %w", raw, err)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return cli.ParseAmount(s)
}
