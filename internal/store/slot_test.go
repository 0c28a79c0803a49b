package store

import (
	"path/filepath"
	"testing"

	"github.com/theirongolddev/tally/internal/model"
)

func TestSQLiteSlotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tally.db")
	slot, err := Open(path, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = slot.Close() }()

	if _, ok, err := slot.Load(); err != nil || ok {
		t.Fatalf("Load on empty db = (ok=%v, err=%v), want (false, nil)", ok, err)
	}

	if err := slot.Save([]byte(`[1]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := slot.Save([]byte(`[2]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, ok, err := slot.Load()
	if err != nil || !ok {
		t.Fatalf("Load = (ok=%v, err=%v)", ok, err)
	}
	if string(data) != "[2]" {
		t.Fatalf("Load = %q, want %q", data, "[2]")
	}

	ts, err := slot.UpdatedAt()
	if err != nil || ts.IsZero() {
		t.Fatalf("UpdatedAt = (%v, %v)", ts, err)
	}
}

func TestSQLiteSlotPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.db")

	first, err := Open(path, DefaultKey)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.Save([]byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = first.Close()

	second, err := Open(path, DefaultKey)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = second.Close() }()

	if _, ok, err := second.Load(); err != nil || !ok {
		t.Fatalf("Load after reopen = (ok=%v, err=%v)", ok, err)
	}
}

func TestMemorySlotCopies(t *testing.T) {
	m := NewMemorySlot(nil)
	if _, ok, _ := m.Load(); ok {
		t.Fatal("new memory slot should be empty")
	}

	buf := []byte("abc")
	_ = m.Save(buf)
	buf[0] = 'x'

	got, ok, _ := m.Load()
	if !ok || string(got) != "abc" {
		t.Fatalf("Load = %q, want %q", got, "abc")
	}
}

func TestEncodeDecodeExpenses(t *testing.T) {
	in := []model.Expense{
		{Description: "Lunch", Amount: 30, Category: "Food"},
		{Description: "Movie", Amount: 20.5, Category: "Leisure"},
	}
	data, err := EncodeExpenses(in)
	if err != nil {
		t.Fatalf("EncodeExpenses: %v", err)
	}
	want := `[{"description":"Lunch","amount":30,"category":"Food"},{"description":"Movie","amount":20.5,"category":"Leisure"}]`
	if string(data) != want {
		t.Fatalf("EncodeExpenses = %s, want %s", data, want)
	}

	out, skipped, err := DecodeExpenses(data)
	if err != nil || skipped != 0 {
		t.Fatalf("DecodeExpenses = (skipped=%d, err=%v)", skipped, err)
	}
	if len(out) != 2 || out[1] != in[1] {
		t.Fatalf("DecodeExpenses = %+v", out)
	}
}

func TestEncodeEmptyIsArray(t *testing.T) {
	data, _ := EncodeExpenses(nil)
	if string(data) != "[]" {
		t.Fatalf("EncodeExpenses(nil) = %s, want []", data)
	}
}

func TestDecodeLegacyAndMixed(t *testing.T) {
	data := []byte(`[
		{"descricao":"Feira","valor":42.5,"categoria":"Food"},
		{"description":"Taxi","amount":"12,30","category":"Other"},
		"garbage",
		{"description":"Broken","amount":{"x":1},"category":"Home"}
	]`)
	out, skipped, err := DecodeExpenses(data)
	if err != nil {
		t.Fatalf("DecodeExpenses: %v", err)
	}
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Description != "Feira" || out[0].Amount != 42.5 || out[0].Category != "Food" {
		t.Fatalf("legacy record = %+v", out[0])
	}
	if out[1].Amount != 12.3 {
		t.Fatalf("string amount = %v, want 12.3", out[1].Amount)
	}
}

func TestDecodeTranslatesLegacyCategories(t *testing.T) {
	data := []byte(`[
		{"descricao":"Consulta","valor":150,"categoria":"Saúde"},
		{"description":"Fatura","amount":900,"category":"Cartão de Crédito"},
		{"description":"Cinema","amount":30,"category":"Leisure"}
	]`)
	out, _, err := DecodeExpenses(data)
	if err != nil {
		t.Fatalf("DecodeExpenses: %v", err)
	}
	want := []string{"Health", "Credit Card", "Leisure"}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i, c := range want {
		if out[i].Category != c {
			t.Errorf("out[%d].Category = %q, want %q", i, out[i].Category, c)
		}
	}
}

func TestDecodeNotArray(t *testing.T) {
	if _, _, err := DecodeExpenses([]byte(`{"a":1}`)); err == nil {
		t.Fatal("expected error for non-array payload")
	}
	out, _, err := DecodeExpenses(nil)
	if err != nil || out != nil {
		t.Fatalf("DecodeExpenses(nil) = (%v, %v)", out, err)
	}
}
