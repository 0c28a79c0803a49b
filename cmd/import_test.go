package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/store"
)

func writeImportFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "despesas.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestImportDryRunMatchesRealRun(t *testing.T) {
	path := writeImportFile(t, `[
		{"descricao":"Almoço","valor":7,"categoria":"Alimentação"},
		{"descricao":"Mystery","valor":5,"categoria":"zzzz"},
		{"descricao":"   ","valor":3,"categoria":"Lazer"},
		{"descricao":"Refund","valor":-4,"categoria":"Outros"}
	]`)
	logger := log.New(io.Discard)

	tests := []struct {
		name   string
		dryRun bool
	}{
		{"dry run", true},
		{"real run", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ledger.New(store.NewMemorySlot(nil))
			if err != nil {
				t.Fatalf("ledger.New: %v", err)
			}
			st := importFiles(s, []string{path}, tt.dryRun, logger)
			if st.added != 1 || st.rejected != 3 || st.unreadable != 0 {
				t.Fatalf("stats = %+v, want added=1 rejected=3", st)
			}
			if st.total != 7 {
				t.Errorf("total = %v, want 7", st.total)
			}
			if st.saveErr != nil {
				t.Errorf("saveErr = %v", st.saveErr)
			}

			wantLen := 1
			if tt.dryRun {
				wantLen = 0
			}
			if s.Len() != wantLen {
				t.Errorf("Len = %d, want %d", s.Len(), wantLen)
			}
			if !tt.dryRun && s.List()[0].Category != "Food" {
				t.Errorf("Category = %q, want Food", s.List()[0].Category)
			}
		})
	}
}

func TestImportCountsUnreadableFiles(t *testing.T) {
	good := writeImportFile(t, `[{"description":"Taxi","amount":12.3,"category":"Other"}]`)
	bad := writeImportFile(t, `{"nothing":"here"}`)

	s, err := ledger.New(store.NewMemorySlot(nil))
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}
	st := importFiles(s, []string{good, bad}, false, log.New(io.Discard))
	if st.added != 1 || st.unreadable != 1 {
		t.Fatalf("stats = %+v, want added=1 unreadable=1", st)
	}
}
