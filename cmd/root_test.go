package cmd

import (
	"errors"
	"testing"

	"github.com/theirongolddev/tally/internal/ledger"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"12", 11, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"two", 0, true},
	}
	for _, tt := range tests {
		got, err := parseIndex(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseIndex(%q) err = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseIndex(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	if got, err := resolveCategory(""); err != nil || got != "" {
		t.Errorf(`resolveCategory("") = %q, %v`, got, err)
	}
	if got, err := resolveCategory("food"); err != nil || got != "Food" {
		t.Errorf(`resolveCategory("food") = %q, %v; want Food`, got, err)
	}
	if _, err := resolveCategory("zzzz"); !errors.Is(err, ledger.ErrUnknownCategory) {
		t.Errorf(`resolveCategory("zzzz") err = %v, want ErrUnknownCategory`, err)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"list", "add", "edit", "rm", "chart", "total", "export", "import", "config", "tui"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
