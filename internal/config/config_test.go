package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := DefaultConfig()
	want.General.DBPath = "/tmp/x.db"
	want.Appearance.Theme = "tokyo-night"
	want.Export.Dir = "/tmp/out"

	if err := SaveTo(path, want); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm = %o, want 600", perm)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" || cfg.Export.Title != "Expenses" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	_ = os.WriteFile(path, []byte("[general\n"), 0o600)
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDBPathPrecedence(t *testing.T) {
	t.Setenv("TALLY_DB", "")
	cfg := DefaultConfig()
	if got := DBPath(cfg); filepath.Base(got) != "tally.db" {
		t.Fatalf("default DBPath = %q", got)
	}

	cfg.General.DBPath = "/data/mine.db"
	if got := DBPath(cfg); got != "/data/mine.db" {
		t.Fatalf("config DBPath = %q", got)
	}

	t.Setenv("TALLY_DB", "/env.db")
	if got := DBPath(cfg); got != "/env.db" {
		t.Fatalf("env DBPath = %q", got)
	}
}
