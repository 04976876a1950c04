package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosa.toml")
	cfg := Default()
	cfg.Entry.File = "app.rosa"
	cfg.VM.StackBytes = 8192
	cfg.Output.Color = ColorAlways
	cfg.Output.Context = 3
	cfg.Trace.Level = "debug"

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadPartialOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosa.toml")
	if err := os.WriteFile(path, []byte("[vm]\nstack_bytes = 2048\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.VM.StackBytes != 2048 {
		t.Errorf("VM.StackBytes = %d, want 2048", cfg.VM.StackBytes)
	}
	if cfg.Entry.File != "main.rosa" {
		t.Errorf("Entry.File = %q, want default main.rosa", cfg.Entry.File)
	}
}
