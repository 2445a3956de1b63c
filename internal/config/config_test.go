package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RosterURL != defaultRosterURL {
		t.Fatalf("RosterURL = %q, want default", cfg.RosterURL)
	}
	if cfg.FetchTimeout != defaultTimeoutSeconds*time.Second {
		t.Fatalf("FetchTimeout = %v, want %ds", cfg.FetchTimeout, defaultTimeoutSeconds)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "roster_url = \"https://daycare.example.com/dogs\"\nfetch_timeout_seconds = 3\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RosterURL != "https://daycare.example.com/dogs" {
		t.Fatalf("RosterURL = %q, want configured value", cfg.RosterURL)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Fatalf("FetchTimeout = %v, want 3s", cfg.FetchTimeout)
	}
}

func TestLoad_EmptyFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("roster_url = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RosterURL != defaultRosterURL {
		t.Fatalf("RosterURL = %q, want default", cfg.RosterURL)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("roster_url = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load returned nil error for invalid TOML, want error")
	}
}
