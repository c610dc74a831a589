package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Narrative.WagonZones["1"] != "Mid-wicket" {
		t.Fatalf("expected the built-in zone table, got %v", cfg.Narrative.WagonZones)
	}
	if cfg.Narrative.PreferredPosLabel != "Preferable batting position" {
		t.Fatalf("unexpected label: %q", cfg.Narrative.PreferredPosLabel)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: "9090"
ocr:
  base_url: http://ocr.local
  mock: true
narrative:
  wagon_zones:
    "1": Fine leg
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected the file's port, got %q", cfg.Server.Port)
	}
	if cfg.OCR.BaseURL != "http://ocr.local" || !cfg.OCR.Mock {
		t.Fatalf("unexpected ocr config: %+v", cfg.OCR)
	}
	if cfg.Narrative.WagonZones["1"] != "Fine leg" {
		t.Fatalf("expected the file's zone name, got %q", cfg.Narrative.WagonZones["1"])
	}
	// untouched defaults survive a partial file
	if cfg.OCR.TimeoutSec != 12 {
		t.Fatalf("expected the default timeout, got %d", cfg.OCR.TimeoutSec)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("USE_MOCK_OCR", "true")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected the env port to win, got %q", cfg.Server.Port)
	}
	if !cfg.OCR.Mock {
		t.Fatalf("expected USE_MOCK_OCR to enable mock mode")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
