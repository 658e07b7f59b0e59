package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
sheet_url: https://docs.google.com/spreadsheets/d/abc123/edit
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SheetURL != "https://docs.google.com/spreadsheets/d/abc123/edit" {
		t.Errorf("unexpected sheet_url: %q", cfg.SheetURL)
	}
	if cfg.PrivateKeyIDEnv != "GOOGLE_API_PRIVATE_KEY_ID" {
		t.Errorf("default private_key_id_env not applied: %q", cfg.PrivateKeyIDEnv)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}
}

func TestLoadRequiresSheetLocation(t *testing.T) {
	path := writeConfig(t, "log_level: info\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail without sheet_url or xlsx_path")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, `
xlsx_path: ./attendance.xlsx
log_level: loud
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load should reject unknown log levels")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load should fail for a missing file")
	}
}
