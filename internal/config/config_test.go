package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_UsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load("", dataDir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Storage.Path != filepath.Join(dataDir, "connoisseur.db") {
		t.Fatalf("unexpected storage path: %s", cfg.Storage.Path)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.Rating.Max != 5 {
		t.Fatalf("unexpected max rating: %d", cfg.Rating.Max)
	}
	if cfg.Sort.Default != "date" || cfg.Display.Default != "stars" || cfg.Prompt.Mode != "auto" {
		t.Fatalf("unexpected journal defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONNOISSEUR_STORAGE_PATH", "/tmp/other.db")
	t.Setenv("CONNOISSEUR_RATING_MAX", "10")
	t.Setenv("CONNOISSEUR_PROMPT_MODE", "plain")

	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.Path != "/tmp/other.db" {
		t.Fatalf("unexpected storage path: %s", cfg.Storage.Path)
	}
	if cfg.Rating.Max != 10 {
		t.Fatalf("unexpected max rating: %d", cfg.Rating.Max)
	}
	if cfg.Prompt.Mode != "plain" {
		t.Fatalf("unexpected prompt mode: %s", cfg.Prompt.Mode)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "display:\n  default: asterisks\nsort:\n  default: rating\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Display.Default != "asterisks" || cfg.Sort.Default != "rating" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "absent.yaml"), dir); err != nil {
		t.Fatalf("expected missing config file to be ignored, got %v", err)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("CONNOISSEUR_DISPLAY_DEFAULT", "hearts")

	_, err := Load("", t.TempDir())
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "display.default must be one of") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MaxRating(t *testing.T) {
	cfg := Config{
		Storage: StorageConfig{Path: "connoisseur.db"},
		Log:     LogConfig{Level: "info"},
		Rating:  RatingConfig{Max: 0},
		Sort:    SortConfig{Default: "date"},
		Display: DisplayConfig{Default: "stars"},
		Prompt:  PromptConfig{Mode: "auto"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for max rating")
	}
}
