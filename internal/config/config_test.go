package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pointConfigAt redirects the XDG config dir to a temp dir for the test.
func pointConfigAt(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "paisa", "config.toml")
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	pointConfigAt(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("Currency = %q, want ₹", cfg.General.Currency)
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Errorf("Model = %q, want gemini-1.5-flash", cfg.Gemini.Model)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := pointConfigAt(t)

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.Gemini.APIKey = "test-key"
	cfg.News.Feeds = []Feed{{Name: "Test Feed", URL: "https://example.com/rss"}}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", loaded.General.Currency)
	}
	if loaded.Gemini.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", loaded.Gemini.APIKey)
	}
	if len(loaded.News.Feeds) != 1 || loaded.News.Feeds[0].Name != "Test Feed" {
		t.Errorf("feeds = %+v, want the saved feed", loaded.News.Feeds)
	}
}

func TestGetAPIKey_EnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "from-config"

	t.Setenv(EnvAPIKey, "from-env")
	if got := GetAPIKey(cfg); got != "from-env" {
		t.Errorf("GetAPIKey = %q, want from-env", got)
	}

	t.Setenv(EnvAPIKey, "")
	if got := GetAPIKey(cfg); got != "from-config" {
		t.Errorf("GetAPIKey = %q, want from-config", got)
	}
}
