// Package config loads and saves paisa configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable checked for the Gemini API key.
// It always wins over the config file.
const EnvAPIKey = "GEMINI_API_KEY"

// Config holds all paisa configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Gemini     GeminiConfig     `toml:"gemini"`
	News       NewsConfig       `toml:"news"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency      string `toml:"currency"`
	DefaultTicker string `toml:"default_ticker,omitempty"`
}

// GeminiConfig holds the generative-AI endpoint settings.
type GeminiConfig struct {
	APIKey  string `toml:"api_key,omitempty"`
	Model   string `toml:"model,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// NewsConfig holds the RSS feed list. Empty means the built-in defaults.
type NewsConfig struct {
	Feeds []Feed `toml:"feeds,omitempty"`
}

// Feed is one RSS source.
type Feed struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:      "₹",
			DefaultTicker: "RELIANCE.NS",
		},
		Gemini: GeminiConfig{
			Model: "gemini-1.5-flash",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paisa")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "paisa")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// LoadDotEnv reads a .env file from the working directory into the
// process environment, if one exists. Missing files are not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// GetAPIKey returns the Gemini key from the env var or config, in that order.
func GetAPIKey(cfg Config) string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return cfg.Gemini.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
