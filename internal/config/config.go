package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GuestSeed is the plan seed used when no user identity is configured.
// This is a user-visible contract: the guest plan for a given day must be
// the same on every device.
const GuestSeed = "guest"

// Config holds app settings. Values come from defaults, then the YAML
// config file, then environment variables.
type Config struct {
	Language    string `yaml:"language"`
	DBPath      string `yaml:"db_path"`
	CatalogPath string `yaml:"catalog_path"`
	UserSeed    string `yaml:"user_seed"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Language: "ua",
		UserSeed: GuestSeed,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".treebuddy.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file is absent, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if !ValidLanguage(cfg.Language) {
		return Config{}, fmt.Errorf("config: unsupported language %q (want ua or en)", cfg.Language)
	}
	if cfg.UserSeed == "" {
		cfg.UserSeed = GuestSeed
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TREEBUDDY_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("TREEBUDDY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TREEBUDDY_SEED"); v != "" {
		cfg.UserSeed = v
	}
}

// ValidLanguage reports whether lang is a supported language code.
func ValidLanguage(lang string) bool {
	return lang == "ua" || lang == "en"
}
