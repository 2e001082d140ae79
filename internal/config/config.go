// Package config loads journal settings from the environment, an optional
// .env file and an optional YAML config file. Environment variables always
// win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rapjournal/internal/ledger"
)

// FileName is the per-user config file looked up in the home directory.
const FileName = ".rapjournal.yaml"

// Config is everything the CLI needs to reach and interpret the journal.
type Config struct {
	Token    string `yaml:"token"`
	Repo     string `yaml:"repo"` // "owner/name"
	Path     string `yaml:"path"`
	Timezone string `yaml:"timezone"`
	APIURL   string `yaml:"api_url"`
	LocalDB  string `yaml:"local_db"`
	Catalog  string `yaml:"catalog"`
	Debug    bool   `yaml:"debug"`
}

// Load reads the config file (if any), overlays a .env file from the
// working directory (if any), then overlays the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		Path:     "history.txt",
		Timezone: ledger.DefaultTimezone,
	}

	if path, err := defaultFilePath(); err == nil {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	_ = godotenv.Load()

	overlay(&cfg.Token, "RJ_GITHUB_TOKEN")
	overlay(&cfg.Repo, "RJ_REPO")
	overlay(&cfg.Path, "RJ_PATH")
	overlay(&cfg.Timezone, "RJ_TIMEZONE")
	overlay(&cfg.APIURL, "RJ_API_URL")
	overlay(&cfg.LocalDB, "RJ_LOCAL_DB")
	overlay(&cfg.Catalog, "RJ_CATALOG")
	if v := os.Getenv("RJ_DEBUG"); v == "1" || strings.EqualFold(v, "true") {
		cfg.Debug = true
	}

	return cfg, nil
}

func defaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// UseLocal reports whether the journal lives in the local database instead
// of a remote repository.
func (c *Config) UseLocal() bool {
	return c.LocalDB != ""
}

// Validate checks that exactly enough is configured to reach a journal.
func (c *Config) Validate() error {
	if c.UseLocal() {
		return nil
	}
	var missing []string
	if c.Token == "" {
		missing = append(missing, "RJ_GITHUB_TOKEN")
	}
	if c.Repo == "" {
		missing = append(missing, "RJ_REPO")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s (or set RJ_LOCAL_DB for a local journal)", strings.Join(missing, ", "))
	}
	if !strings.Contains(c.Repo, "/") {
		return fmt.Errorf("RJ_REPO must be owner/name, got %q", c.Repo)
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return ledger.DefaultLocation(), nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
