package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	AppName  = "claude-profile"
	fileName = "config.json"
)

// Config is the persisted CLI state.
type Config struct {
	Repository  string    `json:"repository,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitzero"`
}

// HasRepository reports whether a profile repository has been configured.
func (c Config) HasRepository() bool {
	return c.Repository != ""
}

// DefaultPath returns the location of the config file in the user's config dir.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, AppName, fileName)
}

// Load reads the config at path. A missing file yields the zero Config and
// is not created.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save stamps LastUpdated and writes cfg to path.
func Save(path string, cfg Config) (Config, error) {
	cfg.LastUpdated = time.Now().UTC().Truncate(time.Second)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return cfg, fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cfg, fmt.Errorf("error creating config directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return cfg, fmt.Errorf("error writing config file: %w", err)
	}

	return cfg, nil
}

// Clear removes the config file. Clearing a missing file is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing config file: %w", err)
	}
	return nil
}
