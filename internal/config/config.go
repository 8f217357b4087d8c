// Package config handles the fleet CLI configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat fleet configuration.
type Config struct {
	Version     string `json:"version"`
	DefaultSite string `json:"default_site,omitempty"` // site used when asset registration gives none
	Depot       string `json:"depot,omitempty"`        // operator's home depot, shown in listings
}

// Dir returns the fleet configuration directory, honoring FLEET_HOME.
func Dir() (string, error) {
	if home := os.Getenv("FLEET_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".fleet"), nil
}

// LoadConfig reads config.json from the fleet configuration directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the fleet configuration directory.
func SaveConfig(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
