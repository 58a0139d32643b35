// Package config loads pyc's YAML configuration (spec.md §6) into a
// typed value. It is an out-of-core collaborator: the shell-bridge core
// never parses YAML itself, it only reads the Config values this
// package produces.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns $HOME/.config/pyc/pyc.yml, the default config
// location spec.md §6 documents.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pyc", "pyc.yml"), nil
}

// HistoryPath returns $HOME/.config/pyc/pyc_history.
func HistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pyc", "pyc_history"), nil
}

// Load reads and decodes the YAML config at path, applying documented
// defaults to anything left unset. An empty path resolves to
// DefaultPath(); a missing file at the default path is not an error —
// pyc runs on defaults alone.
func Load(path string) (*Config, error) {
	usedDefault := false
	if path == "" {
		def, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = def
		usedDefault = true
	}

	f, err := os.Open(path)
	if err != nil {
		if usedDefault && os.IsNotExist(err) {
			cfg := applyDefaults(Config{})
			return &cfg, nil
		}
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg = applyDefaults(cfg)
	return &cfg, nil
}
