// Package appconfig manages application configuration and runtime file paths.
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OutputConfig controls how the list command renders.
type OutputConfig struct {
	// Style is "auto", "plain", or "rich". Auto picks the rich renderer
	// only when stdout is a terminal.
	Style string `yaml:"style"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Config holds application-level configuration.
type Config struct {
	// ProfilesPath is the profiles file hostbook edits.
	ProfilesPath string       `yaml:"profiles_path"`
	Output       OutputConfig `yaml:"output"`
	Log          LogConfig    `yaml:"log"`
}

// Default returns the default configuration. The profiles path defaults to
// the conventional SSH client config location.
func Default() Config {
	cfg := Config{
		Output: OutputConfig{Style: "auto"},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.ProfilesPath = filepath.Join(home, ".ssh", "config")
	}
	return cfg
}

// ConfigDir returns the application config directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/hostbook.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hostbook"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, ".config", "hostbook"), nil
}

// Load reads config.yaml from the config directory.
// If the file doesn't exist, creates it with defaults.
func Load() (Config, error) {
	d, err := ConfigDir()
	if err != nil {
		return Config{}, err
	}
	if err := os.MkdirAll(d, 0o700); err != nil {
		return Config{}, err
	}
	path := filepath.Join(d, "config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ProfilesPath == "" {
		cfg.ProfilesPath = Default().ProfilesPath
	}
	switch cfg.Output.Style {
	case "auto", "plain", "rich":
	default:
		cfg.Output.Style = "auto"
	}
	return cfg, nil
}

// Save writes config to config.yaml.
func Save(cfg Config) error {
	d, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d, 0o700); err != nil {
		return err
	}
	path := filepath.Join(d, "config.yaml")
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
