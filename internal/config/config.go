// Package config persists smf settings in $XDG_CONFIG_HOME/smf/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "smf"

// Config represents the application configuration
type Config struct {
	AWSCLI  string `yaml:"aws_cli,omitempty"`  // aws executable, default "aws"
	Profile string `yaml:"profile,omitempty"`  // passed as --profile
	Region  string `yaml:"region,omitempty"`   // passed as --region
	Editor  string `yaml:"editor,omitempty"`   // overrides VISUAL/EDITOR
	NoFuzzy bool   `yaml:"no_fuzzy,omitempty"` // numbered picker instead of fuzzy
}

// GetConfigDir returns the config directory, honouring XDG_CONFIG_HOME
func GetConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// LoadConfig loads the configuration. A missing file yields an empty config.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigPath())
}

// LoadConfigFrom loads the configuration from path
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes the configuration, creating the directory if needed
func SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(GetConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(GetConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetProfile saves profileName as the default AWS profile
func SetProfile(profileName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cfg.Profile = profileName
	return SaveConfig(cfg)
}

// GetSavedProfile returns the saved AWS profile, or "" if none
func GetSavedProfile() string {
	cfg, err := LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.Profile
}
