// Package config handles the global cygnet configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/cygnet/config.yml.
// It only concerns the CLI; the resolution pipeline itself takes explicit
// options and touches no files.
type GlobalConfig struct {
	Mailto         string            `yaml:"mailto,omitempty" json:"mailto,omitempty"`                   // Contact address for the Crossref polite pool
	DefaultFormat  string            `yaml:"default_format,omitempty" json:"default_format,omitempty"`   // Citation format when --format is omitted
	TimeoutSeconds int               `yaml:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty"` // Per-request lookup timeout
	JournalAbbrevs map[string]string `yaml:"journal_abbrevs,omitempty" json:"journal_abbrevs,omitempty"` // Extra journal abbreviation corrections
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "cygnet"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/cygnet/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Save writes the global configuration, creating the directory if needed.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	globalConfigCache = nil
	return nil
}

// GetMailto returns the polite-pool contact address from global config.
func GetMailto() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.Mailto
}

// GetDefaultFormat returns the configured default citation format,
// falling back to "bib".
func GetDefaultFormat() string {
	cfg, _ := LoadGlobalConfig()
	if cfg.DefaultFormat == "" {
		return "bib"
	}
	return cfg.DefaultFormat
}

// GetTimeoutSeconds returns the configured lookup timeout, or 0 when unset
// (callers apply their own default).
func GetTimeoutSeconds() int {
	cfg, _ := LoadGlobalConfig()
	return cfg.TimeoutSeconds
}

// GetJournalAbbrevs returns the user's journal abbreviation corrections.
func GetJournalAbbrevs() map[string]string {
	cfg, _ := LoadGlobalConfig()
	return cfg.JournalAbbrevs
}
