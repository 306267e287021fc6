package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound)
// and fall back to built-in defaults.
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the optional per-project configuration loaded from
// datacommons.yaml. Every field may be empty; resolution against flags,
// environment variables, and built-in defaults happens in the CLI layer.
type ProjectConfig struct {
	// Store is the registry file path used when no --store flag and no
	// DATACOMMONS_STORE variable is set.
	Store string `yaml:"store,omitempty"`

	// DefaultLimit overrides the page size of the list command.
	DefaultLimit int `yaml:"default_limit,omitempty"`

	// DefaultLicense is applied to registered records that carry none.
	DefaultLicense string `yaml:"default_license,omitempty"`

	// DefaultTags are appended to registered records that carry no tags.
	DefaultTags []string `yaml:"default_tags,omitempty"`
}

const ConfigFileName = "datacommons.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.DefaultLimit < 0 {
		return nil, fmt.Errorf("default_limit cannot be negative: %d", cfg.DefaultLimit)
	}
	return &cfg, nil
}
