package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

// Default config file names to search for
var defaultConfigFiles = []string{
	".diffscope.yaml",
	".diffscope.yml",
	"diffscope.yaml",
	"diffscope.yml",
}

// Load loads configuration from a specific file path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Config(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Config("config validation failed", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadDefault searches for and loads configuration from default locations.
// Search order:
// 1. Current directory
// 2. $HOME/.config/diffscope/
// Returns the default configuration when no file is found.
func LoadDefault() (*Config, error) {
	for _, name := range defaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return Load(name)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "diffscope", "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return Default(), nil
}
