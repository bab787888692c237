// Package config provides configuration management for diffscope.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Project Config: ./.diffscope.yaml
// 3. User Config: $HOME/.config/diffscope/config.yaml
package config

import (
	"fmt"
	"strings"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

// Config represents the complete application configuration.
type Config struct {
	GitHub  GitHubConfig `yaml:"github"`
	Git     GitConfig    `yaml:"git"`
	Exclude []string     `yaml:"exclude,omitempty"`
}

// GitHubConfig contains GitHub API settings.
type GitHubConfig struct {
	// TokenEnv names the environment variable holding the API token.
	// Tokens themselves are never stored in config files.
	TokenEnv string `yaml:"token_env"`

	// BaseURL overrides the API endpoint for GitHub Enterprise.
	BaseURL string `yaml:"base_url,omitempty"`
}

// GitConfig contains local repository settings.
type GitConfig struct {
	// Dir is the directory to locate the repository from.
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.GitHub.TokenEnv == "" {
		cfg.GitHub.TokenEnv = "GITHUB_OAUTH_TOKEN"
	}
	if cfg.Git.Dir == "" {
		cfg.Git.Dir = "."
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.GitHub.TokenEnv != "" && strings.ContainsAny(c.GitHub.TokenEnv, " =") {
		return errors.Validation(fmt.Sprintf("github.token_env is not a valid variable name: %q", c.GitHub.TokenEnv), nil)
	}
	for _, pattern := range c.Exclude {
		if strings.TrimSpace(pattern) == "" {
			return errors.Validation("exclude contains an empty pattern", nil)
		}
	}
	return nil
}
