package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cicd-ai-toolkit/diffscope/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GitHub.TokenEnv != "GITHUB_OAUTH_TOKEN" {
		t.Errorf("GitHub.TokenEnv = %q, want GITHUB_OAUTH_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Git.Dir != "." {
		t.Errorf("Git.Dir = %q, want .", cfg.Git.Dir)
	}
	if cfg.GitHub.BaseURL != "" {
		t.Errorf("GitHub.BaseURL = %q, want empty", cfg.GitHub.BaseURL)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".diffscope.yaml")
	content := `github:
  token_env: CI_GITHUB_TOKEN
git:
  dir: ./repo
exclude:
  - vendor
  - "*.pb.go"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GitHub.TokenEnv != "CI_GITHUB_TOKEN" {
		t.Errorf("GitHub.TokenEnv = %q, want CI_GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Git.Dir != "./repo" {
		t.Errorf("Git.Dir = %q, want ./repo", cfg.Git.Dir)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "vendor" || cfg.Exclude[1] != "*.pb.go" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".diffscope.yaml")
	if err := os.WriteFile(path, []byte("exclude:\n  - vendor\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_OAUTH_TOKEN" {
		t.Errorf("GitHub.TokenEnv = %q, want default", cfg.GitHub.TokenEnv)
	}
	if cfg.Git.Dir != "." {
		t.Errorf("Git.Dir = %q, want default", cfg.Git.Dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("Load() error = %v, want config error", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".diffscope.yaml")
	if err := os.WriteFile(path, []byte("github: [not: a: mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("Load() error = %v, want config error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"token env with space", func(c *Config) { c.GitHub.TokenEnv = "MY TOKEN" }, true},
		{"token env with equals", func(c *Config) { c.GitHub.TokenEnv = "TOKEN=x" }, true},
		{"empty exclude pattern", func(c *Config) { c.Exclude = []string{"vendor", "  "} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}
