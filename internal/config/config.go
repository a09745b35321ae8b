// Package config loads veriproof configuration: platform endpoint,
// organization-scoped API keys, and local data paths. Environment variables
// take precedence over the YAML file; a missing file yields defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables, checked before the config file.
const (
	EnvAPIURL      = "VERIPROOF_API_URL"
	EnvOrgKey      = "VERIPROOF_ORG_KEY"
	EnvVerifierKey = "VERIPROOF_VERIFIER_KEY"
)

// DefaultAPIURL is the hosted platform endpoint.
const DefaultAPIURL = "https://api.attestia.io"

// Config holds all runtime settings.
type Config struct {
	APIURL      string `yaml:"api_url"`
	OrgKey      string `yaml:"org_key"`
	VerifierKey string `yaml:"verifier_key"`
	AuditPath   string `yaml:"audit_path"`
	HistoryPath string `yaml:"history_path"`
}

// Load reads configuration from path. Empty path falls back to
// ~/.veriproof/config.yaml. A missing file returns defaults; invalid YAML
// returns an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".veriproof", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvOrgKey); v != "" {
		cfg.OrgKey = v
	}
	if v := os.Getenv(EnvVerifierKey); v != "" {
		cfg.VerifierKey = v
	}

	return cfg, nil
}

func defaults() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".veriproof")
	return &Config{
		APIURL:      DefaultAPIURL,
		AuditPath:   filepath.Join(dir, "decisions.jsonl"),
		HistoryPath: filepath.Join(dir, "history.db"),
	}
}

// KeyForMode returns the API key for the given orchestration variant:
// the owning organization's key for direct runs, the verifier key for
// shared runs. A missing key is a configuration error, reported before any
// network access.
func (c *Config) KeyForMode(mode string) (string, error) {
	switch mode {
	case "direct":
		if c.OrgKey == "" {
			return "", fmt.Errorf("missing organization API key: set %s or org_key in the config file", EnvOrgKey)
		}
		return c.OrgKey, nil
	case "shared":
		if c.VerifierKey == "" {
			return "", fmt.Errorf("missing verifier API key: set %s or verifier_key in the config file", EnvVerifierKey)
		}
		return c.VerifierKey, nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}
