package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("api url = %q, want default", cfg.APIURL)
	}
	if cfg.AuditPath == "" || cfg.HistoryPath == "" {
		t.Error("default paths must be set")
	}
}

func TestFileValuesLoaded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_url: https://platform.internal\norg_key: file-org-key\nverifier_key: file-verifier-key\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != "https://platform.internal" || cfg.OrgKey != "file-org-key" {
		t.Errorf("file values not loaded: %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("org_key: file-key\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvOrgKey, "env-key")
	t.Setenv(EnvAPIURL, "https://env.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OrgKey != "env-key" || cfg.APIURL != "https://env.example" {
		t.Errorf("env must win: %+v", cfg)
	}
}

func TestInvalidYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid YAML must error")
	}
}

func TestKeyForMode(t *testing.T) {
	cfg := &Config{OrgKey: "org", VerifierKey: "ver"}

	if key, err := cfg.KeyForMode("direct"); err != nil || key != "org" {
		t.Errorf("direct: %q, %v", key, err)
	}
	if key, err := cfg.KeyForMode("shared"); err != nil || key != "ver" {
		t.Errorf("shared: %q, %v", key, err)
	}

	empty := &Config{}
	if _, err := empty.KeyForMode("direct"); err == nil || !strings.Contains(err.Error(), EnvOrgKey) {
		t.Errorf("missing org key must name the env var, got %v", err)
	}
	if _, err := empty.KeyForMode("shared"); err == nil || !strings.Contains(err.Error(), EnvVerifierKey) {
		t.Errorf("missing verifier key must name the env var, got %v", err)
	}
	if _, err := cfg.KeyForMode("peer"); err == nil {
		t.Error("unknown mode must error")
	}
}
