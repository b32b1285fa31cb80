package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CatalogPath != "products.txt" {
		t.Errorf("expected CatalogPath products.txt, got %s", cfg.CatalogPath)
	}
	if cfg.CustomerName != "John Doe" {
		t.Errorf("expected CustomerName John Doe, got %s", cfg.CustomerName)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected LogLevel warn, got %s", cfg.LogLevel)
	}
	if cfg.MetricsFile != "" {
		t.Errorf("expected empty MetricsFile, got %s", cfg.MetricsFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must be valid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(c *Config)
	}{
		{name: "empty catalog path", mut: func(c *Config) { c.CatalogPath = " " }},
		{name: "empty customer", mut: func(c *Config) { c.CustomerName = "" }},
		{name: "bad log level", mut: func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigFile_Overlay(t *testing.T) {
	path := writeFile(t, "shopcart.yaml", "catalog_path: /srv/catalog.txt\nlog_level: debug\n")

	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, "/srv/catalog.txt", cfg.CatalogPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "John Doe", cfg.CustomerName, "keys absent from the file keep base values")
}

func TestLoadConfigFile_Empty(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "unknown key", content: "catalog: x\n"},
		{name: "broken yaml", content: "catalog_path: [\n"},
		{name: "invalid value", content: "log_level: shout\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", tc.content)
			cfg, err := LoadConfigFile(path, DefaultConfig())
			require.Error(t, err)
			require.Equal(t, DefaultConfig(), cfg)
		})
	}

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), DefaultConfig())
	require.Error(t, err)
}
