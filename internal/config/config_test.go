package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "homebrew.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte("max_level: 10\n"), 0644))

	path := filepath.Join(dir, "sheet.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
rules:
  path: `+rulesPath+`
output:
  format: yaml
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, rulesPath, cfg.Rules.Path)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "", cfg.Rules.Path)
	assert.Equal(t, "", cfg.Catalog.Dir)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHEET_OUTPUT_FORMAT", "json")
	t.Setenv("SHEET_LOGGING_LEVEL", "error")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper(t *testing.T) {
	v := New()
	v.Set("output.format", "yaml")
	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)

	v.Set("output.format", "html")
	_, err = LoadFromViper(v)
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateRulesPath(t *testing.T) {
	cfg := validConfig()
	cfg.Rules.Path = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Error(t, cfg.Validate())

	cfg.Rules.Path = t.TempDir()
	assert.Error(t, cfg.Validate())
}

func TestValidateCatalogDir(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.Dir = t.TempDir()
	assert.NoError(t, cfg.Validate())

	cfg.Catalog.Dir = filepath.Join(t.TempDir(), "missing")
	assert.ErrorContains(t, cfg.Validate(), "catalog.dir")

	file := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(file, []byte("id: x\n"), 0644))
	cfg.Catalog.Dir = file
	assert.ErrorContains(t, cfg.Validate(), "not a directory")
}

func TestLoadCatalogEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHEET_CATALOG_DIR", dir)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Catalog.Dir)
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := Config{
		Logging: LoggingConfig{Level: "loud", Format: "xml"},
		Output:  OutputConfig{Format: "pdf"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "output.format")
}

// Property-based tests

func TestPropertyUnknownOutputFormatRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		format := rapid.StringMatching(`[a-z]{1,8}`).Filter(func(s string) bool {
			return s != "table" && s != "json" && s != "yaml"
		}).Draw(t, "format")
		cfg := validConfig()
		cfg.Output.Format = format
		if err := cfg.Validate(); err == nil {
			t.Fatalf("output format %q accepted", format)
		}
	})
}
