package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mcpcatalog/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mcpcatalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("should run configless with all defaults", func(t *testing.T) {
		t.Parallel()

		// when
		cfg := config.Default()

		// then
		assert.Equal(t, []string{"gemini", "codex", "claude"}, cfg.Agents.Preference)
		assert.Equal(t, 300, cfg.Agents.TimeoutSeconds)
		assert.Equal(t, "auto", cfg.Ingestion.Strategy)
		assert.Equal(t, 60, cfg.Ingestion.SummaryTimeoutSeconds)
		assert.Equal(t, 120, cfg.Ingestion.FilesTimeoutSeconds)
		assert.Equal(t, config.DefaultTemplatePath, cfg.Template)
		assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
	})
}

func TestLoad(t *testing.T) {
	// no t.Parallel: the env-expansion subtest uses t.Setenv, which
	// forbids a parallel parent
	t.Run("should load a full configuration file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
agents:
  preference: [codex, gemini]
  timeout_seconds: 120
ingestion:
  strategy: local
  summary_timeout_seconds: 10
  files_timeout_seconds: 20
template: custom/_template.json
output_dir: out
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"codex", "gemini"}, cfg.Agents.Preference)
		assert.Equal(t, 120, cfg.Agents.TimeoutSeconds)
		assert.Equal(t, "local", cfg.Ingestion.Strategy)
		assert.Equal(t, 10, cfg.Ingestion.SummaryTimeoutSeconds)
		assert.Equal(t, 20, cfg.Ingestion.FilesTimeoutSeconds)
		assert.Equal(t, "custom/_template.json", cfg.Template)
		assert.Equal(t, "out", cfg.OutputDir)
	})

	t.Run("should fill unset values with defaults", func(t *testing.T) {
		t.Parallel()

		// given a file setting only the output directory
		path := writeConfig(t, "output_dir: elsewhere\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "elsewhere", cfg.OutputDir)
		assert.Equal(t, []string{"gemini", "codex", "claude"}, cfg.Agents.Preference)
		assert.Equal(t, "auto", cfg.Ingestion.Strategy)
		assert.Equal(t, config.DefaultTemplatePath, cfg.Template)
	})

	t.Run("should expand environment variables in paths", func(t *testing.T) {
		// given (no t.Parallel: mutates the environment)
		t.Setenv("CATALOG_BASE", "/srv/catalog")
		path := writeConfig(t, "output_dir: ${CATALOG_BASE}/active\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/catalog/active", cfg.OutputDir)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "agents: [not: valid: yaml\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should reject an unknown ingestion strategy", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "ingestion:\n  strategy: carrier-pigeon\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ingestion.strategy")
	})

	t.Run("should reject an empty agent preference entry", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "agents:\n  preference: [gemini, \"\"]\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "agents.preference")
	})

	t.Run("should reject a negative agent timeout", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "agents:\n  timeout_seconds: -5\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout_seconds")
	})
}
