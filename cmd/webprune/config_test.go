package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".webprune.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	k = koanf.New(".")
	path := writeConfigFile(t, `verbose: true
log-file: changes.txt
run:
  verify: true
  include:
    - "**/*.css"
    - "**/*.js"
`)

	require.NoError(t, loadConfigFromPath(path))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "changes.txt", k.String("log-file"))
	assert.True(t, k.Bool("run.verify"))
	assert.Equal(t, []string{"**/*.css", "**/*.js"}, k.Strings("run.include"))
}

func TestLoadConfigFromPathMissingFile(t *testing.T) {
	k = koanf.New(".")
	require.NoError(t, loadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.False(t, k.Exists("verbose"))
}

func TestEnvOverridesConfigFile(t *testing.T) {
	k = koanf.New(".")
	path := writeConfigFile(t, "verbose: true\n")
	t.Setenv("WEBPRUNE_VERBOSE", "false")

	require.NoError(t, loadConfigFromPath(path))

	assert.False(t, k.Bool("verbose"))
}

func TestEnvKeyMapping(t *testing.T) {
	k = koanf.New(".")
	t.Setenv("WEBPRUNE_RUN_VERIFY", "true")
	t.Setenv("WEBPRUNE_SCAN_STRICT", "true")

	require.NoError(t, loadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml")))

	assert.True(t, k.Bool("run.verify"))
	assert.True(t, k.Bool("scan.strict"))
}

func TestBuildRunConfig(t *testing.T) {
	k = koanf.New(".")
	path := writeConfigFile(t, `verbose: true
run:
  verify: true
  include:
    - "src/**/*.css"
  exclude:
    - "vendor/**"
`)
	require.NoError(t, loadConfigFromPath(path))

	cfg := buildRunConfig("myproject", true)

	assert.Equal(t, "myproject", cfg.Root)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verify)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"src/**/*.css"}, cfg.Includes)
	assert.Equal(t, []string{"vendor/**"}, cfg.Excludes)
}

func TestGetWithFallback(t *testing.T) {
	k = koanf.New(".")
	path := writeConfigFile(t, "log-file: from-file.txt\nrun:\n  yes: true\n")
	require.NoError(t, loadConfigFromPath(path))

	assert.Equal(t, "from-file.txt", getStringWithFallback("log-file", "log-file", "default.txt"))
	assert.Equal(t, "default.txt", getStringWithFallback("nope", "also-nope", "default.txt"))

	assert.True(t, getBoolWithFallback("yes", "run.yes", false))
	assert.False(t, getBoolWithFallback("nope", "also-nope", false))
}
