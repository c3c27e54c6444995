package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, []string{"py"}, cfg.Count.Extensions)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydoccheck.yaml")
	content := "verbose: true\nignore:\n  files: [generated.py]\n  names: [main]\n  dirs: [migrations]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"generated.py"}, cfg.Ignore.Files)
	assert.Equal(t, []string{"main"}, cfg.Ignore.Names)
	assert.Equal(t, []string{"migrations"}, cfg.Ignore.Dirs)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydoccheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: false\n"), 0644))

	t.Setenv("PYDOCCHECK_VERBOSE", "true")
	t.Setenv("PYDOCCHECK_IGNORE_NAMES", "setup teardown")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"setup", "teardown"}, cfg.Ignore.Names)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydoccheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count:\n  extensions: [\".py\"]\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydoccheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: [broken\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
