package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/mycli/internal/model"
)

// isolateConfigDir points os.UserConfigDir at an empty temporary directory
// so that a real user config never leaks into a test.
func isolateConfigDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "zarf", cfg.Binary)
	assert.Equal(t, "which", cfg.LookupCommand)
	assert.Equal(t, []string{"--version"}, cfg.ProbeArgs)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Path)
}

// TestLoad_NoFile verifies that the absence of any config file yields the
// defaults rather than an error.
func TestLoad_NoFile(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mycli.yaml")
	writeFile(t, path, `
binary: zarf-nightly
lookup_command: command-lookup
probe_args: ["version", "--quiet"]
verbose: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zarf-nightly", cfg.Binary)
	assert.Equal(t, "command-lookup", cfg.LookupCommand)
	assert.Equal(t, []string{"version", "--quiet"}, cfg.ProbeArgs)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, path, cfg.Path)
}

// TestLoad_JSONC verifies that comments and trailing commas are accepted in
// .jsonc files.
func TestLoad_JSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mycli.jsonc")
	writeFile(t, path, `{
  // pinned release
  "binary": "/opt/zarf/bin/zarf",
  /* keep the default lookup */
  "verbose": true,
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/zarf/bin/zarf", cfg.Binary)
	assert.Equal(t, "which", cfg.LookupCommand)
	assert.Equal(t, []string{"--version"}, cfg.ProbeArgs)
	assert.True(t, cfg.Verbose)
}

// TestLoad_BlankFieldsFallBack verifies that explicitly empty values do not
// produce an unusable configuration.
func TestLoad_BlankFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mycli.yml")
	writeFile(t, path, "binary: \"  \"\nlookup_command: \"\"\nprobe_args: []\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zarf", cfg.Binary)
	assert.Equal(t, "which", cfg.LookupCommand)
	assert.Equal(t, []string{"--version"}, cfg.ProbeArgs)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "missing explicit file", file: "absent.yaml"},
		{name: "malformed yaml", file: "bad.yaml", content: "binary: [unterminated\n"},
		{name: "malformed json", file: "bad.json", content: `{"binary": `},
		{name: "binary with spaces", file: "spaces.yaml", content: "binary: zarf --debug\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if tt.content != "" {
				writeFile(t, path, tt.content)
			}

			cfg, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, cfg)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitGeneralError, cliErr.Code)
			assert.Contains(t, cliErr.Message, path)
		})
	}
}

// TestLoad_Discover verifies the search order inside the user config
// directory: YAML wins over JSONC when both exist.
func TestLoad_Discover(t *testing.T) {
	isolateConfigDir(t)
	dir, err := os.UserConfigDir()
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "mycli", "config.jsonc"), `{"binary": "from-jsonc"}`)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-jsonc", cfg.Binary)

	yamlPath := filepath.Join(dir, "mycli", "config.yaml")
	writeFile(t, yamlPath, "binary: from-yaml\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.Binary)
	assert.Equal(t, yamlPath, cfg.Path)
}

func TestFromEnv(t *testing.T) {
	isolateConfigDir(t)

	path := filepath.Join(t.TempDir(), "env.yaml")
	writeFile(t, path, "binary: zarf-env\n")
	t.Setenv(EnvConfigPath, path)

	t.Run("file only", func(t *testing.T) {
		t.Setenv(EnvVerbose, "")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "zarf-env", cfg.Binary)
		assert.False(t, cfg.Verbose)
	})

	t.Run("verbose override", func(t *testing.T) {
		t.Setenv(EnvVerbose, "1")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
	})

	t.Run("unparseable verbose is ignored", func(t *testing.T) {
		t.Setenv(EnvVerbose, "loud")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.False(t, cfg.Verbose)
	})
}
