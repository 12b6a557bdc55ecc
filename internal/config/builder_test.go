package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/packcfg/internal/errors"
)

func writeSettingsFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestNewBuilder_InitialState verifies that a fresh builder has no layers
// and no error.
func TestNewBuilder_InitialState(t *testing.T) {
	b := NewBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// TestBuild_DefaultsOnly verifies the built-in defaults pass validation.
func TestBuild_DefaultsOnly(t *testing.T) {
	s, err := NewBuilder().WithDefaults().Build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

// TestBuild_LaterLayersOverride verifies precedence and that empty fields
// keep lower-layer values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	s, err := NewBuilder().
		WithDefaults().
		WithOverrides(&Settings{Mode: "development", Presets: []string{"analyze"}}).
		WithOverrides(&Settings{Output: "dist/webpack.config.js"}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "development", s.Mode)
	assert.Equal(t, []string{"analyze"}, s.Presets)
	assert.Equal(t, "dist/webpack.config.js", s.Output)
	assert.Equal(t, DefaultPresetsDir, s.PresetsDir)
	assert.Equal(t, DefaultBundler, s.Bundler)
}

// TestBuild_PresetListsReplace verifies a higher layer's preset list replaces
// the lower one instead of extending it.
func TestBuild_PresetListsReplace(t *testing.T) {
	s, err := NewBuilder().
		WithOverrides(&Settings{Bundler: "webpack", Presets: []string{"analyze", "compress"}}).
		WithOverrides(&Settings{Presets: []string{"sourcemaps"}}).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"sourcemaps"}, s.Presets)
}

// TestBuild_ValidationFailure verifies invalid settings map to a config error.
func TestBuild_ValidationFailure(t *testing.T) {
	_, err := NewBuilder().
		WithDefaults().
		WithOverrides(&Settings{Format: "toml"}).
		Build()
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}

// TestWithFile verifies settings are read from packcfg.toml.
func TestWithFile(t *testing.T) {
	path := writeSettingsFile(t, t.TempDir(), `
mode = "development"
presets = ["analyze", "compress"]
presets_dir = "config/presets"
format = "yaml"
bundler = "npx webpack --progress"
`)

	s, err := NewBuilder().WithDefaults().WithFile(path).Build()
	require.NoError(t, err)

	assert.Equal(t, "development", s.Mode)
	assert.Equal(t, []string{"analyze", "compress"}, s.Presets)
	assert.Equal(t, "config/presets", s.PresetsDir)
	assert.Equal(t, "yaml", s.Format)
	assert.Equal(t, "npx webpack --progress", s.Bundler)
	assert.Equal(t, DefaultOutput, s.Output)
}

// TestWithFile_Missing verifies a missing file adds no layer.
func TestWithFile_Missing(t *testing.T) {
	b := NewBuilder().WithFile(filepath.Join(t.TempDir(), SettingsFileName))
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// TestWithFile_Malformed verifies a malformed file fails the build.
func TestWithFile_Malformed(t *testing.T) {
	path := writeSettingsFile(t, t.TempDir(), `mode = `)

	s, err := NewBuilder().WithDefaults().WithFile(path).Build()
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}

// TestWithEnv verifies PACKCFG_* variables are read.
func TestWithEnv(t *testing.T) {
	s, err := NewBuilder().
		WithDefaults().
		WithEnv(map[string]string{
			"PACKCFG_MODE":    "development",
			"PACKCFG_PRESETS": "analyze,compress",
			"PACKCFG_BUNDLER": "npx webpack",
			"MODE":            "ignored",
		}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "development", s.Mode)
	assert.Equal(t, []string{"analyze", "compress"}, s.Presets)
	assert.Equal(t, "npx webpack", s.Bundler)
}

// TestWithEnv_ProcessEnvironment verifies a nil map reads the process
// environment.
func TestWithEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("PACKCFG_OUTPUT", "out/config.json")

	s, err := NewBuilder().WithDefaults().WithEnv(nil).Build()
	require.NoError(t, err)
	assert.Equal(t, "out/config.json", s.Output)
}

// TestLoad_Precedence verifies defaults < file < env < overrides.
func TestLoad_Precedence(t *testing.T) {
	root := t.TempDir()
	writeSettingsFile(t, root, `
mode = "development"
output = "from-file.json"
bundler = "file-bundler"
`)

	s, err := Load(
		&Settings{Root: root, Bundler: "flag-bundler"},
		map[string]string{"PACKCFG_OUTPUT": "from-env.json", "PACKCFG_BUNDLER": "env-bundler"},
	)
	require.NoError(t, err)

	assert.Equal(t, root, s.Root)
	assert.Equal(t, "development", s.Mode)
	assert.Equal(t, "from-env.json", s.Output)
	assert.Equal(t, "flag-bundler", s.Bundler)
	assert.Equal(t, DefaultPresetsDir, s.PresetsDir)
}

// TestLoad_RootFromEnv verifies PACKCFG_ROOT selects the settings file.
func TestLoad_RootFromEnv(t *testing.T) {
	root := t.TempDir()
	writeSettingsFile(t, root, `presets = ["analyze"]`)

	s, err := Load(nil, map[string]string{"PACKCFG_ROOT": root})
	require.NoError(t, err)
	assert.Equal(t, root, s.Root)
	assert.Equal(t, []string{"analyze"}, s.Presets)
}
