// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/packcfg/internal/app"
	"github.com/firefly-engineering/packcfg/internal/config"
	"github.com/firefly-engineering/packcfg/internal/preset"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	Root     string
	Paths    *config.Paths
	Settings *config.Settings
	cleanup  func()
}

// NewTestEnv creates a project directory with an empty presets directory
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()
	paths := config.DefaultPaths(root)

	if err := os.MkdirAll(paths.PresetsDir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", paths.PresetsDir, err)
	}

	settings := config.Defaults()
	settings.Root = root

	// Save original default so the env can install its own app
	originalDefault := app.Default

	return &TestEnv{
		T:        t,
		Root:     root,
		Paths:    paths,
		Settings: settings,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// InstallFixtures copies the embedded preset fixtures into the presets directory
func (e *TestEnv) InstallFixtures() {
	e.T.Helper()

	if err := CopyFixtures(e.Paths.PresetsDir); err != nil {
		e.T.Fatalf("Failed to install fixtures: %v", err)
	}
}

// AddPreset writes a preset file, e.g. AddPreset("analyze.toml", "...")
func (e *TestEnv) AddPreset(file, content string) {
	e.T.Helper()

	path := filepath.Join(e.Paths.PresetsDir, file)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write preset: %v", err)
	}
}

// WriteSettings writes the project settings file
func (e *TestEnv) WriteSettings(content string) {
	e.T.Helper()

	if err := os.WriteFile(e.Paths.SettingsFile, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write settings: %v", err)
	}
}

// Registry opens the presets directory as it is now
func (e *TestEnv) Registry() *preset.DirRegistry {
	e.T.Helper()

	r, err := preset.OpenDir(e.Paths.PresetsDir)
	if err != nil {
		e.T.Fatalf("Failed to open presets: %v", err)
	}
	return r
}

// App builds an app over the environment and installs it as the default
func (e *TestEnv) App() *app.App {
	e.T.Helper()

	testApp := app.New(
		app.WithPaths(e.Paths),
		app.WithSettings(e.Settings),
		app.WithPresets(e.Registry()),
	)
	app.SetDefault(testApp)
	return testApp
}
