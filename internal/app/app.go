package app

import (
	"fmt"

	"github.com/firefly-engineering/packcfg/internal/compose"
	"github.com/firefly-engineering/packcfg/internal/config"
	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/logging"
	"github.com/firefly-engineering/packcfg/internal/modes"
	"github.com/firefly-engineering/packcfg/internal/preset"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// Settings is the resolved run configuration
	Settings *config.Settings

	// Modes maps mode names to fragment-producing functions
	Modes *modes.Registry

	// Presets resolves preset names
	Presets preset.Registry

	err error
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithSettings sets the run settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithModes sets a custom mode registry
func WithModes(r *modes.Registry) Option {
	return func(a *App) {
		a.Modes = r
	}
}

// WithPresets sets a custom preset registry
func WithPresets(r preset.Registry) Option {
	return func(a *App) {
		a.Presets = r
	}
}

// New creates a new App with the given options.
// If presets are not provided via WithPresets, they are read from the
// configured presets directory.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Settings == nil {
		app.Settings = config.Defaults()
	}
	if app.Paths == nil {
		app.Paths = app.Settings.Paths()
	}
	if app.Modes == nil {
		app.Modes = modes.Builtin()
	}

	// Initialize presets if not provided
	if app.Presets == nil {
		dir, err := preset.OpenDir(app.Paths.PresetsDir)
		if err != nil {
			logging.Debug("failed to open presets directory", "dir", app.Paths.PresetsDir, "error", err)
			app.Presets = preset.Empty
			app.err = errors.ConfigError(fmt.Sprintf("cannot read presets directory %s", app.Paths.PresetsDir), err)
		} else {
			app.Presets = dir
		}
	}

	return app
}

// Err reports a failure to set up the app, such as an unreadable presets
// directory. A missing presets directory is not an error.
func (a *App) Err() error {
	return a.err
}

// Composer returns a composer wired to the app's registries
func (a *App) Composer() *compose.Composer {
	return compose.New(a.Modes, a.Presets, a.Settings.Root)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
