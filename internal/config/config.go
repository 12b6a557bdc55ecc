package config

import (
	"fmt"
	"path/filepath"

	"github.com/firefly-engineering/packcfg/internal/modes"
	"github.com/firefly-engineering/packcfg/internal/preset"
	"github.com/firefly-engineering/packcfg/internal/render"
)

const (
	SettingsFileName  = "packcfg.toml"
	DefaultPresetsDir = "build-tools/presets"
	StateDirName      = ".packcfg"
	DefaultOutput     = StateDirName + "/webpack.config.json"
	DefaultBundler    = "webpack"
	EnvPrefix         = "PACKCFG_"
)

// Settings controls a packcfg run.
type Settings struct {
	// Root is the project directory. Relative paths resolve against it.
	Root       string   `toml:"-" env:"ROOT"`
	Mode       string   `toml:"mode" env:"MODE"`
	Presets    []string `toml:"presets" env:"PRESETS" envSeparator:","`
	PresetsDir string   `toml:"presets_dir" env:"PRESETS_DIR"`
	// Output is where `run` writes the configuration for the bundler.
	Output string `toml:"output" env:"OUTPUT"`
	// Format is the output format; empty means inferred from Output.
	Format  string `toml:"format" env:"FORMAT"`
	Bundler string `toml:"bundler" env:"BUNDLER"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Root:       ".",
		Mode:       modes.Default,
		PresetsDir: DefaultPresetsDir,
		Output:     DefaultOutput,
		Bundler:    DefaultBundler,
	}
}

// Validate checks the settings for values no command can use.
func (s *Settings) Validate() error {
	if s.Bundler == "" {
		return fmt.Errorf("bundler command cannot be empty")
	}
	for _, name := range s.Presets {
		if !preset.ValidName(name) {
			return fmt.Errorf("invalid preset name %q: must start with a letter or digit and contain only letters, digits, underscores, or hyphens", name)
		}
	}
	if s.Format != "" {
		if _, err := render.ParseFormat(s.Format); err != nil {
			return err
		}
	}
	return nil
}

// OutputFormat returns the format to render Output in: Format if set,
// otherwise the one implied by the Output extension, otherwise JSON.
func (s *Settings) OutputFormat() render.Format {
	if s.Format != "" {
		if f, err := render.ParseFormat(s.Format); err == nil {
			return f
		}
	}
	if f, ok := render.FormatForPath(s.Output); ok {
		return f
	}
	return render.JSON
}

// Resolve returns path relative to Root, unless it is already absolute.
func (s *Settings) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	root := s.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, path)
}

// Paths holds the configured paths
type Paths struct {
	Root         string
	SettingsFile string
	PresetsDir   string
	// StateDir holds generated configurations and the run history.
	StateDir string
}

// DefaultPaths returns the default path configuration for a project root
func DefaultPaths(root string) *Paths {
	if root == "" {
		root = "."
	}
	return &Paths{
		Root:         root,
		SettingsFile: filepath.Join(root, SettingsFileName),
		PresetsDir:   filepath.Join(root, DefaultPresetsDir),
		StateDir:     filepath.Join(root, StateDirName),
	}
}

// Paths returns the paths implied by the settings.
func (s *Settings) Paths() *Paths {
	p := DefaultPaths(s.Root)
	if s.PresetsDir != "" {
		p.PresetsDir = s.Resolve(s.PresetsDir)
	}
	return p
}
