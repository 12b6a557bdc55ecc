package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	pkgerrors "github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/logging"
)

// Builder folds settings layers. Later layers override earlier ones field by
// field; empty fields never override.
type Builder struct {
	layers []*Settings
	err    error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{layers: make([]*Settings, 0, 4)}
}

// Build merges the layers and validates the result.
func (b *Builder) Build() (*Settings, error) {
	if b.err != nil {
		return nil, pkgerrors.ConfigError("failed to load settings", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer, mergo.WithOverride); err != nil {
			return nil, pkgerrors.ConfigError("failed to merge settings", err)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, pkgerrors.ConfigError("invalid settings", err)
	}
	return settings, nil
}

// WithDefaults adds the built-in defaults.
func (b *Builder) WithDefaults() *Builder {
	b.layers = append(b.layers, Defaults())
	return b
}

// WithFile adds the settings file at path. A missing file adds nothing.
func (b *Builder) WithFile(path string) *Builder {
	fileSettings, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if fileSettings != nil {
		b.layers = append(b.layers, fileSettings)
	}
	return b
}

// WithEnv adds PACKCFG_* variables from environ, or from the process
// environment when environ is nil.
func (b *Builder) WithEnv(environ map[string]string) *Builder {
	envSettings, err := parseEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.layers = append(b.layers, envSettings)
	return b
}

// WithOverrides adds settings given on the command line.
func (b *Builder) WithOverrides(s *Settings) *Builder {
	if s != nil {
		b.layers = append(b.layers, s)
	}
	return b
}

func parseFile(path string) (*Settings, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logging.Debug("no settings file", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logging.Warn("unknown settings key", "path", path, "key", key.String())
	}

	logging.Debug("loaded settings file", "path", path)
	return &s, nil
}

func parseEnv(environ map[string]string) (*Settings, error) {
	var s Settings
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return nil, fmt.Errorf("error getting env settings: %w", err)
	}
	return &s, nil
}

// Load builds the settings for a run. The project root comes from the
// overrides, then PACKCFG_ROOT, then the working directory; the settings
// file is read from that root.
func Load(overrides *Settings, environ map[string]string) (*Settings, error) {
	envSettings, err := parseEnv(environ)
	if err != nil {
		return nil, pkgerrors.ConfigError("failed to load settings", err)
	}

	root := "."
	switch {
	case overrides != nil && overrides.Root != "":
		root = overrides.Root
	case envSettings.Root != "":
		root = envSettings.Root
	}

	settings, err := NewBuilder().
		WithDefaults().
		WithFile(DefaultPaths(root).SettingsFile).
		WithOverrides(envSettings).
		WithOverrides(overrides).
		Build()
	if err != nil {
		return nil, err
	}
	settings.Root = root
	return settings, nil
}
