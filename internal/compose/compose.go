// Package compose builds the final bundler configuration by merging the base
// fragment, the fragment for the requested mode and any named presets.
package compose

import (
	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/fragment"
	"github.com/firefly-engineering/packcfg/internal/logging"
	"github.com/firefly-engineering/packcfg/internal/modes"
	"github.com/firefly-engineering/packcfg/internal/preset"
)

// Composer merges configuration fragments. Its registries are never
// modified, so a Composer may be shared.
type Composer struct {
	// Base produces the lowest-precedence fragment. Nil means an empty one.
	Base    modes.Func
	Modes   *modes.Registry
	Presets preset.Registry
	// Root is handed to fragment-producing functions as Env.Root.
	Root string
}

// New returns a Composer using the built-in base fragment.
func New(modeRegistry *modes.Registry, presets preset.Registry, root string) *Composer {
	return &Composer{
		Base:    modes.Base,
		Modes:   modeRegistry,
		Presets: presets,
		Root:    root,
	}
}

// Compose returns the fold of base, mode and presets, in that order. An empty
// mode selects modes.Default. Every name is resolved before anything is
// merged, so an unknown mode or preset yields no configuration.
func (c *Composer) Compose(mode string, presets []string) (*fragment.Mapping, error) {
	fragments, err := c.Resolve(mode, presets)
	if err != nil {
		return nil, err
	}
	return fragment.Fold(fragments...), nil
}

// Resolve looks up every fragment that Compose would merge, in merge order.
func (c *Composer) Resolve(mode string, presets []string) ([]*fragment.Mapping, error) {
	if mode == "" {
		mode = modes.Default
	}

	modeFn, ok := c.Modes.Lookup(mode)
	if !ok {
		return nil, errors.UnknownMode(mode)
	}

	registry := c.Presets
	if registry == nil {
		registry = preset.Empty
	}

	seen := make(map[string]bool, len(presets))
	presetFragments := make([]*fragment.Mapping, 0, len(presets))
	for _, name := range presets {
		if seen[name] {
			logging.Warn("preset requested more than once", "preset", name)
		}
		seen[name] = true

		m, err := registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		presetFragments = append(presetFragments, m)
	}

	env := modes.Env{Mode: mode, Root: c.Root}
	logging.Info("building for", "mode", mode, "presets", presets)

	fragments := make([]*fragment.Mapping, 0, len(presetFragments)+2)
	if c.Base != nil {
		base := c.Base(env)
		logging.Debug("merging fragment", "source", "base", "keys", base.Keys())
		fragments = append(fragments, base)
	}

	modeFragment := modeFn(env)
	logging.Debug("merging fragment", "source", "mode:"+mode, "keys", modeFragment.Keys())
	fragments = append(fragments, modeFragment)

	for i, m := range presetFragments {
		logging.Debug("merging fragment", "source", "preset:"+presets[i], "keys", m.Keys())
		fragments = append(fragments, m)
	}

	return fragments, nil
}
