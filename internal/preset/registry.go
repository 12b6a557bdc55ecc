package preset

import (
	"regexp"
	"sort"

	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/fragment"
)

// presetNameRegex validates preset names. Names start with a letter or digit
// and contain only letters, digits, underscores or hyphens.
var presetNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,62}$`)

// ValidName reports whether name can identify a preset.
func ValidName(name string) bool {
	return presetNameRegex.MatchString(name)
}

// Registry resolves preset names to fragments.
type Registry interface {
	// Lookup returns a fresh copy of the named fragment.
	Lookup(name string) (*fragment.Mapping, error)
	// Names lists the available presets, sorted.
	Names() ([]string, error)
}

// MapRegistry is an in-memory Registry.
type MapRegistry struct {
	presets map[string]*fragment.Mapping
}

// NewMapRegistry builds a registry holding copies of the given fragments.
func NewMapRegistry(presets map[string]*fragment.Mapping) *MapRegistry {
	r := &MapRegistry{presets: make(map[string]*fragment.Mapping, len(presets))}
	for name, m := range presets {
		r.presets[name] = fragment.CloneMapping(m)
	}
	return r
}

// Lookup implements Registry.
func (r *MapRegistry) Lookup(name string) (*fragment.Mapping, error) {
	m, ok := r.presets[name]
	if !ok {
		return nil, errors.UnknownPreset(name)
	}
	return fragment.CloneMapping(m), nil
}

// Names implements Registry.
func (r *MapRegistry) Names() ([]string, error) {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Empty is a registry with no presets.
var Empty Registry = NewMapRegistry(nil)
