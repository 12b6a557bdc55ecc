// Package modes holds the fragment-producing functions selected by build
// mode, plus the base fragment every composition starts from.
package modes

import (
	"path/filepath"
	"sort"

	f "github.com/firefly-engineering/packcfg/internal/fragment"
)

const (
	Development = "development"
	Production  = "production"

	// Default is used when no mode is requested.
	Default = Production
)

// Env is passed to every fragment-producing function.
type Env struct {
	Mode string
	// Root is the project directory; paths in fragments are resolved
	// against it.
	Root string
}

// Func produces a configuration fragment for an environment.
type Func func(Env) *f.Mapping

// Registry maps mode names to fragment-producing functions. It is read-only
// once built.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry builds a registry from the given functions.
func NewRegistry(funcs map[string]Func) *Registry {
	r := &Registry{funcs: make(map[string]Func, len(funcs))}
	for name, fn := range funcs {
		r.funcs[name] = fn
	}
	return r
}

// Builtin returns the registry with the development and production modes.
func Builtin() *Registry {
	return NewRegistry(map[string]Func{
		Development: DevelopmentFragment,
		Production:  ProductionFragment,
	})
}

// Lookup returns the function registered for name.
func (r *Registry) Lookup(name string) (Func, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered mode names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func rootPath(env Env, rel string) string {
	root := env.Root
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(filepath.Join(root, rel)); err == nil {
		return abs
	}
	return filepath.Join(root, rel)
}

func strs(values ...string) f.Sequence {
	seq := make(f.Sequence, len(values))
	for i, v := range values {
		seq[i] = f.String(v)
	}
	return seq
}

func plugin(name string) *f.Mapping {
	return f.Map(f.P("plugin", f.String(name)))
}
