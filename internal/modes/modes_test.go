package modes

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	f "github.com/firefly-engineering/packcfg/internal/fragment"
)

func TestBuiltin_Names(t *testing.T) {
	got := Builtin().Names()
	want := []string{Development, Production}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := Builtin()

	for _, name := range []string{Development, Production} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("Lookup(%q) not found", name)
		}
	}
	if _, ok := r.Lookup("staging"); ok {
		t.Error("Lookup(staging) should fail")
	}

	var nilRegistry *Registry
	if _, ok := nilRegistry.Lookup(Production); ok {
		t.Error("nil registry should not resolve modes")
	}
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	funcs := map[string]Func{"custom": func(Env) *f.Mapping { return f.NewMapping() }}
	r := NewRegistry(funcs)
	delete(funcs, "custom")

	if _, ok := r.Lookup("custom"); !ok {
		t.Error("registry should not observe changes to its input map")
	}
}

func TestBase(t *testing.T) {
	root := t.TempDir()
	base := Base(Env{Mode: Production, Root: root})

	if got, _ := f.Lookup(base, "mode"); !f.Equal(got, f.String(Production)) {
		t.Errorf("mode = %v", got)
	}
	wantEntry := filepath.Join(root, "src", "static", "index.js")
	if got, _ := f.Lookup(base, "entry"); !f.Equal(got, f.String(wantEntry)) {
		t.Errorf("entry = %v, want %s", got, wantEntry)
	}
	rules, _ := f.Lookup(base, "module.rules")
	if seq, ok := rules.(f.Sequence); !ok || len(seq) != 2 {
		t.Errorf("module.rules = %v, want two rules", rules)
	}
	if got, _ := f.Lookup(base, "plugins.0.plugin"); !f.Equal(got, f.String("StyleLintPlugin")) {
		t.Errorf("plugins.0 = %v", got)
	}
}

func TestDevelopmentFragment(t *testing.T) {
	dev := DevelopmentFragment(Env{Mode: Development, Root: "."})

	checks := map[string]f.Value{
		"devServer.hot":                      f.Bool(true),
		"devServer.stats":                    f.String("errors-only"),
		"devServer.contentBase":              f.String("./src/static"),
		"module.rules.0.use.0.loader":        f.String("elm-hot-webpack-loader"),
		"module.rules.0.use.1.options.debug": f.Bool(true),
		"module.rules.1.use.3":               f.String("less-loader"),
		"plugins.0.plugin":                   f.String("HotModuleReplacementPlugin"),
		"plugins.1.plugin":                   f.String("DashboardPlugin"),
	}
	for path, want := range checks {
		got, ok := f.Lookup(dev, path)
		if !ok || !f.Equal(got, want) {
			t.Errorf("%s = %v, want %v", path, got, want)
		}
	}
}

func TestProductionFragment_OmitsDevelopmentFlags(t *testing.T) {
	prod := ProductionFragment(Env{Mode: Production, Root: "."})

	for _, path := range []string{"devServer", "module.rules.0.use.0.options.debug"} {
		if _, ok := f.Lookup(prod, path); ok {
			t.Errorf("production fragment should not set %s", path)
		}
	}
	if got, _ := f.Lookup(prod, "optimization.minimize"); !f.Equal(got, f.Bool(true)) {
		t.Errorf("optimization.minimize = %v", got)
	}
	if got, _ := f.Lookup(prod, "module.rules.0.use.0.loader"); !f.Equal(got, f.String("elm-webpack-loader")) {
		t.Errorf("production should not use the hot loader, got %v", got)
	}
}

func TestFragmentsAreFresh(t *testing.T) {
	env := Env{Mode: Development, Root: "."}
	a := DevelopmentFragment(env)
	a.Delete("devServer")

	b := DevelopmentFragment(env)
	if _, ok := b.Get("devServer"); !ok {
		t.Error("each call should build a new fragment")
	}
}
