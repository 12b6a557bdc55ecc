package compose

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/firefly-engineering/packcfg/internal/errors"
	f "github.com/firefly-engineering/packcfg/internal/fragment"
	"github.com/firefly-engineering/packcfg/internal/modes"
	"github.com/firefly-engineering/packcfg/internal/preset"
)

func toJSON(t *testing.T, m *f.Mapping) string {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

// newTestComposer wires small fragments so results stay readable.
func newTestComposer() *Composer {
	registry := modes.NewRegistry(map[string]modes.Func{
		modes.Production: func(env modes.Env) *f.Mapping {
			return f.Map(
				f.P("module", f.Map(f.P("rules", f.Seq(f.String("R1"))))),
				f.P("devtool", f.Bool(false)),
			)
		},
		modes.Development: func(env modes.Env) *f.Mapping {
			return f.Map(
				f.P("devServer", f.Map(f.P("hot", f.Bool(true)))),
				f.P("devtool", f.String("eval")),
			)
		},
	})
	presets := preset.NewMapRegistry(map[string]*f.Mapping{
		"rules":    f.Map(f.P("module", f.Map(f.P("rules", f.Seq(f.String("R2")))))),
		"extra":    f.Map(f.P("module", f.Map(f.P("extra", f.Bool(true))))),
		"override": f.Map(f.P("devtool", f.String("source-map"))),
		"noRules":  f.Map(f.P("module", f.Map(f.P("rules", f.Null)))),
	})

	return &Composer{
		Base: func(env modes.Env) *f.Mapping {
			return f.Map(f.P("mode", f.String(env.Mode)))
		},
		Modes:   registry,
		Presets: presets,
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		presets []string
		want    string
	}{
		{
			name: "mode only",
			mode: modes.Production,
			want: `{"mode":"production","module":{"rules":["R1"]},"devtool":false}`,
		},
		{
			name: "empty mode defaults to production",
			mode: "",
			want: `{"mode":"production","module":{"rules":["R1"]},"devtool":false}`,
		},
		{
			name:    "preset sequences concatenate",
			mode:    modes.Production,
			presets: []string{"rules"},
			want:    `{"mode":"production","module":{"rules":["R1","R2"]},"devtool":false}`,
		},
		{
			name:    "nested mappings merge",
			mode:    modes.Production,
			presets: []string{"extra"},
			want:    `{"mode":"production","module":{"rules":["R1"],"extra":true},"devtool":false}`,
		},
		{
			name:    "preset scalar overrides mode",
			mode:    modes.Production,
			presets: []string{"override"},
			want:    `{"mode":"production","module":{"rules":["R1"]},"devtool":"source-map"}`,
		},
		{
			name:    "sequence replaced by scalar",
			mode:    modes.Production,
			presets: []string{"noRules"},
			want:    `{"mode":"production","module":{"rules":null},"devtool":false}`,
		},
		{
			name:    "presets apply in the order given",
			mode:    modes.Production,
			presets: []string{"noRules", "rules"},
			want:    `{"mode":"production","module":{"rules":["R2"]},"devtool":false}`,
		},
		{
			name:    "duplicate presets apply twice",
			mode:    modes.Production,
			presets: []string{"rules", "rules"},
			want:    `{"mode":"production","module":{"rules":["R1","R2","R2"]},"devtool":false}`,
		},
		{
			name:    "development mode",
			mode:    modes.Development,
			presets: []string{"override"},
			want:    `{"mode":"development","devServer":{"hot":true},"devtool":"source-map"}`,
		},
	}

	c := newTestComposer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Compose(tt.mode, tt.presets)
			if err != nil {
				t.Fatalf("Compose() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, toJSON(t, got)); diff != "" {
				t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompose_UnknownMode(t *testing.T) {
	got, err := newTestComposer().Compose("staging", nil)
	if got != nil {
		t.Errorf("Compose() returned a partial result: %s", toJSON(t, got))
	}
	if !errors.IsUnknownMode(err) {
		t.Fatalf("Compose() error = %v, want unknown mode", err)
	}
	if name := errors.NameOf(err); name != "staging" {
		t.Errorf("NameOf() = %q, want %q", name, "staging")
	}
	if code := errors.GetExitCode(err); code != errors.ExitUnknownMode {
		t.Errorf("exit code = %d, want %d", code, errors.ExitUnknownMode)
	}
}

func TestCompose_UnknownPreset(t *testing.T) {
	got, err := newTestComposer().Compose(modes.Production, []string{"rules", "nonexistent", "extra"})
	if got != nil {
		t.Errorf("Compose() returned a partial result: %s", toJSON(t, got))
	}
	if !errors.IsUnknownPreset(err) {
		t.Fatalf("Compose() error = %v, want unknown preset", err)
	}
	if name := errors.NameOf(err); name != "nonexistent" {
		t.Errorf("NameOf() = %q, want %q", name, "nonexistent")
	}
}

func TestCompose_UnknownModeIsCheckedFirst(t *testing.T) {
	_, err := newTestComposer().Compose("staging", []string{"nonexistent"})
	if !errors.IsUnknownMode(err) {
		t.Errorf("Compose() error = %v, want unknown mode", err)
	}
}

func TestCompose_IsDeterministic(t *testing.T) {
	c := newTestComposer()
	first, err := c.Compose(modes.Production, []string{"rules", "extra", "override"})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := c.Compose(modes.Production, []string{"rules", "extra", "override"})
		if err != nil {
			t.Fatalf("Compose() error: %v", err)
		}
		if !first.Equal(again) {
			t.Fatalf("run %d differs:\n%s\n%s", i, toJSON(t, first), toJSON(t, again))
		}
	}
}

func TestCompose_EqualsLeftNestedMerge(t *testing.T) {
	c := newTestComposer()
	names := []string{"rules", "extra", "override"}

	fragments, err := c.Resolve(modes.Production, names)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(fragments) != len(names)+2 {
		t.Fatalf("Resolve() returned %d fragments, want %d", len(fragments), len(names)+2)
	}

	want := f.NewMapping()
	for _, m := range fragments {
		want = f.Merge(want, m)
	}

	got, err := c.Compose(modes.Production, names)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("Compose() = %s, left-nested merge = %s", toJSON(t, got), toJSON(t, want))
	}
}

func TestCompose_LeavesRegistriesUntouched(t *testing.T) {
	c := newTestComposer()

	first, err := c.Compose(modes.Production, []string{"rules"})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	first.Set("module", f.String("clobbered"))

	second, err := c.Compose(modes.Production, []string{"rules"})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if got := toJSON(t, second); got != `{"mode":"production","module":{"rules":["R1","R2"]},"devtool":false}` {
		t.Errorf("second Compose() = %s", got)
	}
}

func TestCompose_NilPresetsAndBase(t *testing.T) {
	c := newTestComposer()
	c.Base = nil
	c.Presets = nil

	got, err := c.Compose(modes.Development, nil)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if diff := cmp.Diff(`{"devServer":{"hot":true},"devtool":"eval"}`, toJSON(t, got)); diff != "" {
		t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.Compose(modes.Development, []string{"rules"}); !errors.IsUnknownPreset(err) {
		t.Errorf("Compose() error = %v, want unknown preset", err)
	}
}

func TestCompose_Builtin(t *testing.T) {
	root := t.TempDir()
	c := New(modes.Builtin(), preset.Empty, root)

	dev, err := c.Compose(modes.Development, nil)
	if err != nil {
		t.Fatalf("Compose(development) error: %v", err)
	}
	if v, ok := f.Lookup(dev, "devServer.hot"); !ok || !f.Equal(v, f.Bool(true)) {
		t.Errorf("devServer.hot = %v, %v", v, ok)
	}
	if v, _ := f.Lookup(dev, "module.rules"); len(v.(f.Sequence)) != 4 {
		t.Errorf("development rules = %d, want 4", len(v.(f.Sequence)))
	}
	wantPlugins := `[{"plugin":"StyleLintPlugin"},{"plugin":"HotModuleReplacementPlugin"},{"plugin":"DashboardPlugin"}]`
	plugins, _ := f.Lookup(dev, "plugins")
	if data, _ := json.Marshal(plugins); string(data) != wantPlugins {
		t.Errorf("plugins = %s, want %s", data, wantPlugins)
	}

	prod, err := c.Compose("", nil)
	if err != nil {
		t.Fatalf("Compose(default) error: %v", err)
	}
	if v, _ := f.Lookup(prod, "mode"); !f.Equal(v, f.String(modes.Production)) {
		t.Errorf("mode = %v", v)
	}
	if _, ok := f.Lookup(prod, "devServer"); ok {
		t.Error("production configuration should not have a devServer")
	}
	if v, ok := f.Lookup(prod, "optimization.minimize"); !ok || !f.Equal(v, f.Bool(true)) {
		t.Errorf("optimization.minimize = %v, %v", v, ok)
	}
}
