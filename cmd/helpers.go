package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/app"
	"github.com/firefly-engineering/packcfg/internal/audit"
	"github.com/firefly-engineering/packcfg/internal/config"
	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/fragment"
	"github.com/firefly-engineering/packcfg/internal/logging"
	"github.com/firefly-engineering/packcfg/internal/modes"
	"github.com/firefly-engineering/packcfg/internal/preset"
	"github.com/firefly-engineering/packcfg/internal/render"
)

// paths returns the configured paths.
func paths() *config.Paths {
	return app.Default.Paths
}

// settings returns the loaded run settings.
// This is a helper to reduce repetition in commands.
func settings() *config.Settings {
	return app.Default.Settings
}

// selection holds the mode and preset flags shared by composing commands.
type selection struct {
	mode      string
	presets   []string
	noPresets bool
}

func addSelectionFlags(cmd *cobra.Command, s *selection) {
	cmd.Flags().StringVarP(&s.mode, "mode", "m", "", "Build mode (default from settings, else production)")
	cmd.Flags().StringSliceVarP(&s.presets, "preset", "p", nil, "Preset to apply; repeat or comma-separate for several (default from settings)")
	cmd.Flags().BoolVar(&s.noPresets, "no-presets", false, "Apply no presets, ignoring the settings")
	cmd.MarkFlagsMutuallyExclusive("preset", "no-presets")
}

// resolve fills unset flags from the settings.
func (s *selection) resolve() (string, []string) {
	mode := s.mode
	if mode == "" {
		mode = settings().Mode
	}
	if s.noPresets {
		return mode, nil
	}
	presets := s.presets
	if len(presets) == 0 {
		presets = settings().Presets
	}
	return mode, presets
}

// composeSelection composes the configuration for the selection.
func composeSelection(s *selection) (*fragment.Mapping, render.Meta, error) {
	mode, presets := s.resolve()
	return composeFor(mode, presets)
}

func composeFor(mode string, presets []string) (*fragment.Mapping, render.Meta, error) {
	cfg, err := app.Default.Composer().Compose(mode, presets)
	if err != nil {
		return nil, render.Meta{}, err
	}
	if mode == "" {
		mode = modes.Default
	}
	return cfg, render.Meta{Mode: mode, Presets: presets}, nil
}

// outputFormat picks the format from the flag, then the output path, then
// the settings.
func outputFormat(flag, path string) (render.Format, error) {
	if flag != "" {
		return render.ParseFormat(flag)
	}
	if path != "" {
		if f, ok := render.FormatForPath(path); ok {
			return f, nil
		}
	}
	if settings().Format != "" {
		return render.ParseFormat(settings().Format)
	}
	return render.JSON, nil
}

// writeConfig renders cfg and writes it to path, creating parent directories.
// Nothing is written if rendering fails.
func writeConfig(path string, cfg *fragment.Mapping, format render.Format, meta render.Meta) error {
	var buf bytes.Buffer
	if err := render.Render(&buf, cfg, format, meta); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.RenderError("failed to create output directory", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.RenderError("failed to write configuration", err)
	}
	return nil
}

// presetLister is implemented by registries that can describe their presets.
type presetLister interface {
	List() ([]preset.Info, error)
}

// listPresets describes every available preset.
func listPresets() ([]preset.Info, error) {
	registry := app.Default.Presets
	if lister, ok := registry.(presetLister); ok {
		return lister.List()
	}

	names, err := registry.Names()
	if err != nil {
		return nil, err
	}
	infos := make([]preset.Info, 0, len(names))
	for _, name := range names {
		m, err := registry.Lookup(name)
		if err != nil {
			logWarning("Skipping preset %s: %v", name, err)
			continue
		}
		infos = append(infos, preset.Info{Name: name, Keys: m.Keys()})
	}
	return infos, nil
}

// equivalentCommand renders the compose invocation for a selection.
func equivalentCommand(mode string, presets []string) string {
	parts := []string{"packcfg", "compose", "-m", mode}
	if len(presets) > 0 {
		parts = append(parts, "-p", strings.Join(presets, ","))
	}
	return strings.Join(parts, " ")
}

// record appends an event to the project history. Failures are logged, not
// returned.
func record(event audit.Event) {
	if err := audit.NewLogger(paths().StateDir).Log(event); err != nil {
		logging.Warn("failed to record history", "error", err)
	}
}

// recordFailure records a failed composition or run.
func recordFailure(mode string, presets []string, err error) {
	record(audit.Event{Type: audit.EventError, Mode: mode, Presets: presets, Details: err.Error()})
}
