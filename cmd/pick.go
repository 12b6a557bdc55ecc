package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/app"
	"github.com/firefly-engineering/packcfg/internal/audit"
	"github.com/firefly-engineering/packcfg/internal/logging"
	"github.com/firefly-engineering/packcfg/internal/render"
	"github.com/firefly-engineering/packcfg/internal/tui"
)

var pickFormat string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive preset picker",
	Long: `Opens an interactive TUI for choosing a mode and presets, then prints
the composed configuration.

Presets apply in the order they are selected.

Keys:
  space  - Toggle the highlighted preset
  tab    - Cycle the build mode
  enter  - Compose the selection
  q/Esc  - Quit`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&pickFormat, "format", "f", "", "Output format: json, yaml or js")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	logging.Debug("picker mode started")

	format, err := outputFormat(pickFormat, "")
	if err != nil {
		return err
	}

	infos, err := listPresets()
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}
	if len(infos) == 0 {
		logInfo("No presets found in %s. Use: packcfg compose -m <mode>", paths().PresetsDir)
		return nil
	}

	// Run interactive picker
	result, err := tui.RunPicker(infos, app.Default.Modes.Names(), settings().Mode)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action, "mode", result.Mode, "presets", result.Presets)

	switch result.Action {
	case tui.ActionCompose:
		cfg, meta, err := composeFor(result.Mode, result.Presets)
		if err != nil {
			recordFailure(result.Mode, result.Presets, err)
			return err
		}
		logInfo("Equivalent: %s", equivalentCommand(meta.Mode, meta.Presets))
		if err := render.Render(cmd.OutOrStdout(), cfg, format, meta); err != nil {
			return err
		}
		record(audit.Event{Type: audit.EventCompose, Mode: meta.Mode, Presets: meta.Presets, Output: "-"})

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}
