package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/audit"
	"github.com/firefly-engineering/packcfg/internal/logging"
	"github.com/firefly-engineering/packcfg/internal/render"
)

var (
	composeSel    selection
	composeOutput string
	composeFormat string
)

var composeCmd = &cobra.Command{
	Use:     "compose",
	Aliases: []string{"build"},
	Short:   "Compose the bundler configuration",
	Long: `Compose the configuration for a mode and a set of presets.

The result is written to stdout unless --output is given. The format is
taken from --format, then from the output file extension, then from the
settings, and defaults to json.

Examples:
  packcfg compose
  packcfg compose -m development -p analyze
  packcfg compose -p analyze,compress -o dist/webpack.config.js`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func init() {
	addSelectionFlags(composeCmd, &composeSel)
	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "", "Write to a file instead of stdout")
	composeCmd.Flags().StringVarP(&composeFormat, "format", "f", "", "Output format: json, yaml or js")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(composeFormat, composeOutput)
	if err != nil {
		return err
	}

	mode, presets := composeSel.resolve()
	cfg, meta, err := composeFor(mode, presets)
	if err != nil {
		recordFailure(mode, presets, err)
		return err
	}

	if composeOutput == "" {
		if err := render.Render(cmd.OutOrStdout(), cfg, format, meta); err != nil {
			return err
		}
		record(audit.Event{Type: audit.EventCompose, Mode: meta.Mode, Presets: meta.Presets, Output: "-"})
		return nil
	}

	path := settings().Resolve(composeOutput)
	if err := writeConfig(path, cfg, format, meta); err != nil {
		recordFailure(meta.Mode, meta.Presets, err)
		return err
	}
	record(audit.Event{Type: audit.EventCompose, Mode: meta.Mode, Presets: meta.Presets, Output: path})
	logging.Debug("configuration written", "path", path, "format", format)
	logSuccess("Wrote %s configuration to %s", meta.Mode, path)
	return nil
}
