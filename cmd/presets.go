package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	infos, err := listPresets()
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	if len(infos) == 0 {
		logInfo("No presets found. Add <name>.toml, .yaml or .json files to %s", paths().PresetsDir)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tFORMAT\tKEYS\tFILE")
	fmt.Fprintln(w, "------\t------\t----\t----")

	for _, p := range infos {
		keys := strings.Join(p.Keys, ",")
		if keys == "" {
			keys = "-"
		}
		format := string(p.Format)
		if format == "" {
			format = "-"
		}
		file := "-"
		if p.Path != "" {
			file = filepath.Base(p.Path)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, format, keys, file)
	}

	return w.Flush()
}
