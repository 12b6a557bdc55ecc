package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/app"
	"github.com/firefly-engineering/packcfg/internal/modes"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List build modes",
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

func runModes(cmd *cobra.Command, args []string) error {
	current := settings().Mode
	if current == "" {
		current = modes.Default
	}

	for _, name := range app.Default.Modes.Names() {
		if name == current {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
