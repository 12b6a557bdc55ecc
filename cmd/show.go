package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/fragment"
)

var showSel selection

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show one value of the composed configuration",
	Long: `Compose the configuration and print the value at a dotted path.

Sequence elements are addressed by index.

Examples:
  packcfg show devServer -m development
  packcfg show module.rules.0.use
  packcfg show plugins -p analyze`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	addSelectionFlags(showCmd, &showSel)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, _, err := composeSelection(&showSel)
	if err != nil {
		return err
	}

	v, ok := fragment.Lookup(cfg, path)
	if !ok {
		return errors.ValidationError(fmt.Sprintf("no value at %q in the composed configuration", path))
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.RenderError("failed to render value", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
