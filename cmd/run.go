package cmd

import (
	"fmt"
	"os"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/audit"
	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/logging"
	"github.com/firefly-engineering/packcfg/internal/system"
)

var (
	runSel    selection
	runDryRun bool
)

var runCmd = &cobra.Command{
	Use:   "run [-- <bundler args>]",
	Short: "Compose the configuration and run the bundler",
	Long: `Compose the configuration, write it to the output file from the
settings (default .packcfg/webpack.config.json) and run the bundler with
--config pointing at it. Arguments after -- are passed to the bundler.
NODE_ENV is set to the mode unless it is already set.

Examples:
  packcfg run -m production
  packcfg run -m development -- serve --port 8080`,
	RunE: runRun,
}

func init() {
	addSelectionFlags(runCmd, &runSel)
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Write the configuration and print the bundler command without running it")
	rootCmd.AddCommand(runCmd)
}

// bundlerCommand builds the bundler argv from the configured command line.
func bundlerCommand(commandLine, configPath string, extra []string) ([]string, error) {
	argv, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, errors.ValidationError(fmt.Sprintf("invalid bundler command %q: %v", commandLine, err))
	}
	if len(argv) == 0 {
		return nil, errors.ValidationError("bundler command is empty")
	}

	argv = append(argv, extra...)
	return append(argv, "--config", configPath), nil
}

func runRun(cmd *cobra.Command, args []string) error {
	s := settings()

	mode, presets := runSel.resolve()
	cfg, meta, err := composeFor(mode, presets)
	if err != nil {
		recordFailure(mode, presets, err)
		return err
	}

	path := s.Resolve(s.Output)
	if err := writeConfig(path, cfg, s.OutputFormat(), meta); err != nil {
		return err
	}
	logging.Debug("configuration written", "path", path, "format", s.OutputFormat())

	argv, err := bundlerCommand(s.Bundler, path, args)
	if err != nil {
		return err
	}

	if runDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), shellquote.Join(argv...))
		return nil
	}

	logInfo("Running %s (%s)", shellquote.Join(argv...), meta.Mode)

	err = system.DefaultRunner().Run(cmd.Context(), system.Command{
		Argv:   argv,
		Dir:    s.Root,
		Env:    map[string]string{"NODE_ENV": meta.Mode},
		Stdin:  os.Stdin,
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		runErr := errors.BundlerFailed(argv[0], err)
		recordFailure(meta.Mode, meta.Presets, runErr)
		return runErr
	}
	record(audit.Event{Type: audit.EventRun, Mode: meta.Mode, Presets: meta.Presets, Output: path, Details: shellquote.Join(argv...)})

	logSuccess("Bundler finished")
	return nil
}
