package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/packcfg/internal/app"
	"github.com/firefly-engineering/packcfg/internal/config"
	"github.com/firefly-engineering/packcfg/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	rootDir    string
)

var rootCmd = &cobra.Command{
	Use:   "packcfg",
	Short: "Bundler configuration composer",
	Long: `packcfg builds a webpack configuration from layered fragments.

Every configuration is the deep merge of, in order:
  - the base fragment (entry point, static asset rules)
  - the fragment for the build mode (development or production)
  - any named presets, in the order given

Later fragments override scalar values of earlier ones, concatenate lists
and merge nested mappings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())

		settings, err := config.Load(&config.Settings{Root: rootDir}, nil)
		if err != nil {
			return err
		}
		logging.Debug("settings loaded", "root", settings.Root, "mode", settings.Mode, "presets_dir", settings.PresetsDir)

		a := app.New(app.WithSettings(settings))
		if err := a.Err(); err != nil {
			return err
		}
		app.SetDefault(a)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root (default: PACKCFG_ROOT or the current directory)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
