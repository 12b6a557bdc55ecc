// Package config provides the settings packcfg runs with.
//
// # Layers
//
// Settings are built from layers, lowest precedence first:
//
//   - Defaults: production mode, presets in build-tools/presets, output to
//     .packcfg/webpack.config.json, bundler "webpack"
//   - The project settings file, packcfg.toml in the project root
//   - PACKCFG_* environment variables
//   - Command-line flags
//
// A field left empty in a layer keeps the value from the layers below it.
// The layers are folded with mergo:
//
//	settings, err := config.NewBuilder().
//	    WithDefaults().
//	    WithFile(paths.SettingsFile).
//	    WithEnv(nil).
//	    WithOverrides(flags).
//	    Build()
//
// # Settings File
//
//	mode = "development"
//	presets = ["analyze"]
//	presets_dir = "build-tools/presets"
//	output = "dist/webpack.config.js"
//	format = "js"
//	bundler = "npx webpack --progress"
//
// A missing settings file is not an error. A malformed one is.
//
// # Environment
//
//	PACKCFG_ROOT, PACKCFG_MODE, PACKCFG_PRESETS (comma separated),
//	PACKCFG_PRESETS_DIR, PACKCFG_OUTPUT, PACKCFG_FORMAT, PACKCFG_BUNDLER
package config
