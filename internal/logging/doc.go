// Package logging provides logging utilities for packcfg.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("merging fragment", "source", "preset:analyze")
//	logging.Warn("preset requested twice", "preset", name)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Building for: %s", mode)
//	logging.UserSuccess("Wrote %s", path)
//	logging.UserWarning("No presets found in %s", dir)
//	logging.UserError("Bundler failed: %v", err)
//
// All user output goes to UserOut (stderr by default) because stdout carries
// the composed configuration.
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
