// Package errors provides typed errors with exit codes for packcfg.
//
// # Error Types
//
// Error is the base error type that wraps an error with an exit code:
//
//	type Error struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Name    string // Offending mode or preset name, if any
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess        = 0 // Success
//	ExitGeneralError   = 1 // General/unknown errors
//	ExitUnknownMode    = 2 // Mode is not registered
//	ExitUnknownPreset  = 3 // Preset is not registered
//	ExitConfigError    = 4 // Settings could not be loaded
//	ExitPresetInvalid  = 5 // Preset exists but cannot be decoded
//	ExitRenderError    = 6 // Merged configuration could not be written
//	ExitBundlerFailed  = 7 // External bundler exited with an error
//
// # Error Constructors
//
//	errors.UnknownMode("staging")
//	errors.UnknownPreset("analyze")
//	errors.PresetInvalid("analyze", err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
