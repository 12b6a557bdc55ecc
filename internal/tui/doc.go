// Package tui provides terminal user interface components for packcfg.
//
// # Preset Picker
//
// The picker lists the available presets and lets the user choose a mode and
// an ordered set of presets to compose:
//
//	result, err := tui.RunPicker(infos, modeNames, settings.Mode)
//	switch result.Action {
//	case tui.ActionCompose:
//	    // Compose result.Mode with result.Presets
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// Presets are applied in the order they were selected; the selection number
// is shown next to each chosen preset.
//
// # Keys
//
//   - space or x toggles the highlighted preset
//   - tab cycles through the modes
//   - enter composes the selection
//   - / filters, q or esc quits
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
