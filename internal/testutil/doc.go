// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Preset fixtures are embedded using go:embed, one per supported format:
//
//	fixtures/presets/analyze.toml
//	fixtures/presets/compress.yaml
//	fixtures/presets/sourcemaps.json
//
// Raw access:
//
//	data, err := testutil.LoadFixture("analyze.toml")
//
// # Test Environment
//
// TestEnv is a throwaway project root with a presets directory:
//
//	env := testutil.NewTestEnv(t)
//	defer env.Cleanup()
//
//	env.InstallFixtures()
//	env.AddPreset("bail.toml", "bail = true\n")
//	env.WriteSettings(`mode = "development"`)
//
//	a := env.App() // also installed as app.Default
package testutil
