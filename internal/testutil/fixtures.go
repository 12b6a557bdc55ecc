package testutil

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed fixtures/presets/*
var fixturesFS embed.FS

// LoadFixture loads a preset fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/presets/" + name)
}

// FixtureNames lists the preset fixture files.
func FixtureNames() ([]string, error) {
	entries, err := fs.ReadDir(fixturesFS, "fixtures/presets")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// CopyFixtures writes every preset fixture into dir.
func CopyFixtures(dir string) error {
	names, err := FixtureNames()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, name := range names {
		data, err := LoadFixture(name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return err
		}
	}
	return nil
}
