package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/fragment"
	"github.com/firefly-engineering/packcfg/internal/logging"
)

// DirRegistry serves presets stored as files in a directory.
type DirRegistry struct {
	dir   string
	files map[string][]string
}

// Info describes a preset file.
type Info struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Format Format `json:"format"`
	// Keys are the top-level keys the preset sets.
	Keys []string `json:"keys"`
}

// OpenDir indexes the preset files in dir. A missing directory yields an
// empty registry.
func OpenDir(dir string) (*DirRegistry, error) {
	r := &DirRegistry{dir: dir, files: make(map[string][]string)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read presets directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := FormatForPath(entry.Name()); !ok {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !ValidName(name) {
			logging.Debug("skipping preset file with invalid name", "file", entry.Name())
			continue
		}
		r.files[name] = append(r.files[name], entry.Name())
	}

	return r, nil
}

// Dir returns the directory the registry reads from.
func (r *DirRegistry) Dir() string {
	return r.dir
}

// Lookup implements Registry.
func (r *DirRegistry) Lookup(name string) (*fragment.Mapping, error) {
	path, format, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.PresetInvalid(name, err)
	}
	m, err := Decode(format, data)
	if err != nil {
		return nil, errors.PresetInvalid(name, err)
	}

	logging.Debug("loaded preset", "name", name, "path", path, "keys", m.Len())
	return m, nil
}

// Names implements Registry.
func (r *DirRegistry) Names() ([]string, error) {
	names := make([]string, 0, len(r.files))
	for name := range r.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// List describes every preset in the directory. Presets that fail to load
// are skipped with a warning.
func (r *DirRegistry) List() ([]Info, error) {
	names, err := r.Names()
	if err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(names))
	for _, name := range names {
		path, format, err := r.resolve(name)
		if err != nil {
			logging.Warn("skipping preset", "name", name, "error", err)
			continue
		}
		m, err := r.Lookup(name)
		if err != nil {
			logging.Warn("skipping preset", "name", name, "error", err)
			continue
		}
		infos = append(infos, Info{Name: name, Path: path, Format: format, Keys: m.Keys()})
	}
	return infos, nil
}

// resolve maps a preset name to its file.
func (r *DirRegistry) resolve(name string) (string, Format, error) {
	if !ValidName(name) {
		return "", "", errors.UnknownPreset(name)
	}
	files, ok := r.files[name]
	if !ok {
		return "", "", errors.UnknownPreset(name)
	}
	if len(files) > 1 {
		return "", "", errors.PresetInvalid(name,
			fmt.Errorf("defined by more than one file: %s", strings.Join(files, ", ")))
	}

	path, err := securejoin.SecureJoin(r.dir, files[0])
	if err != nil {
		return "", "", errors.PresetInvalid(name, err)
	}
	format, _ := FormatForPath(files[0])
	return path, format, nil
}
