// Package preset resolves preset names to configuration fragments.
//
// # Registries
//
// Registry is the lookup contract used by the composer:
//
//	type Registry interface {
//	    Lookup(name string) (*fragment.Mapping, error)
//	    Names() ([]string, error)
//	}
//
// MapRegistry serves fragments held in memory. DirRegistry serves preset
// files from a directory, one file per preset:
//
//	build-tools/presets/analyze.toml
//	build-tools/presets/compress.yaml
//	build-tools/presets/sourcemaps.json
//
// The file name without its extension is the preset name. The set of names
// is fixed when the registry is opened; file contents are decoded on lookup.
//
// # Errors
//
// A name with no preset fails with errors.UnknownPreset. A preset that exists
// but cannot be read or decoded, or a name provided by two files with
// different extensions, fails with errors.PresetInvalid.
//
// # Key Order
//
// Decoders keep the key order of the source document so that composed
// output is stable and readable. TOML order comes from the decoder metadata,
// YAML from the yaml.Node tree (merge keys resolved, keys kept as
// written) and JSON from the token stream.
package preset
