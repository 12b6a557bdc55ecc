package preset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/packcfg/internal/fragment"
)

// Format identifies the file format of a preset.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// extensions maps file extensions to preset formats.
var extensions = map[string]Format{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// FormatForPath returns the preset format implied by a file extension.
func FormatForPath(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Decode parses a preset document. The top level must be a mapping.
func Decode(format Format, data []byte) (*fragment.Mapping, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported preset format %q", format)
	}
}

func decodeTOML(data []byte) (*fragment.Mapping, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse toml: %w", err)
	}

	order := make(map[string]int)
	for i, key := range md.Keys() {
		p := strings.Join(key, "\x00")
		if _, seen := order[p]; !seen {
			order[p] = i
		}
	}

	v, err := tomlValue(raw, nil, order)
	if err != nil {
		return nil, err
	}
	return v.(*fragment.Mapping), nil
}

// tomlValue converts decoded TOML, ordering table keys by their position in
// the document. Keys the metadata does not cover sort alphabetically after
// the ones it does.
func tomlValue(v any, path []string, order map[string]int) (fragment.Value, error) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		pos := func(k string) (int, bool) {
			i, ok := order[strings.Join(append(path[:len(path):len(path)], k), "\x00")]
			return i, ok
		}
		sort.Slice(keys, func(i, j int) bool {
			pi, oki := pos(keys[i])
			pj, okj := pos(keys[j])
			switch {
			case oki && okj:
				return pi < pj
			case oki != okj:
				return oki
			default:
				return keys[i] < keys[j]
			}
		})

		m := fragment.NewMapping()
		for _, k := range keys {
			child, err := tomlValue(t[k], append(path[:len(path):len(path)], k), order)
			if err != nil {
				return nil, err
			}
			m.Set(k, child)
		}
		return m, nil
	case []map[string]any:
		seq := make(fragment.Sequence, 0, len(t))
		for _, item := range t {
			child, err := tomlValue(item, path, order)
			if err != nil {
				return nil, err
			}
			seq = append(seq, child)
		}
		return seq, nil
	case []any:
		seq := make(fragment.Sequence, 0, len(t))
		for _, item := range t {
			child, err := tomlValue(item, path, order)
			if err != nil {
				return nil, err
			}
			seq = append(seq, child)
		}
		return seq, nil
	default:
		return leafValue(t)
	}
}

// leafValue converts a decoded scalar. Non-finite floats are rejected since
// no output format can carry them, and TOML local dates and times keep their
// document form instead of gaining a UTC offset.
func leafValue(v any) (fragment.Value, error) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("unsupported non-finite number %v", t)
		}
	case time.Time:
		switch t.Location().String() {
		case tomlLocalDate:
			return fragment.String(t.Format("2006-01-02")), nil
		case tomlLocalTime:
			return fragment.String(t.Format("15:04:05.999999999")), nil
		case tomlLocalDatetime:
			return fragment.String(t.Format("2006-01-02T15:04:05.999999999")), nil
		}
	}
	return fragment.FromNative(v)
}

// Zone names BurntSushi/toml gives to local date and time values.
const (
	tomlLocalDatetime = "datetime-local"
	tomlLocalDate     = "date-local"
	tomlLocalTime     = "time-local"
)

func decodeYAML(data []byte) (*fragment.Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if doc.Kind == 0 {
		return fragment.NewMapping(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return fragment.NewMapping(), nil
		}
		root = resolveAlias(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse yaml: top level must be a mapping")
	}

	m, err := yamlMapping(root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return m, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// yamlMapping converts a mapping node. Keys keep their source text. Merge
// keys (<<) contribute the keys of the referenced mappings that the mapping
// does not set itself; with a list of mappings, earlier ones win.
func yamlMapping(n *yaml.Node) (*fragment.Mapping, error) {
	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolveAlias(n.Content[i])
		if isMergeKey(key) {
			continue
		}
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
		}
		if explicit[key.Value] {
			return nil, fmt.Errorf("line %d: duplicate key %q", key.Line, key.Value)
		}
		explicit[key.Value] = true
	}

	m := fragment.NewMapping()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolveAlias(n.Content[i])
		value := n.Content[i+1]

		if isMergeKey(key) {
			if err := yamlMerge(m, value, explicit); err != nil {
				return nil, err
			}
			continue
		}

		child, err := yamlValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key.Value, err)
		}
		m.Set(key.Value, child)
	}
	return m, nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && n.ShortTag() == "!!merge"
}

func yamlMerge(m *fragment.Mapping, n *yaml.Node, explicit map[string]bool) error {
	n = resolveAlias(n)

	var sources []*yaml.Node
	switch n.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{n}
	case yaml.SequenceNode:
		for _, item := range n.Content {
			sources = append(sources, resolveAlias(item))
		}
	default:
		return fmt.Errorf("line %d: merge value must be a mapping or a list of mappings", n.Line)
	}

	for _, src := range sources {
		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: merge value must be a mapping or a list of mappings", src.Line)
		}
		merged, err := yamlMapping(src)
		if err != nil {
			return err
		}
		merged.Range(func(k string, v fragment.Value) bool {
			if explicit[k] {
				return true
			}
			if _, ok := m.Get(k); ok {
				return true
			}
			m.Set(k, v)
			return true
		})
	}
	return nil
}

func yamlValue(n *yaml.Node) (fragment.Value, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		seq := make(fragment.Sequence, 0, len(n.Content))
		for i, item := range n.Content {
			child, err := yamlValue(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			seq = append(seq, child)
		}
		return seq, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str", "!!timestamp", "!!binary":
			return fragment.String(n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return leafValue(v)
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}

func decodeJSON(data []byte) (*fragment.Mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("failed to parse json: top level must be an object")
	}
	m, err := jsonObject(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("failed to parse json: unexpected data after top-level object")
	}
	return m, nil
}

// jsonObject reads the members of an object whose opening brace has been
// consumed.
func jsonObject(dec *json.Decoder) (*fragment.Mapping, error) {
	m := fragment.NewMapping()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		v, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func jsonValue(dec *json.Decoder) (fragment.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			seq := fragment.Sequence{}
			for dec.More() {
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				seq = append(seq, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return seq, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return fragment.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return fragment.Float(f), nil
	case nil:
		return fragment.Null, nil
	default:
		return fragment.FromNative(t)
	}
}
