package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/firefly-engineering/packcfg/internal/errors"
	"github.com/firefly-engineering/packcfg/internal/fragment"
)

// Format is an output format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	JS   Format = "js"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, JS}

// Meta describes how a configuration was composed.
type Meta struct {
	Mode    string
	Presets []string
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	case JS, "cjs":
		return JS, nil
	default:
		return "", errors.ValidationError(fmt.Sprintf("unknown output format %q (want json, yaml or js)", s))
	}
}

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, true
	case ".yaml", ".yml":
		return YAML, true
	case ".js", ".cjs":
		return JS, true
	default:
		return "", false
	}
}

// Render writes cfg to w in the given format.
func Render(w io.Writer, cfg *fragment.Mapping, format Format, meta Meta) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case JSON, "":
		data, err = renderJSON(cfg)
	case YAML:
		data, err = renderYAML(cfg)
	case JS:
		data, err = renderJS(cfg, meta)
	default:
		return errors.RenderError(fmt.Sprintf("unsupported format %q", format), nil)
	}
	if err != nil {
		return errors.RenderError(fmt.Sprintf("failed to render %s", format), err)
	}

	if _, err := w.Write(data); err != nil {
		return errors.RenderError("failed to write configuration", err)
	}
	return nil
}

func renderJSON(cfg *fragment.Mapping) ([]byte, error) {
	if cfg == nil {
		cfg = fragment.NewMapping()
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func renderYAML(cfg *fragment.Mapping) ([]byte, error) {
	if cfg == nil || cfg.Len() == 0 {
		return []byte("{}\n"), nil
	}
	return yaml.Marshal(toYAML(cfg))
}

// toYAML converts a value into types yaml.v2 encodes in order.
func toYAML(v fragment.Value) any {
	switch t := v.(type) {
	case *fragment.Mapping:
		out := make(yaml.MapSlice, 0, t.Len())
		t.Range(func(key string, child fragment.Value) bool {
			out = append(out, yaml.MapItem{Key: key, Value: toYAML(child)})
			return true
		})
		return out
	case fragment.Sequence:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = toYAML(child)
		}
		return out
	case fragment.Scalar:
		return t.Interface()
	default:
		return nil
	}
}

func renderJS(cfg *fragment.Mapping, meta Meta) ([]byte, error) {
	body, err := renderJSON(cfg)
	if err != nil {
		return nil, err
	}

	data := moduleData{
		Mode:    meta.Mode,
		Presets: meta.Presets,
		Body:    string(bytes.TrimRight(body, "\n")),
	}

	var buf bytes.Buffer
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute module template: %w", err)
	}
	return buf.Bytes(), nil
}
