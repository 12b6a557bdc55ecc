package fragment

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// FromNative converts decoded Go data into a Value. Maps become mappings with
// keys sorted lexically, since Go maps carry no order; decoders that know the
// source order should build mappings themselves.
func FromNative(v any) (Value, error) {
	if s, ok := scalarOf(v); ok {
		return s, nil
	}

	switch x := v.(type) {
	case Value:
		return Clone(x), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case map[string]any:
		m := NewMapping()
		for _, k := range sortedKeys(x) {
			child, err := FromNative(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m.Set(k, child)
		}
		return m, nil
	case []any:
		seq := make(Sequence, 0, len(x))
		for i, e := range x {
			child, err := FromNative(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			seq = append(seq, child)
		}
		return seq, nil
	}

	return fromReflect(reflect.ValueOf(v))
}

// fromReflect handles typed maps and slices such as map[any]any or
// []map[string]any.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			child, err := FromNative(byKey[k].Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m.Set(k, child)
		}
		return m, nil
	case reflect.Slice, reflect.Array:
		seq := make(Sequence, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			child, err := FromNative(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			seq = append(seq, child)
		}
		return seq, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null, nil
		}
		return FromNative(rv.Elem().Interface())
	case reflect.Invalid:
		return Null, nil
	}
	return nil, fmt.Errorf("unsupported value of type %s", rv.Type())
}

// MappingFromNative converts a decoded document into a mapping. The top
// level must be a map.
func MappingFromNative(v any) (*Mapping, error) {
	val, err := FromNative(v)
	if err != nil {
		return nil, err
	}
	m, ok := val.(*Mapping)
	if !ok {
		return nil, fmt.Errorf("expected a mapping at the top level, got %s", val.Kind())
	}
	return m, nil
}

// ToNative converts a Value back into plain Go data. Mappings become
// map[string]any, so key order is lost.
func ToNative(v Value) any {
	switch x := v.(type) {
	case *Mapping:
		out := make(map[string]any, x.Len())
		x.Range(func(k string, e Value) bool {
			out[k] = ToNative(e)
			return true
		})
		return out
	case Sequence:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ToNative(e)
		}
		return out
	case Scalar:
		return x.v
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
