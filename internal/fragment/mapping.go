package fragment

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Mapping is an ordered string-keyed mapping. The zero value is not usable;
// create mappings with NewMapping.
type Mapping struct {
	keys   []string
	values map[string]Value
}

func (*Mapping) Kind() Kind { return KindMapping }
func (*Mapping) value()     {}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Pair is a key/value entry used to build mappings inline.
type Pair struct {
	Key   string
	Value Value
}

// Map builds a mapping from pairs in the given order. A repeated key keeps
// its first position and its last value.
func Map(pairs ...Pair) *Mapping {
	m := NewMapping()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// P is shorthand for a Pair.
func P(key string, v Value) Pair {
	return Pair{Key: key, Value: v}
}

// Set stores v under key. New keys are appended; existing keys keep their
// position.
func (m *Mapping) Set(key string, v Value) {
	if v == nil {
		v = Null
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key from the mapping.
func (m *Mapping) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for each entry in order until fn returns false.
func (m *Mapping) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Equal reports whether m and o hold the same keys in the same order with
// equal values.
func (m *Mapping) Equal(o *Mapping) bool {
	if m.Len() != o.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !Equal(m.values[k], o.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the mapping as a JSON object preserving key order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshalValue(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the sequence as a JSON array.
func (s Sequence) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		vb, err := marshalValue(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the scalar's underlying value.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}

func marshalValue(v Value) ([]byte, error) {
	switch x := v.(type) {
	case *Mapping:
		return x.MarshalJSON()
	case Sequence:
		return x.MarshalJSON()
	case Scalar:
		return x.MarshalJSON()
	}
	return []byte("null"), nil
}

// Lookup resolves a dotted path such as "module.rules" or "plugins.0"
// against m. Numeric segments index into sequences.
func Lookup(m *Mapping, path string) (Value, bool) {
	if path == "" {
		return m, m != nil
	}
	var cur Value = m
	for _, seg := range strings.Split(path, ".") {
		switch x := cur.(type) {
		case *Mapping:
			v, ok := x.Get(seg)
			if !ok {
				return nil, false
			}
			cur = v
		case Sequence:
			i, ok := parseIndex(seg)
			if !ok || i >= len(x) {
				return nil, false
			}
			cur = x[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func parseIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
