package fragment

import (
	"fmt"
	"math"
)

// Kind identifies which variant of Value is held.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a configuration value. It is implemented only by *Mapping,
// Sequence and Scalar.
type Value interface {
	Kind() Kind
	value()
}

// Sequence is an ordered list of values.
type Sequence []Value

func (Sequence) Kind() Kind { return KindSequence }
func (Sequence) value()     {}

// Seq builds a Sequence from values.
func Seq(values ...Value) Sequence {
	return Sequence(values)
}

// Scalar holds a leaf value: nil, bool, int64, float64 or string.
type Scalar struct {
	v any
}

func (Scalar) Kind() Kind { return KindScalar }
func (Scalar) value()     {}

// Null is the nil scalar.
var Null = Scalar{}

// String returns a string scalar.
func String(s string) Scalar { return Scalar{v: s} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{v: b} }

// Int returns an integer scalar.
func Int(i int64) Scalar { return Scalar{v: i} }

// Float returns a floating point scalar. Integral floats are kept as floats.
func Float(f float64) Scalar { return Scalar{v: f} }

// Interface returns the underlying Go value.
func (s Scalar) Interface() any { return s.v }

// IsNull reports whether the scalar is nil.
func (s Scalar) IsNull() bool { return s.v == nil }

func (s Scalar) String() string {
	if s.v == nil {
		return "null"
	}
	return fmt.Sprint(s.v)
}

// AsString returns the scalar as a string if it holds one.
func (s Scalar) AsString() (string, bool) {
	str, ok := s.v.(string)
	return str, ok
}

// AsBool returns the scalar as a bool if it holds one.
func (s Scalar) AsBool() (bool, bool) {
	b, ok := s.v.(bool)
	return b, ok
}

// scalarOf converts a native leaf value to a Scalar.
func scalarOf(v any) (Scalar, bool) {
	switch x := v.(type) {
	case nil:
		return Null, true
	case bool:
		return Bool(x), true
	case string:
		return String(x), true
	case int:
		return Int(int64(x)), true
	case int8:
		return Int(int64(x)), true
	case int16:
		return Int(int64(x)), true
	case int32:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case uint:
		return unsignedScalar(uint64(x)), true
	case uint8:
		return Int(int64(x)), true
	case uint16:
		return Int(int64(x)), true
	case uint32:
		return Int(int64(x)), true
	case uint64:
		return unsignedScalar(x), true
	case float32:
		return Float(float64(x)), true
	case float64:
		return Float(x), true
	}
	return Scalar{}, false
}

func unsignedScalar(u uint64) Scalar {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}
