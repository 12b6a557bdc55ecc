package fragment

// Merge deep-merges b over a and returns a new mapping. Neither input is
// modified and the result shares no containers with them.
func Merge(a, b *Mapping) *Mapping {
	out := NewMapping()
	a.Range(func(k string, v Value) bool {
		out.Set(k, Clone(v))
		return true
	})
	b.Range(func(k string, v Value) bool {
		prev, ok := out.values[k]
		if !ok {
			out.Set(k, Clone(v))
			return true
		}
		out.values[k] = mergeValue(prev, v)
		return true
	})
	return out
}

// mergeValue combines an existing (already cloned) value with a later one.
func mergeValue(prev, next Value) Value {
	switch p := prev.(type) {
	case *Mapping:
		if n, ok := next.(*Mapping); ok {
			return Merge(p, n)
		}
	case Sequence:
		if n, ok := next.(Sequence); ok {
			out := make(Sequence, 0, len(p)+len(n))
			out = append(out, p...)
			for _, v := range n {
				out = append(out, Clone(v))
			}
			return out
		}
	}
	return Clone(next)
}

// Fold merges fragments from left to right. Nil fragments are skipped and
// an empty call yields an empty mapping.
func Fold(fragments ...*Mapping) *Mapping {
	out := NewMapping()
	for _, f := range fragments {
		if f == nil {
			continue
		}
		out = Merge(out, f)
	}
	return out
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch x := v.(type) {
	case *Mapping:
		return CloneMapping(x)
	case Sequence:
		if x == nil {
			return Sequence(nil)
		}
		out := make(Sequence, len(x))
		for i, e := range x {
			out[i] = Clone(e)
		}
		return out
	case Scalar:
		return x
	}
	return Null
}

// CloneMapping returns a deep copy of m.
func CloneMapping(m *Mapping) *Mapping {
	out := NewMapping()
	m.Range(func(k string, v Value) bool {
		out.Set(k, Clone(v))
		return true
	})
	return out
}

// Equal reports whether a and b are structurally identical, including the
// key order of nested mappings.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Mapping:
		y, ok := b.(*Mapping)
		return ok && x.Equal(y)
	case Sequence:
		y, ok := b.(Sequence)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Scalar:
		y, ok := b.(Scalar)
		return ok && x.Equal(y)
	}
	return a == nil && b == nil
}

// Equal reports whether two scalars hold the same type and value.
func (s Scalar) Equal(o Scalar) bool {
	return s.v == o.v
}
