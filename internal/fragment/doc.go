// Package fragment provides the value model and deep merge used to compose
// bundler configurations.
//
// # Values
//
// A configuration fragment is an ordered mapping from string keys to values.
// Values are a closed set of three kinds:
//
//	*Mapping  // ordered string-keyed mapping
//	Sequence  // ordered list of values
//	Scalar    // nil, bool, int64, float64 or string
//
// The Value interface is sealed, so a type switch over the three kinds is
// exhaustive.
//
// # Merge Rules
//
// Merge(a, b) combines two mappings key by key:
//
//  1. A key present on one side only is copied.
//  2. Two mappings are merged recursively.
//  3. Two sequences are concatenated, a's entries first.
//  4. Any other pair (two scalars, or two different kinds) resolves to b.
//  5. Keys keep the order in which they were first seen.
//
// Merge never fails and never mutates its inputs. Fold applies Merge from
// left to right, so later fragments take precedence:
//
//	cfg := fragment.Fold(base, mode, presetA, presetB)
package fragment
