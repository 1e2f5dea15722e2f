// Package rangemap holds the per-program-point abstract state the fixed
// point engine propagates through a function's control-flow graph: a map
// from SSA value to its current Interval, plus the machinery to join and
// widen those maps across control-flow merges and loop back edges.
package rangemap

import (
	"golang.org/x/tools/go/ssa"

	"boundscheck.dev/boundscheck/interval"
)

// Map associates SSA values live at some program point with their current
// Interval. A value absent from the map is implicitly Top (unconstrained);
// callers that need an explicit lookup should use Get.
type Map map[ssa.Value]interval.Interval

// Get returns the interval recorded for v, or Top if v has no entry.
func (m Map) Get(v ssa.Value) interval.Interval {
	if iv, ok := m[v]; ok {
		return iv
	}
	return interval.Top()
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// With returns a copy of m with v bound to iv, leaving m itself untouched.
func (m Map) With(v ssa.Value, iv interval.Interval) Map {
	out := m.Clone()
	out[v] = iv
	return out
}

// Join computes the per-key interval hull of a and b: a key present in
// either map is present in the result, with Top standing in for an absent
// key on whichever side lacks it. This is the combinator used when two
// control-flow paths converge on the same block.
func Join(a, b Map) Map {
	out := make(Map, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok {
			out[k] = interval.Join(existing, v)
		} else {
			out[k] = interval.Join(interval.Top(), v)
		}
	}
	for k, v := range a {
		if _, ok := b[k]; !ok {
			out[k] = interval.Join(v, interval.Top())
		}
	}
	return out
}

// Widen applies interval.Widen key-by-key, comparing next against the
// previous iteration's state prev. Keys new to next are kept as-is; they
// have not yet had a chance to grow unboundedly.
func Widen(prev, next Map) Map {
	out := make(Map, len(next))
	for k, v := range next {
		if p, ok := prev[k]; ok {
			out[k] = interval.Widen(p, v)
		} else {
			out[k] = v
		}
	}
	return out
}

// Equal reports whether a and b bind the same set of keys to equal
// intervals, used by the fixed point engine to detect convergence.
func Equal(a, b Map) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		ov, ok := b[k]
		if !ok || !interval.Equal(v, ov) {
			return false
		}
	}
	return true
}
