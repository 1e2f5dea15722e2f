package rangemap

import (
	"testing"

	"golang.org/x/tools/go/ssa"

	"boundscheck.dev/boundscheck/interval"
)

func TestJoinUnion(t *testing.T) {
	var v1, v2 ssa.Value = &ssa.Parameter{}, &ssa.Parameter{}

	a := Map{v1: interval.Range(0, 5)}
	b := Map{v1: interval.Range(3, 10), v2: interval.Single(1)}

	got := Join(a, b)
	if !interval.Equal(got[v1], interval.Range(0, 10)) {
		t.Errorf("got[v1] = %v, want [0, 10]", got[v1])
	}
	if !got[v2].IsTop() && !interval.Equal(got[v2], interval.Join(interval.Top(), interval.Single(1))) {
		t.Errorf("got[v2] = %v", got[v2])
	}
}

func TestWidenStabilizes(t *testing.T) {
	var v ssa.Value = &ssa.Parameter{}
	prev := Map{v: interval.Range(0, 9)}
	next := Map{v: interval.Range(0, 10)}

	widened := Widen(prev, next)
	if widened[v].Hi != interval.MaxInt32 {
		t.Errorf("Widen did not jump to +∞: %v", widened[v])
	}
}

func TestEqual(t *testing.T) {
	var v ssa.Value = &ssa.Parameter{}
	a := Map{v: interval.Range(0, 5)}
	b := Map{v: interval.Range(0, 5)}
	c := Map{v: interval.Range(0, 6)}

	if !Equal(a, b) {
		t.Error("expected a == b")
	}
	if Equal(a, c) {
		t.Error("expected a != c")
	}
}

func TestWith(t *testing.T) {
	var v ssa.Value = &ssa.Parameter{}
	m := Map{}
	m2 := m.With(v, interval.Single(42))
	if len(m) != 0 {
		t.Error("With mutated receiver")
	}
	if !interval.Equal(m2.Get(v), interval.Single(42)) {
		t.Errorf("m2.Get(v) = %v", m2.Get(v))
	}
}
