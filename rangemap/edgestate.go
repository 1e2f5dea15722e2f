package rangemap

import "golang.org/x/tools/go/ssa"

// Edge identifies one directed control-flow edge, predecessor block to
// successor block, within a single function's SSA form.
type Edge struct {
	Pred, Succ *ssa.BasicBlock
}

// EdgeState is the abstract state the fixed point engine associates with
// one control-flow edge: whether the edge is known reachable given the
// ranges propagated so far, and the value ranges live as control crosses
// it. A conditional branch can refine ranges differently on its true and
// false edges, which is why state lives on edges rather than on blocks
// alone.
type EdgeState struct {
	Reachable bool
	Ranges    Map
}

// Bottom is the state of an edge nothing has reached yet.
func Bottom() EdgeState {
	return EdgeState{Reachable: false, Ranges: Map{}}
}

// EqualState reports whether two edge states are equivalent for the
// purposes of fixed-point convergence.
func EqualState(a, b EdgeState) bool {
	if a.Reachable != b.Reachable {
		return false
	}
	return Equal(a.Ranges, b.Ranges)
}
