package boundscheck

import (
	"go/token"

	"golang.org/x/tools/go/ssa"

	"boundscheck.dev/boundscheck/config"
	"boundscheck.dev/boundscheck/interval"
	"boundscheck.dev/boundscheck/rangemap"
	"boundscheck.dev/boundscheck/ssair"
)

// divByZero records a definite integer division by zero the interval
// analysis proved rather than merely suspected: the divisor's interval at
// that program point collapsed to the exact, singleton range {0, 0}.
type divByZero struct {
	Pos token.Pos
}

// branchFeasibility is the engine's running verdict on a single *ssa.If,
// overwritten every time the block containing it is revisited so that
// only the verdict from the converged, final pass survives to Result.
type branchFeasibility struct {
	Pos             token.Pos
	TrueOK, FalseOK bool
}

// Result is the outcome of running the fixed point engine over one
// function: the stable interval for every SSA value it could determine,
// and any divide-by-zero corners it had to downgrade to Top along the way.
type Result struct {
	Values rangemap.Map
	// IndexRanges holds, for every array-index instruction, the index
	// operand's interval as of that exact program point: the block-local,
	// branch-refined range, not just the defining SSA value's global
	// interval. A loop-carried index can be far wider at its phi
	// definition than it is at a specific use guarded by a comparison.
	IndexRanges map[ssa.Instruction]interval.Interval
	DivByZero   []divByZero
	// Branches holds the converged feasibility verdict for every *ssa.If
	// the engine reached, keyed by the instruction itself. Populated
	// regardless of cfg.ReportInfeasibleBranches; whether to turn an
	// infeasible verdict into a diagnostic is the checker's decision.
	Branches  map[*ssa.If]branchFeasibility
	Reachable map[*ssa.BasicBlock]bool
	Exhausted bool // hit cfg.MaxPasses before converging; result is a best-effort snapshot
}

// FixedPointEngine computes, for a single function's SSA form, a sound
// interval for every value by propagating a rangemap.Map along each
// control-flow edge to convergence. It follows the same
// worklist-over-reachable-successors shape as a forward iterative
// dataflow analysis: a block is revisited whenever an incoming edge's
// state changes, and the computation halts once no block's outputs
// change. Widening is applied by each phi node against its own previous
// value on every revisit of its block. A revisit is caused by a loop back
// edge feeding new information into the block, or, in acyclic code, by a
// merge block being processed once from a shorter path and again when a
// longer path reaches it later; its phis widen in both cases.
type FixedPointEngine struct {
	fn  *ssa.Function
	cfg config.Config

	edges  map[rangemap.Edge]rangemap.EdgeState
	visits map[*ssa.BasicBlock]int

	values      rangemap.Map
	indexRanges map[ssa.Instruction]interval.Interval
	branches    map[*ssa.If]branchFeasibility
	divByZero   []divByZero
}

// NewFixedPointEngine prepares an engine to analyze fn.
func NewFixedPointEngine(fn *ssa.Function, cfg config.Config) *FixedPointEngine {
	return &FixedPointEngine{
		fn:          fn,
		cfg:         cfg,
		edges:       make(map[rangemap.Edge]rangemap.EdgeState),
		visits:      make(map[*ssa.BasicBlock]int),
		values:      rangemap.Map{},
		indexRanges: make(map[ssa.Instruction]interval.Interval),
		branches:    make(map[*ssa.If]branchFeasibility),
	}
}

// Run executes the fixed point computation and returns the stable result.
func (e *FixedPointEngine) Run() *Result {
	if len(e.fn.Blocks) == 0 {
		return &Result{
			Values:      e.values,
			IndexRanges: e.indexRanges,
			Branches:    e.branches,
			Reachable:   map[*ssa.BasicBlock]bool{},
		}
	}

	entry := e.fn.Blocks[0]
	queue := []*ssa.BasicBlock{entry}
	queued := map[*ssa.BasicBlock]bool{entry: true}
	reachable := map[*ssa.BasicBlock]bool{entry: true}

	passes := 0
	exhausted := false

	for len(queue) > 0 {
		passes++
		if passes > e.cfg.MaxPasses {
			exhausted = true
			break
		}

		b := queue[0]
		queue = queue[1:]
		queued[b] = false

		in := e.mergeIncoming(b, entry)
		e.visits[b]++

		out := e.transferBlock(b, in)

		for _, edge := range e.outgoingEdges(b, out) {
			old, existed := e.edges[edge.key]
			if existed && rangemap.EqualState(old, edge.state) {
				continue
			}
			e.edges[edge.key] = edge.state
			if edge.state.Reachable {
				reachable[edge.key.Succ] = true
			}
			if !queued[edge.key.Succ] {
				queue = append(queue, edge.key.Succ)
				queued[edge.key.Succ] = true
			}
		}
	}

	return &Result{
		Values:      e.values,
		IndexRanges: e.indexRanges,
		DivByZero:   e.divByZero,
		Branches:    e.branches,
		Reachable:   reachable,
		Exhausted:   exhausted,
	}
}

// mergeIncoming joins the range maps of every reachable edge flowing into
// b. The entry block has no incoming edges; it starts from the empty map,
// meaning every parameter begins at Top.
func (e *FixedPointEngine) mergeIncoming(b, entry *ssa.BasicBlock) rangemap.Map {
	if b == entry {
		return rangemap.Map{}
	}
	merged := rangemap.Map{}
	any := false
	for _, pred := range b.Preds {
		state, ok := e.edges[rangemap.Edge{Pred: pred, Succ: b}]
		if !ok || !state.Reachable {
			continue
		}
		if !any {
			merged = state.Ranges
			any = true
			continue
		}
		merged = rangemap.Join(merged, state.Ranges)
	}
	return merged
}

type outEdge struct {
	key   rangemap.Edge
	state rangemap.EdgeState
}

// outgoingEdges computes the EdgeState to propagate along every successor
// edge of b, given the range map out that held just before its
// terminator ran. A two-way *ssa.If terminator can produce two distinct
// maps, one per branch, refined by the comparison it branches on; any
// other terminator propagates out unchanged to its sole or zero
// successors.
func (e *FixedPointEngine) outgoingEdges(b *ssa.BasicBlock, out rangemap.Map) []outEdge {
	term := b.Instrs[len(b.Instrs)-1]
	ifInstr, isIf := term.(*ssa.If)
	if !isIf {
		edges := make([]outEdge, 0, len(b.Succs))
		for _, succ := range b.Succs {
			edges = append(edges, outEdge{
				key:   rangemap.Edge{Pred: b, Succ: succ},
				state: rangemap.EdgeState{Reachable: true, Ranges: out},
			})
		}
		return edges
	}

	trueSucc, falseSucc := ssair.BranchSuccessors(b)
	trueRanges, trueOK := refineBranch(out, ifInstr.Cond, true)
	falseRanges, falseOK := refineBranch(out, ifInstr.Cond, false)
	e.branches[ifInstr] = branchFeasibility{Pos: ifInstr.Cond.Pos(), TrueOK: trueOK, FalseOK: falseOK}
	return []outEdge{
		{rangemap.Edge{Pred: b, Succ: trueSucc}, rangemap.EdgeState{Reachable: trueOK, Ranges: trueRanges}},
		{rangemap.Edge{Pred: b, Succ: falseSucc}, rangemap.EdgeState{Reachable: falseOK, Ranges: falseRanges}},
	}
}

// refineBranch tightens out with the fact that cond evaluates to want on
// the branch being computed. A cond that isn't a recognized int
// comparison leaves the ranges untouched but still reachable: the
// analysis simply has no opinion on it.
func refineBranch(out rangemap.Map, cond ssa.Value, want bool) (rangemap.Map, bool) {
	cmp, ok := cond.(*ssa.BinOp)
	if !ok {
		return out, true
	}
	pred, ok := ssair.ComparisonPredicate(cmp.Op)
	if !ok {
		return out, true
	}
	if !want {
		pred = negate(pred)
	}

	lhs := rangeOf(cmp.X, out)
	rhs := rangeOf(cmp.Y, out)
	newLhs, newRhs, feasible := interval.Refine(lhs, rhs, pred)
	if !feasible {
		return rangemap.Map{}, false
	}

	refined := out.With(cmp.X, newLhs).With(cmp.Y, newRhs)
	return refined, true
}

func negate(p interval.Predicate) interval.Predicate {
	switch p {
	case interval.Eq:
		return interval.Ne
	case interval.Ne:
		return interval.Eq
	case interval.Lt:
		return interval.Ge
	case interval.Le:
		return interval.Gt
	case interval.Gt:
		return interval.Le
	case interval.Ge:
		return interval.Lt
	default:
		panic("boundscheck: unknown predicate")
	}
}

// rangeOf looks up v's interval: constants evaluate directly, everything
// else falls back to its entry in cur, defaulting to Top if cur has no
// opinion on it yet.
func rangeOf(v ssa.Value, cur rangemap.Map) interval.Interval {
	if n, ok := ssair.ConstInt(v); ok {
		return interval.Single(n)
	}
	return cur.Get(v)
}
