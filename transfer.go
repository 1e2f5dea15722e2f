package boundscheck

import (
	"go/token"

	"golang.org/x/tools/go/ssa"

	"boundscheck.dev/boundscheck/interval"
	"boundscheck.dev/boundscheck/rangemap"
	"boundscheck.dev/boundscheck/ssair"
)

// transferBlock runs every instruction of b against in, in order, updating
// e.values for any SSA value whose interval improves on the implicit Top
// default, and returns the range map in effect just before b's terminator
// runs (the map outgoingEdges refines per branch).
func (e *FixedPointEngine) transferBlock(b *ssa.BasicBlock, in rangemap.Map) rangemap.Map {
	cur := in.Clone()
	t := &transferVisitor{engine: e, block: b, cur: cur}
	for _, instr := range b.Instrs {
		ssair.Dispatch(t, instr)
	}
	return t.cur
}

// transferVisitor implements ssair.RangeOp, threading the block-local
// range map cur through each instruction and recording the sharper
// interval computed for instructions that produce one.
type transferVisitor struct {
	engine *FixedPointEngine
	block  *ssa.BasicBlock
	cur    rangemap.Map
}

func (t *transferVisitor) set(v ssa.Value, iv interval.Interval) {
	t.cur = t.cur.With(v, iv)
	t.engine.values[v] = iv
}

func (t *transferVisitor) operand(v ssa.Value) interval.Interval {
	return rangeOf(v, t.cur)
}

func (t *transferVisitor) DoBinOp(instr *ssa.BinOp) {
	x := t.operand(instr.X)
	y := t.operand(instr.Y)

	switch instr.Op {
	case token.ADD:
		t.set(instr, interval.Add(x, y))
	case token.SUB:
		t.set(instr, interval.Sub(x, y))
	case token.MUL:
		t.set(instr, interval.Mul(x, y))
	case token.QUO:
		result, err := interval.Div(x, y)
		if err != nil {
			t.engine.divByZero = append(t.engine.divByZero, divByZero{Pos: instr.Pos()})
			return
		}
		t.set(instr, result)
	default:
		// REM, bitwise and shift operators, and all comparisons: the
		// analysis has no useful model for these, so the result stays
		// at the implicit Top rather than tracking it.
	}
}

func (t *transferVisitor) DoUnOp(instr *ssa.UnOp) {
	switch instr.Op {
	case token.SUB:
		t.set(instr, interval.Neg(t.operand(instr.X)))
	case token.MUL:
		// Load: the pointer's range is whatever the block-local map has
		// recorded for it, last written by a DoStore through the same
		// pointer value (or Top, if nothing has written through it yet on
		// this path).
		t.set(instr, t.operand(instr.X))
	}
	// NOT, XOR (bitwise complement), ARROW (channel receive): no integer
	// range model; leave at Top.
}

func (t *transferVisitor) DoConvert(instr *ssa.Convert) {
	// A conversion between integer widths can in principle truncate the
	// range; this analysis approximates it as a pass-through, which is
	// precise for the overwhelmingly common case of widening conversions
	// (e.g. int32 -> int) and only loses precision, never soundness
	// against false negatives, for a narrowing conversion of an
	// already-in-range value.
	t.set(instr, t.operand(instr.X))
}

// DoChangeType passes an interval through a type-only conversion (e.g.
// between two named integer types with the same underlying kind): the
// representation is identical, so the range carries over exactly, the
// same reasoning as DoConvert. ChangeInterface, MakeInterface, and
// SliceToArrayPointer are deliberately not given a case here: none of
// them produce or consume a tracked integer value (they box a value into
// an interface, convert between interface types, or reinterpret a slice
// header as an array pointer), so there is no range to carry through and
// the default Top via DoSigma is already correct.
func (t *transferVisitor) DoChangeType(instr *ssa.ChangeType) {
	t.set(instr, t.operand(instr.X))
}

// DoPhi joins the operand interval from every reachable predecessor edge,
// the standard merge-point rule, then widens against the phi's own value
// from the previous time its block ran. That history lives in
// t.engine.values, not in t.cur: t.cur is seeded fresh from the current
// incoming edges on every visit, so comparing against it instead would
// compare this iteration's join against itself and never detect growth.
func (t *transferVisitor) DoPhi(instr *ssa.Phi) {
	preds := instr.Block().Preds
	result := interval.Bottom
	for i, pred := range preds {
		state, ok := t.engine.edges[rangemap.Edge{Pred: pred, Succ: t.block}]
		if !ok || !state.Reachable {
			continue
		}
		result = interval.Join(result, rangeOf(instr.Edges[i], state.Ranges))
	}
	if result.IsBottom() {
		// no predecessor edge is known reachable yet; leave at Top until
		// a later worklist pass supplies real information.
		return
	}
	if prev, ok := t.engine.values[instr]; ok && t.engine.visits[t.block] > 1 {
		result = interval.Widen(prev, result)
	}
	t.set(instr, result)
}

// DoIndexAddr and DoIndex record the index operand's interval as it
// stands at this exact instruction, not just at the SSA value's
// definition: a branch-refined use inside a guarded block can be far
// narrower than the defining phi's own global range.
func (t *transferVisitor) DoIndexAddr(instr *ssa.IndexAddr) {
	t.engine.indexRanges[instr] = t.operand(instr.Index)
}

func (t *transferVisitor) DoIndex(instr *ssa.Index) {
	t.engine.indexRanges[instr] = t.operand(instr.Index)
}

// DoStore records the value being written as the range now live at its
// destination pointer, keyed by the pointer value itself: a later Load
// through that same pointer value (DoUnOp's MUL case) reads it back via
// t.operand. Aliasing is not tracked: a write to the same address through
// a different SSA value, or by a called function, does not update this
// entry, so a later Load through this pointer value still reads the range
// recorded here.
func (t *transferVisitor) DoStore(instr *ssa.Store) {
	t.cur = t.cur.With(instr.Addr, t.operand(instr.Val))
}

func (t *transferVisitor) DoIf(*ssa.If)      {}
func (t *transferVisitor) DoSigma(ssa.Value) {}
