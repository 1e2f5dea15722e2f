package ssair

import "golang.org/x/tools/go/ssa"

// RangeOp is the subset of SSA instructions that move integer ranges:
// every other instruction is opaque to the analysis and its result, if
// any, starts at Top. A visitor implements one method per case it cares
// about and calls Dispatch to route a ssa.Instruction to it.
type RangeOp interface {
	DoBinOp(*ssa.BinOp)
	DoUnOp(*ssa.UnOp)
	DoConvert(*ssa.Convert)
	DoChangeType(*ssa.ChangeType)
	DoPhi(*ssa.Phi)
	DoIndexAddr(*ssa.IndexAddr)
	DoIndex(*ssa.Index)
	DoStore(*ssa.Store)
	DoIf(*ssa.If)
	DoSigma(ssa.Value) // catch-all for an instruction this analysis treats as producing Top
}

// Dispatch routes instr to the matching RangeOp method. Instructions with
// no bearing on integer ranges (defers, channel ops, and so on) are not
// visited at all; the caller's transfer function leaves their operands'
// ranges untouched. *ssa.Store is routed to DoStore even though it is not
// itself an ssa.Value (it produces no result the DoSigma catch-all could
// otherwise reach), since it still moves a range into the block-local map,
// keyed by the pointer it writes through.
func Dispatch(v RangeOp, instr ssa.Instruction) {
	switch instr := instr.(type) {
	case *ssa.BinOp:
		v.DoBinOp(instr)
	case *ssa.UnOp:
		v.DoUnOp(instr)
	case *ssa.Convert:
		v.DoConvert(instr)
	case *ssa.ChangeType:
		v.DoChangeType(instr)
	case *ssa.Phi:
		v.DoPhi(instr)
	case *ssa.IndexAddr:
		v.DoIndexAddr(instr)
	case *ssa.Index:
		v.DoIndex(instr)
	case *ssa.Store:
		v.DoStore(instr)
	case *ssa.If:
		v.DoIf(instr)
	default:
		if val, ok := instr.(ssa.Value); ok {
			v.DoSigma(val)
		}
	}
}
