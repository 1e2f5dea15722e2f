// Package ssair adapts golang.org/x/tools/go/ssa's instruction set to the
// narrow vocabulary the bounds checker's abstract interpreter needs:
// classifying which instructions move integer ranges, reading static array
// lengths off a pointer or value's type, extracting int32 constants, and
// resolving the host IR's actual branch-successor convention rather than
// assuming one.
package ssair

import (
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ssa"

	"boundscheck.dev/boundscheck/interval"
)

// ConstInt extracts the int64 value of an integer *ssa.Const. It reports ok
// = false for non-integer constants (including untyped nil) and for
// constants that don't fit in int64, which cannot occur for the int32
// domain this package serves but is still checked defensively since ssa
// constants are typed, not domain-restricted.
func ConstInt(v ssa.Value) (int64, bool) {
	c, ok := v.(*ssa.Const)
	if !ok || c.Value == nil {
		return 0, false
	}
	if c.Value.Kind() != constant.Int {
		return 0, false
	}
	n, exact := constant.Int64Val(c.Value)
	if !exact {
		return 0, false
	}
	return n, true
}

// ArrayLen returns the length of t if t is an array type, or a pointer to
// one, and ok = false otherwise. Index operations in SSA form address
// either an array value directly (ssa.Index, arrays passed by value) or a
// pointer to one (ssa.IndexAddr, the address of an array element), so both
// shapes are unwrapped here.
func ArrayLen(t types.Type) (n int64, ok bool) {
	if p, isPtr := t.Underlying().(*types.Pointer); isPtr {
		t = p.Elem()
	}
	arr, isArr := t.Underlying().(*types.Array)
	if !isArr {
		return 0, false
	}
	return arr.Len(), true
}

// IsArrayIndex reports whether instr indexes into a fixed-size array
// (rather than a slice, map, or string), along with the indexed value and
// the index operand. Slices are excluded deliberately: their length is a
// runtime quantity this analyzer's static model does not track.
func IsArrayIndex(instr ssa.Instruction) (base, index ssa.Value, length int64, ok bool) {
	switch i := instr.(type) {
	case *ssa.IndexAddr:
		length, ok = ArrayLen(i.X.Type())
		if !ok {
			return nil, nil, 0, false
		}
		return i.X, i.Index, length, true
	case *ssa.Index:
		length, ok = ArrayLen(i.X.Type())
		if !ok {
			return nil, nil, 0, false
		}
		return i.X, i.Index, length, true
	default:
		return nil, nil, 0, false
	}
}

// BranchSuccessors returns the true-branch and false-branch successor
// blocks of an *ssa.If terminated block. golang.org/x/tools/go/ssa
// documents and guarantees that Succs[0] is the block taken when Cond is
// true and Succs[1] when it is false; this function exists so that
// convention lives in exactly one place rather than being assumed inline
// at every call site.
func BranchSuccessors(b *ssa.BasicBlock) (trueSucc, falseSucc *ssa.BasicBlock) {
	if len(b.Succs) != 2 {
		panic("ssair: BranchSuccessors called on a block without exactly two successors")
	}
	return b.Succs[0], b.Succs[1]
}

// ComparisonPredicate maps a token.Token comparison operator to the
// interval package's Predicate enum. ok is false for non-comparison
// tokens.
func ComparisonPredicate(op token.Token) (pred interval.Predicate, ok bool) {
	switch op {
	case token.EQL:
		return interval.Eq, true
	case token.NEQ:
		return interval.Ne, true
	case token.LSS:
		return interval.Lt, true
	case token.LEQ:
		return interval.Le, true
	case token.GTR:
		return interval.Gt, true
	case token.GEQ:
		return interval.Ge, true
	default:
		return 0, false
	}
}
