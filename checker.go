package boundscheck

import (
	"fmt"
	"go/token"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ssa"

	"boundscheck.dev/boundscheck/config"
	"boundscheck.dev/boundscheck/interval"
	"boundscheck.dev/boundscheck/report"
	"boundscheck.dev/boundscheck/ssair"
)

// finding is a candidate diagnostic collected before ignore directives
// and generated-file filtering are applied.
type finding struct {
	Pos     token.Pos
	Message string
}

// BoundsChecker walks a function's instructions once the fixed point
// engine has computed a Result for it, and collects every array index
// instruction whose index interval proves entirely outside [0, length).
type BoundsChecker struct {
	pass *analysis.Pass
	cfg  config.Config
}

func NewBoundsChecker(pass *analysis.Pass, cfg config.Config) *BoundsChecker {
	return &BoundsChecker{pass: pass, cfg: cfg}
}

// Check returns the findings for fn given the engine result computed for
// it. It does not report anything itself: the caller applies ignore
// directives across the whole package first.
func (c *BoundsChecker) Check(fn *ssa.Function, res *Result) []finding {
	var findings []finding

	for _, d := range res.DivByZero {
		findings = append(findings, finding{
			Pos:     d.Pos,
			Message: "integer division by zero: divisor is always exactly 0 on this path",
		})
	}

	if c.cfg.ReportInfeasibleBranches {
		findings = append(findings, c.infeasibleBranches(res)...)
	}

	for _, b := range fn.Blocks {
		if res.Reachable != nil && !res.Reachable[b] {
			continue
		}
		for _, raw := range b.Instrs {
			_, _, length, ok := ssair.IsArrayIndex(raw)
			if !ok {
				continue
			}
			idx, ok := res.IndexRanges[raw]
			if !ok || idx.IsBottom() {
				continue
			}
			if outOfRange(idx, length) {
				findings = append(findings, finding{
					Pos:     raw.Pos(),
					Message: fmt.Sprintf("possible array out of bounds access: index %s out of bounds for array of length %d", idx, length),
				})
			}
		}
	}

	// res.Branches is a map, so infeasibleBranches above visits its
	// entries in an arbitrary order; sorting by position makes
	// boundscheck's diagnostics deterministic across runs, the way a
	// linter's output should be.
	slices.SortFunc(findings, func(a, b finding) bool { return a.Pos < b.Pos })

	return findings
}

// infeasibleBranches reports the *ssa.If comparisons whose converged
// verdict rules out exactly one of their two branches: the interval
// analysis has proved that side of the condition can never hold, making
// it dead code. A verdict that rules out both sides means the whole
// block is unreachable, already covered by the Reachable-gated loop
// above, so it is not reported again here.
func (c *BoundsChecker) infeasibleBranches(res *Result) []finding {
	var findings []finding
	for _, b := range res.Branches {
		switch {
		case !b.TrueOK && b.FalseOK:
			findings = append(findings, finding{Pos: b.Pos, Message: "condition is always false"})
		case b.TrueOK && !b.FalseOK:
			findings = append(findings, finding{Pos: b.Pos, Message: "condition is always true"})
		}
	}
	return findings
}

// outOfRange reports whether idx, interpreted as a candidate array index,
// is provably outside [0, length) for every value it could represent: its
// upper bound is negative, or its lower bound has already reached or
// passed length. A range that only partially overlaps invalid indices is
// not flagged, since some of the values it represents are valid; that
// case cannot be reported without risking a false positive.
func outOfRange(idx interval.Interval, length int64) bool {
	if idx.Hi < 0 {
		return true
	}
	if idx.Lo >= length {
		return true
	}
	return false
}

// Report emits f through the pass, honoring generated-file filtering the
// same way the rest of the package's diagnostics do.
func (c *BoundsChecker) Report(f finding) {
	if c.cfg.FilterGenerated {
		report.PosfFG(c.pass, f.Pos, "%s", f.Message)
		return
	}
	c.pass.Reportf(f.Pos, "%s", f.Message)
}
