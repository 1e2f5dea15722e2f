// Package report anchors boundscheck's diagnostics at a bare token.Pos
// rather than an ast.Node: boundscheck works from SSA form and never has
// an AST node at hand for the value it is reporting on, unlike the
// teacher's own node-rendering report helpers this package is trimmed
// down from.
package report

import (
	"go/token"

	"golang.org/x/tools/go/analysis"

	"boundscheck.dev/boundscheck/facts"
	"boundscheck.dev/boundscheck/lint"
)

// PosfFG reports a diagnostic anchored at pos, skipping files
// facts.Generated has marked as machine-generated.
func PosfFG(pass *analysis.Pass, pos token.Pos, f string, args ...interface{}) {
	file := lint.DisplayPosition(pass.Fset, pos).Filename
	m := pass.ResultOf[facts.Generated].(map[string]bool)
	if m[file] {
		return
	}
	pass.Reportf(pos, f, args...)
}
