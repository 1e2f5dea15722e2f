package boundscheck

import (
	"path/filepath"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"

	"boundscheck.dev/boundscheck/config"
	"boundscheck.dev/boundscheck/facts"
)

// Analyzer reports array index expressions that interval abstract
// interpretation proves can never land inside the indexed array's bounds.
var Analyzer = &analysis.Analyzer{
	Name:     "BoundsCheck",
	Doc:      "report array indices that are provably out of bounds",
	Run:      run,
	Requires: []*analysis.Analyzer{buildssa.Analyzer, facts.Generated},
}

func run(pass *analysis.Pass) (interface{}, error) {
	cfg := config.Default
	if len(pass.Files) > 0 {
		dir := filepath.Dir(pass.Fset.Position(pass.Files[0].Pos()).Filename)
		if loaded, err := config.Load(dir); err == nil {
			cfg = loaded
		}
	}

	ssaInfo := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)
	checker := NewBoundsChecker(pass, cfg)

	var findings []finding
	for _, fn := range ssaInfo.SrcFuncs {
		if len(fn.Blocks) == 0 {
			continue // external function, no body to analyze
		}
		engine := NewFixedPointEngine(fn, cfg)
		result := engine.Run()
		findings = append(findings, checker.Check(fn, result)...)
	}

	ignores := parseIgnores(pass.Fset, pass.Files)
	for _, f := range filterIgnored(pass.Fset, ignores, findings) {
		checker.Report(f)
	}

	return nil, nil
}
