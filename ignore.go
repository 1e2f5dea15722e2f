package boundscheck

import (
	"go/ast"
	"go/token"
	"strings"

	"boundscheck.dev/boundscheck/lint"
)

// directivePrefix is the trailing-comment convention that suppresses a
// finding on the line it appears on, e.g.:
//
//	v := arr[idx] // boundscheck:ignore idx is bounds-checked by the caller
const directivePrefix = "boundscheck:ignore"

// parseIgnores scans every file's comments for boundscheck:ignore
// directives and returns one lint.LineIgnore per occurrence, matching
// exactly the line the comment is attached to.
func parseIgnores(fset *token.FileSet, files []*ast.File) []lint.Ignore {
	var ignores []lint.Ignore
	for _, f := range files {
		for _, group := range f.Comments {
			for _, c := range group.List {
				text := strings.TrimPrefix(c.Text, "//")
				text = strings.TrimSpace(text)
				if !strings.HasPrefix(text, directivePrefix) {
					continue
				}
				pos := fset.Position(c.Pos())
				ignores = append(ignores, &lint.LineIgnore{
					File:   pos.Filename,
					Line:   pos.Line,
					Checks: []string{"boundscheck"},
				})
			}
		}
	}
	return ignores
}

// filterIgnored drops findings matched by any of ignores, returning the
// findings that survive.
func filterIgnored(fset *token.FileSet, ignores []lint.Ignore, findings []finding) []finding {
	if len(ignores) == 0 {
		return findings
	}
	var kept []finding
	for _, f := range findings {
		p := lint.Problem{
			Pos:   fset.Position(f.Pos),
			Check: "boundscheck",
		}
		ignored := false
		for _, ig := range ignores {
			if ig.Match(p) {
				ignored = true
				break
			}
		}
		if !ignored {
			kept = append(kept, f)
		}
	}
	return kept
}
