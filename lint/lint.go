// Package lint provides the diagnostic vocabulary boundscheck and the
// report package build on: problem severities, the //boundscheck:ignore
// directive matchers, and position display logic shared with the
// generated-code filter.
package lint // import "boundscheck.dev/boundscheck/lint"

import (
	"fmt"
	"path/filepath"
	"strings"
	"go/token"
)

type Ignore interface {
	Match(p Problem) bool
}

type LineIgnore struct {
	File    string
	Line    int
	Checks  []string
	Matched bool
	Pos     token.Pos
}

func (li *LineIgnore) Match(p Problem) bool {
	pos := p.Pos
	if pos.Filename != li.File || pos.Line != li.Line {
		return false
	}
	for _, c := range li.Checks {
		if m, _ := filepath.Match(c, p.Check); m {
			li.Matched = true
			return true
		}
	}
	return false
}

func (li *LineIgnore) String() string {
	matched := "not matched"
	if li.Matched {
		matched = "matched"
	}
	return fmt.Sprintf("%s:%d %s (%s)", li.File, li.Line, strings.Join(li.Checks, ", "), matched)
}

type Severity uint8

const (
	Error Severity = iota
	Warning
	Ignored
)

// Problem represents a problem in some source code.
type Problem struct {
	Pos      token.Position
	Message  string
	Check    string
	Severity Severity
}

func (p *Problem) String() string {
	return fmt.Sprintf("%s (%s)", p.Message, p.Check)
}

type Positioner interface {
	Pos() token.Pos
}

// DisplayPosition returns the position of p, preferring a //line-adjusted
// Go source position over one pointing into a non-Go file such as a cgo
// or yacc intermediate.
func DisplayPosition(fset *token.FileSet, p token.Pos) token.Position {
	pos := fset.PositionFor(p, false)
	adjPos := fset.PositionFor(p, true)

	if filepath.Ext(adjPos.Filename) == ".go" {
		return adjPos
	}
	return pos
}
