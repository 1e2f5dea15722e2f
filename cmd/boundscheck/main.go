// boundscheck: a tool for finding array indices that are provably out of
// bounds.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"boundscheck.dev/boundscheck"
)

func main() {
	singlechecker.Main(boundscheck.Analyzer)
}
