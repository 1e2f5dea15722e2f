package ssair

import (
	"go/token"
	"testing"

	"boundscheck.dev/boundscheck/interval"
)

func TestComparisonPredicate(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want interval.Predicate
	}{
		{token.LSS, interval.Lt},
		{token.LEQ, interval.Le},
		{token.GTR, interval.Gt},
		{token.GEQ, interval.Ge},
		{token.EQL, interval.Eq},
		{token.NEQ, interval.Ne},
	}
	for _, c := range cases {
		got, ok := ComparisonPredicate(c.tok)
		if !ok {
			t.Errorf("ComparisonPredicate(%v) not ok", c.tok)
			continue
		}
		if got != c.want {
			t.Errorf("ComparisonPredicate(%v) = %v, want %v", c.tok, got, c.want)
		}
	}

	if _, ok := ComparisonPredicate(token.ADD); ok {
		t.Error("expected ADD to not be a comparison predicate")
	}
}
