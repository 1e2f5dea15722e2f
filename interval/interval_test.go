package interval

import "testing"

func TestJoin(t *testing.T) {
	cases := []struct {
		a, b, want Interval
	}{
		{Bottom, Single(5), Single(5)},
		{Range(0, 3), Range(2, 7), Range(0, 7)},
		{Range(-5, -1), Range(1, 5), Range(-5, 5)},
	}
	for _, c := range cases {
		got := Join(c.a, c.b)
		if !Equal(got, c.want) {
			t.Errorf("Join(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestWiden(t *testing.T) {
	prev := Range(0, 10)
	next := Range(0, 11)
	got := Widen(prev, next)
	want := Range(0, MaxInt32)
	if !Equal(got, want) {
		t.Errorf("Widen(%v, %v) = %v, want %v", prev, next, got, want)
	}

	// stable on the low side, still growing on the high side
	prev2 := Range(0, 11)
	next2 := Range(0, 12)
	got2 := Widen(prev2, next2)
	if got2.Lo != 0 || got2.Hi != MaxInt32 {
		t.Errorf("Widen(%v, %v) = %v, want [0, +∞]", prev2, next2, got2)
	}
}

func TestAddSaturates(t *testing.T) {
	a := Single(MaxInt32 - 1)
	b := Single(10)
	got := Add(a, b)
	if got.Hi != MaxInt32 {
		t.Errorf("Add(%v, %v).Hi = %d, want %d", a, b, got.Hi, MaxInt32)
	}

	a2 := Single(MinInt32 + 1)
	b2 := Single(-10)
	got2 := Add(a2, b2)
	if got2.Lo != MinInt32 {
		t.Errorf("Add(%v, %v).Lo = %d, want %d", a2, b2, got2.Lo, MinInt32)
	}
}

func TestMulCorners(t *testing.T) {
	got := Mul(Range(-3, 2), Range(-4, 5))
	// corners: -3*-4=12, -3*5=-15, 2*-4=-8, 2*5=10 -> [-15, 12]
	want := Range(-15, 12)
	if !Equal(got, want) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestDivByExactZeroAborts(t *testing.T) {
	_, err := Div(Range(1, 10), Single(0))
	if err == nil {
		t.Fatal("expected ErrDivideByZero")
	}
}

func TestDivZeroInRangeTreatedAsPassthrough(t *testing.T) {
	got, err := Div(Single(10), Range(0, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// corners: 10/0 -> passthrough 10, 10/2 -> 5, plus ±1 sampling (1 is in [0,2]): 10/1 -> 10
	if got.Lo != 5 || got.Hi != 10 {
		t.Errorf("Div = %v, want [5, 10]", got)
	}
}

func TestDivStraddlingNegativeOne(t *testing.T) {
	got, err := Div(Single(100), Range(-2, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// dividing 100 by a divisor close to 0 swings widest at ±1
	if got.Lo > -100 || got.Hi < 100 {
		t.Errorf("Div = %v, want a range containing at least [-100, 100]", got)
	}
}

func TestRefineLess(t *testing.T) {
	lhs := Range(0, 20)
	rhs := Single(5)
	newLhs, newRhs, ok := Refine(lhs, rhs, Lt)
	if !ok {
		t.Fatal("expected feasible")
	}
	if newLhs.Hi != 4 {
		t.Errorf("newLhs = %v, want Hi == 4", newLhs)
	}
	if newRhs.Lo != 5 {
		t.Errorf("newRhs = %v, want Lo == 5", newRhs)
	}
}

func TestRefineInfeasible(t *testing.T) {
	lhs := Range(10, 20)
	rhs := Range(0, 5)
	_, _, ok := Refine(lhs, rhs, Lt)
	if ok {
		t.Fatal("expected infeasible")
	}
}

func TestRefineGreaterEqual(t *testing.T) {
	lhs := Range(-5, 10)
	rhs := Single(3)
	newLhs, newRhs, ok := Refine(lhs, rhs, Ge)
	if !ok {
		t.Fatal("expected feasible")
	}
	if newLhs.Lo != 3 {
		t.Errorf("newLhs = %v, want Lo == 3", newLhs)
	}
	if newRhs.Hi != 3 {
		t.Errorf("newRhs = %v, want Hi == 3", newRhs)
	}
}
