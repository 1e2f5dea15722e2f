package interval

// saturate applies op to lhs and rhs in 64-bit arithmetic (wide enough that
// the intermediate can never itself overflow for int32 operands) and clamps
// the result into int32 range.
func saturate(lhs, rhs int64, op byte) int64 {
	switch op {
	case '+':
		return clamp(lhs + rhs)
	case '-':
		return clamp(lhs - rhs)
	case '*':
		return clamp(lhs * rhs)
	case '/':
		if rhs == 0 {
			// a division whose divisor corner is exactly zero but whose
			// divisor interval as a whole is not {0,0}; treat it as a
			// no-op corner so it doesn't poison min/max with a spurious
			// extreme.
			return clamp(lhs)
		}
		return clamp(lhs / rhs)
	default:
		panic("interval: unknown operator")
	}
}

// combinations evaluates op over the four corners of lhs × rhs, plus the
// ±1-divisor corners when op is division and the divisor interval straddles
// 1 or -1 (division by a value close to zero produces the widest swing).
func combinations(lhs, rhs Interval, op byte) Interval {
	lo := int64(MaxInt32)
	hi := int64(MinInt32)

	corners := [4][2]int64{
		{lhs.Lo, rhs.Lo},
		{lhs.Lo, rhs.Hi},
		{lhs.Hi, rhs.Lo},
		{lhs.Hi, rhs.Hi},
	}
	for _, c := range corners {
		v := saturate(c[0], c[1], op)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if op == '/' {
		// Straddling -1 and straddling +1 are independent conditions: a
		// divisor interval like [-2, 5] straddles both, and each one
		// samples a different, independently-extremal corner.
		if rhs.Lo < -1 && -1 < rhs.Hi {
			for _, l := range [2]int64{lhs.Lo, lhs.Hi} {
				v := saturate(l, -1, op)
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
		}
		if rhs.Lo < 1 && 1 < rhs.Hi {
			for _, l := range [2]int64{lhs.Lo, lhs.Hi} {
				v := saturate(l, 1, op)
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
		}
	}

	return Interval{Lo: lo, Hi: hi}
}

// Add returns the saturating sum of a and b.
func Add(a, b Interval) Interval {
	if a.empty || b.empty {
		return Bottom
	}
	return combinations(a, b, '+')
}

// Sub returns the saturating difference a - b.
func Sub(a, b Interval) Interval {
	if a.empty || b.empty {
		return Bottom
	}
	return combinations(a, b, '-')
}

// Mul returns the saturating product of a and b.
func Mul(a, b Interval) Interval {
	if a.empty || b.empty {
		return Bottom
	}
	return combinations(a, b, '*')
}

// ErrDivideByZero is returned by Div when the divisor interval is exactly
// {0, 0}: every reachable value on that edge divides by zero. The engine
// does not abort on it: it records the division's position as a finding,
// leaves that division's result at Top, and goes on analyzing the function.
type ErrDivideByZero struct{}

func (ErrDivideByZero) Error() string { return "interval: division by a divisor interval of {0, 0}" }

// Div returns the saturating quotient a / b. It returns ErrDivideByZero
// only when b is the exact interval {0, 0}; if b merely contains zero among
// other values, the zero corner is treated as a pass-through (a/0 ≡ a) so
// that it doesn't dominate the resulting bound, matching the assumption
// that in practice the zero branch is infeasible at runtime.
func Div(a, b Interval) (Interval, error) {
	if a.empty || b.empty {
		return Bottom, nil
	}
	if b.Lo == 0 && b.Hi == 0 {
		return Bottom, ErrDivideByZero{}
	}
	return combinations(a, b, '/'), nil
}

// Neg returns the saturating negation of a, equivalent to Sub(Single(0), a).
func Neg(a Interval) Interval {
	if a.empty {
		return Bottom
	}
	return combinations(Single(0), a, '-')
}
