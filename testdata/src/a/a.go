package a

func constantOutOfRange() int {
	arr := [5]int{1, 2, 3, 4, 5}
	i := 10
	return arr[i] // want `possible array out of bounds access: index \[10, 10\] out of bounds for array of length 5`
}

func constantInRange() int {
	arr := [5]int{1, 2, 3, 4, 5}
	i := 2
	return arr[i]
}

func negativeIndex() int {
	arr := [5]int{1, 2, 3, 4, 5}
	i := -3
	return arr[i] // want `possible array out of bounds access: index \[-3, -3\] out of bounds for array of length 5`
}

func guardedAccess(i int) int {
	arr := [5]int{1, 2, 3, 4, 5}
	if i >= 0 && i < len(arr) {
		return arr[i]
	}
	return -1
}

func divideByZero(x, y int) int {
	arr := [5]int{1, 2, 3, 4, 5}
	if y == 0 {
		// the Eq refinement on this edge tightens y's interval to the
		// exact singleton [0, 0], so the division really does see a
		// provably-zero divisor rather than just an unconstrained one.
		return arr[x/y] // want `integer division by zero: divisor is always exactly 0 on this path`
	}
	return -1
}

func widenedLoopOutOfRange() int {
	arr := [10]int{}
	sum := 0
	for k := 20; k < 1000; k++ {
		sum += arr[k] // want `possible array out of bounds access: index \[20, 999\] out of bounds for array of length 10`
	}
	return sum
}

// addressTakenLoad forces the SSA builder to keep i on the heap (its
// address escapes to p) instead of lifting it to a register, so the
// index arrives through a real Store/Load pair rather than a Phi or a
// plain register value: it exercises DoStore and DoUnOp's Load case
// directly.
func addressTakenLoad() int {
	arr := [5]int{1, 2, 3, 4, 5}
	i := 0
	p := &i
	*p = 10
	return arr[*p] // want `possible array out of bounds access: index \[10, 10\] out of bounds for array of length 5`
}

func ignoredFinding() int {
	arr := [5]int{1, 2, 3, 4, 5}
	i := 99
	return arr[i] // boundscheck:ignore known unreachable in production builds, guarded upstream
}
