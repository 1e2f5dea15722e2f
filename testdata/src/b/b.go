// Scenario grounded on the C reference implementation's random-index test
// (tests/test_random_index.c): a value of unknown origin gates a second
// index computed by adding a constant and running it through a bounded
// loop, which pushes the computed index entirely past the end of the
// array regardless of what the unknown value turned out to be.
package b

func randomAccessChain(randomIndex int) int {
	var array [30]int
	for i := 0; i < 30; i++ {
		array[i] = i
	}

	randomVar := array[randomIndex] // index unconstrained; nothing provable either way

	if randomVar > 10 {
		j := array[randomVar] // still unconstrained: randomVar may or may not fit
		sum := 0
		k := randomVar + 15
		for ; k < 40; k++ {
			sum += array[k+5] // want `possible array out of bounds access: index \[31, 44\] out of bounds for array of length 30`
		}
		if sum < 0 {
			sum = -sum
		}
		sum++
		sum *= 50
		for randomVar > sum {
			// randomVar only partially overlaps [0, 30): some values of
			// randomVar would land in bounds, so this is correctly left
			// unflagged even though the C original asserts it always
			// goes out of bounds at runtime, a fact this static analysis
			// has no way to derive from rand()'s range alone.
			sum += array[randomVar]
			sum++
		}
		return j + sum
	}
	return array[0]
}
