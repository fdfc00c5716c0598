package analysis

import "github.com/san-kum/sortviz/internal/sorting"

// Misplaced counts positions where a differs from want.
func Misplaced(a, want []int) int {
	n := 0
	for i := range min(len(a), len(want)) {
		if a[i] != want[i] {
			n++
		}
	}
	return n + max(len(a), len(want)) - min(len(a), len(want))
}

// DisorderTrace returns, per step, how many positions still differ from the
// final step's array.
func DisorderTrace(steps []sorting.Step) []int {
	if len(steps) == 0 {
		return nil
	}
	final := steps[len(steps)-1].Array
	out := make([]int, len(steps))
	for i, st := range steps {
		out[i] = Misplaced(st.Array, final)
	}
	return out
}
