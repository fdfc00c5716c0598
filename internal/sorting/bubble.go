package sorting

import "iter"

// BubbleSort compares neighbours left to right and emits a step for every
// swap. Passes shrink by one since the largest value settles at the end.
func BubbleSort(input []int) iter.Seq[Step] {
	return traced(input, func(t *tracer) bool {
		n := len(t.a)
		for i := 0; i < n; i++ {
			for j := 0; j < n-i-1; j++ {
				if t.a[j] > t.a[j+1] && !t.swap(j, j+1) {
					return false
				}
			}
		}
		return true
	})
}
