package sorting

import "iter"

// ShellSort runs a gapped insertion sort for gaps n/2, n/4, ..., 1.
func ShellSort(input []int) iter.Seq[Step] {
	return traced(input, func(t *tracer) bool {
		a := t.a
		n := len(a)
		for gap := n / 2; gap > 0; gap /= 2 {
			for i := gap; i < n; i++ {
				tmp := a[i]
				j := i
				for ; j >= gap && a[j-gap] > tmp; j -= gap {
					a[j] = a[j-gap]
					if !t.emit(j, j-gap) {
						return false
					}
				}
				a[j] = tmp
				if !t.emit(j, j) {
					return false
				}
			}
		}
		return true
	})
}
