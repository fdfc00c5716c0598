package sorting

import "iter"

// InsertionSort shifts larger predecessors right one slot at a time, then
// places the key. The placement step is emitted even when nothing moved.
func InsertionSort(input []int) iter.Seq[Step] {
	return traced(input, func(t *tracer) bool {
		a := t.a
		for i := 1; i < len(a); i++ {
			key := a[i]
			j := i - 1
			for j >= 0 && a[j] > key {
				a[j+1] = a[j]
				if !t.emit(j, j+1) {
					return false
				}
				j--
			}
			a[j+1] = key
			if !t.emit(j+1, j+1) {
				return false
			}
		}
		return true
	})
}
