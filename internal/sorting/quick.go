package sorting

import "iter"

// QuickSort uses Lomuto partitioning with the rightmost element as pivot.
// Sorted input degrades to quadratic work and linear recursion depth.
func QuickSort(input []int) iter.Seq[Step] {
	return traced(input, func(t *tracer) bool {
		return quickSort(t, 0, len(t.a)-1)
	})
}

func quickSort(t *tracer, l, r int) bool {
	if l >= r {
		return true
	}
	p, ok := partition(t, l, r)
	if !ok {
		return false
	}
	return quickSort(t, l, p-1) && quickSort(t, p+1, r)
}

func partition(t *tracer, l, r int) (int, bool) {
	a := t.a
	pivot := a[r]
	i := l - 1
	for j := l; j < r; j++ {
		if a[j] <= pivot {
			i++
			if !t.swap(i, j) {
				return 0, false
			}
		}
	}
	if !t.swap(i+1, r) {
		return 0, false
	}
	return i + 1, true
}
