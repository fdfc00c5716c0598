package sorting

import "iter"

// HeapSort builds a max-heap bottom-up, then repeatedly moves the root behind
// the shrinking heap and sifts the new root down.
func HeapSort(input []int) iter.Seq[Step] {
	return traced(input, func(t *tracer) bool {
		n := len(t.a)
		for i := n/2 - 1; i >= 0; i-- {
			if !heapify(t, n, i) {
				return false
			}
		}
		for i := n - 1; i > 0; i-- {
			if !t.swap(0, i) {
				return false
			}
			if !heapify(t, i, 0) {
				return false
			}
		}
		return true
	})
}

// heapify sifts a[i] down within the first n elements. Recursion depth is
// bounded by the tree height.
func heapify(t *tracer, n, i int) bool {
	a := t.a
	largest := i
	left, right := 2*i+1, 2*i+2
	if left < n && a[left] > a[largest] {
		largest = left
	}
	if right < n && a[right] > a[largest] {
		largest = right
	}
	if largest == i {
		return true
	}
	if !t.swap(i, largest) {
		return false
	}
	return heapify(t, n, largest)
}
