package sorting

import (
	"iter"
	"slices"
)

// MergeSort splits at the midpoint and emits one step per element written
// back during each merge. Ties take the left element, so the sort is stable.
func MergeSort(input []int) iter.Seq[Step] {
	return traced(input, func(t *tracer) bool {
		return mergeSort(t, 0, len(t.a)-1)
	})
}

func mergeSort(t *tracer, l, r int) bool {
	if l >= r {
		return true
	}
	m := (l + r) / 2
	return mergeSort(t, l, m) && mergeSort(t, m+1, r) && merge(t, l, m, r)
}

func merge(t *tracer, l, m, r int) bool {
	a := t.a
	left := slices.Clone(a[l : m+1])
	right := slices.Clone(a[m+1 : r+1])

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		if !t.emit(k, k) {
			return false
		}
		k++
	}
	for ; i < len(left); i++ {
		a[k] = left[i]
		if !t.emit(k, k) {
			return false
		}
		k++
	}
	for ; j < len(right); j++ {
		a[k] = right[j]
		if !t.emit(k, k) {
			return false
		}
		k++
	}
	return true
}
