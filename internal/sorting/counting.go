package sorting

import (
	"iter"
	"maps"
	"slices"
)

// CountingSort tallies values in a map, turns the tallies into end positions
// and places elements right to left into an output buffer before copying it
// back. Each of the three passes emits one step per element.
//
// During the placement pass the snapshot is the output buffer itself, with
// unfilled slots still zero, and the highlight is the slot just written.
func CountingSort(input []int) iter.Seq[Step] {
	return traced(input, func(t *tracer) bool {
		a := t.a
		n := len(a)
		count := make(map[int]int)
		output := make([]int, n)

		for i := 0; i < n; i++ {
			count[a[i]]++
			if !t.emit(i, i) {
				return false
			}
		}

		sum := 0
		for _, v := range slices.Sorted(maps.Keys(count)) {
			sum += count[v]
			count[v] = sum
		}

		for i := n - 1; i >= 0; i-- {
			v := a[i]
			pos := count[v] - 1
			output[pos] = v
			count[v] = pos
			if !t.emitFrom(output, pos, pos) {
				return false
			}
		}

		for i := 0; i < n; i++ {
			a[i] = output[i]
			if !t.emit(i, i) {
				return false
			}
		}
		return true
	})
}
