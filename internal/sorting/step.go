package sorting

import (
	"iter"
	"slices"
)

// Pair holds the two indices touched by a step.
type Pair [2]int

// NoHighlight marks a step that points at nothing, e.g. the initial state.
var NoHighlight = Pair{-1, -1}

func (p Pair) IsNone() bool { return p == NoHighlight }

// Step is one observable mutation: the full array after the write and the
// indices involved.
type Step struct {
	Array     []int
	Highlight Pair
}

// Producer turns an input array into a lazy sequence of steps. The first
// step is always the untouched input with NoHighlight.
type Producer func(input []int) iter.Seq[Step]

// tracer owns the private working copy of one iteration and forwards
// snapshots to the consumer. Every method returns false once the consumer
// has stopped pulling.
type tracer struct {
	a     []int
	yield func(Step) bool
}

func (t *tracer) emit(i, j int) bool {
	return t.yield(Step{Array: slices.Clone(t.a), Highlight: Pair{i, j}})
}

func (t *tracer) emitFrom(buf []int, i, j int) bool {
	return t.yield(Step{Array: slices.Clone(buf), Highlight: Pair{i, j}})
}

func (t *tracer) swap(i, j int) bool {
	t.a[i], t.a[j] = t.a[j], t.a[i]
	return t.emit(i, j)
}

// traced wraps an algorithm body so that each iteration gets a fresh copy of
// src and starts with the initial-state step.
func traced(input []int, body func(t *tracer) bool) iter.Seq[Step] {
	src := slices.Clone(input)
	return func(yield func(Step) bool) {
		t := &tracer{a: slices.Clone(src), yield: yield}
		if !t.emit(NoHighlight[0], NoHighlight[1]) {
			return
		}
		body(t)
	}
}

// Last drains seq and returns its final step.
func Last(seq iter.Seq[Step]) (Step, bool) {
	var (
		last Step
		ok   bool
	)
	for s := range seq {
		last, ok = s, true
	}
	return last, ok
}

// Count drains seq and returns the number of steps, initial step included.
func Count(seq iter.Seq[Step]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
