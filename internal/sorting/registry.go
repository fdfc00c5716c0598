package sorting

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// ID names one of the built-in algorithms.
type ID string

const (
	Bubble    ID = "bubble"
	Quick     ID = "quick"
	Merge     ID = "merge"
	Insertion ID = "insertion"
	Heap      ID = "heap"
	Shell     ID = "shell"
	Counting  ID = "counting"
)

// Descriptor is the static, display-facing description of an algorithm.
type Descriptor struct {
	ID          ID
	Name        string
	Description string
	Code        string
	Produce     Producer
	// SpeedMultiplier divides the configured step interval. Algorithms that
	// emit many steps per element get larger values so runs take a similar
	// wall-clock time.
	SpeedMultiplier float64
}

var order = []ID{Bubble, Quick, Merge, Insertion, Heap, Shell, Counting}

var registry = map[ID]Descriptor{
	Bubble: {
		ID:   Bubble,
		Name: "Bubble Sort",
		Description: "A simple sorting algorithm that repeatedly steps through the list, compares adjacent " +
			"elements and swaps them if they are in the wrong order. Best for small datasets or when simplicity is preferred.",
		Code:            bubbleListing,
		Produce:         BubbleSort,
		SpeedMultiplier: 1,
	},
	Quick: {
		ID:   Quick,
		Name: "Quick Sort",
		Description: "A divide-and-conquer algorithm that uses a pivot element to partition the array. " +
			"Very efficient in practice, with O(n log n) average case performance. Not stable.",
		Code:            quickListing,
		Produce:         QuickSort,
		SpeedMultiplier: 2,
	},
	Merge: {
		ID:   Merge,
		Name: "Merge Sort",
		Description: "A divide-and-conquer algorithm that recursively breaks down the problem into smaller " +
			"subproblems. Guarantees O(n log n) performance and is stable. Best when stability is required.",
		Code:            mergeListing,
		Produce:         MergeSort,
		SpeedMultiplier: 4,
	},
	Insertion: {
		ID:   Insertion,
		Name: "Insertion Sort",
		Description: "A simple sorting algorithm that builds the final sorted array one item at a time. " +
			"Efficient for small data sets and nearly sorted data. Works like sorting playing cards in your hands.",
		Code:            insertionListing,
		Produce:         InsertionSort,
		SpeedMultiplier: 1,
	},
	Heap: {
		ID:   Heap,
		Name: "Heap Sort",
		Description: "A comparison-based sorting algorithm that uses a binary heap data structure. " +
			"Guarantees O(n log n) performance and is in-place. Useful when you need guaranteed worst-case performance.",
		Code:            heapListing,
		Produce:         HeapSort,
		SpeedMultiplier: 3,
	},
	Shell: {
		ID:   Shell,
		Name: "Shell Sort",
		Description: "An optimization of insertion sort that allows the exchange of items that are far apart. " +
			"Taking every h-th element produces a sorted list once the gap pass finishes. Good for medium-sized arrays.",
		Code:            shellListing,
		Produce:         ShellSort,
		SpeedMultiplier: 2,
	},
	Counting: {
		ID:   Counting,
		Name: "Counting Sort",
		Description: "A non-comparison based sorting algorithm that works by counting the occurrences of each " +
			"element. Very efficient when the range of input data is not significantly greater than the number " +
			"of objects to be sorted. Requires extra space but can be faster than comparison-based sorts.",
		Code:            countingListing,
		Produce:         CountingSort,
		SpeedMultiplier: 1,
	},
}

// Lookup returns the descriptor for id. Ids come from the closed set above;
// anything else is a programming error and panics.
func Lookup(id ID) Descriptor {
	d, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("sorting: unknown algorithm %q", string(id)))
	}
	return d
}

// Parse validates user input against the registry.
func Parse(name string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := registry[id]; !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
	return id, nil
}

// IDs returns the algorithm ids in menu order.
func IDs() []ID {
	ids := make([]ID, len(order))
	copy(ids, order)
	return ids
}

func Names() []string {
	names := make([]string, len(order))
	for i, id := range order {
		names[i] = string(id)
	}
	return names
}

func All() []Descriptor {
	ds := make([]Descriptor, len(order))
	for i, id := range order {
		ds[i] = registry[id]
	}
	return ds
}

// Next returns the id after id in menu order, wrapping around. A negative
// delta walks backwards.
func Next(id ID, delta int) ID {
	idx := 0
	for i, o := range order {
		if o == id {
			idx = i
			break
		}
	}
	n := len(order)
	return order[((idx+delta)%n+n)%n]
}
