package analysis

import (
	"context"
	"sync"

	"github.com/san-kum/sortviz/internal/sorting"
)

type Result struct {
	ID       sorting.ID
	Sizes    []int
	Counts   []int
	Exponent float64
}

func Profile(id sorting.ID, sizes []int, input Input) Result {
	counts := StepCounts(sorting.Lookup(id).Produce, sizes, input)
	return Result{
		ID:       id,
		Sizes:    sizes,
		Counts:   counts,
		Exponent: GrowthExponent(sizes, counts),
	}
}

// Bench profiles each algorithm on its own goroutine. Results keep the
// order of ids. A cancelled context stops waiting and returns its error;
// producers already running finish in the background.
func Bench(ctx context.Context, ids []sorting.ID, sizes []int, input Input) ([]Result, error) {
	results := make([]Result, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		sorting.Lookup(id)
		wg.Add(1)
		go func(idx int, id sorting.ID) {
			defer wg.Done()
			results[idx] = Profile(id, sizes, input)
		}(i, id)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
		return results, nil
	}
}
