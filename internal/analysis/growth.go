package analysis

import (
	"math"
	"math/rand"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Input generates an input array of size n.
type Input func(n int) []int

// Reversed returns n, n-1, ..., 1.
func Reversed(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = n - i
	}
	return a
}

// Shuffled returns an Input producing seeded permutations of 1..n.
func Shuffled(seed int64) Input {
	return func(n int) []int {
		rng := rand.New(rand.NewSource(seed + int64(n)))
		a := make([]int, n)
		for i := range a {
			a[i] = i + 1
		}
		rng.Shuffle(n, func(i, j int) { a[i], a[j] = a[j], a[i] })
		return a
	}
}

// StepCounts returns the number of steps p emits for each size, the initial
// snapshot included.
func StepCounts(p sorting.Producer, sizes []int, input Input) []int {
	counts := make([]int, len(sizes))
	for i, n := range sizes {
		counts[i] = sorting.Count(p(input(n)))
	}
	return counts
}

// GrowthExponent fits counts ≈ c·sizes^k by least squares in log-log space
// and returns k. Pairs with a non-positive size or count are ignored; fewer
// than two usable pairs give NaN.
func GrowthExponent(sizes, counts []int) float64 {
	var xs, ys []float64
	for i := range min(len(sizes), len(counts)) {
		if sizes[i] <= 0 || counts[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(sizes[i])))
		ys = append(ys, math.Log(float64(counts[i])))
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	n := float64(len(xs))
	var sx, sy, sxx, sxy float64
	for i := range xs {
		sx += xs[i]
		sy += ys[i]
		sxx += xs[i] * xs[i]
		sxy += xs[i] * ys[i]
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return math.NaN()
	}
	return (n*sxy - sx*sy) / den
}
