// Package analysis measures how step counts of the sorting producers grow
// with input size.
//
//   - [StepCounts]: steps emitted for each size of a generated input
//   - [GrowthExponent]: slope of the log-log fit of counts against sizes
//   - [Bench]: both of the above for several algorithms in parallel
//
// # Growth
//
// On reverse-sorted input the quadratic algorithms fit an exponent near 2
// and the n log n ones an exponent a little above 1:
//
//	p := analysis.Profile(sorting.Bubble, []int{64, 128, 256, 512}, analysis.Reversed)
//	if p.Exponent > 1.8 {
//	    // quadratic
//	}
package analysis
