package similarity

import "campus-reassign/internal/domain/resource"

// FilterByCapacityTolerance drops candidates whose capacity falls short of
// the original's by more than tolerancePercent, preserving order. Unknown
// capacity on either side passes; the capacity sub-score absorbs that
// uncertainty instead.
func FilterByCapacityTolerance(candidates []resource.Descriptor, original resource.Descriptor, tolerancePercent float64) []resource.Descriptor {
	if !original.HasCapacity() {
		return candidates
	}
	floor := float64(original.Capacity) * (1 - tolerancePercent/100)
	out := make([]resource.Descriptor, 0, len(candidates))
	for _, c := range candidates {
		if !c.HasCapacity() || float64(c.Capacity) >= floor {
			out = append(out, c)
		}
	}
	return out
}

// FilterByMinimumScore returns the results whose aggregate score is at least
// threshold, preserving order. Pure; the input slice is not modified.
func FilterByMinimumScore(results []Result, threshold float64) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Score >= threshold {
			out = append(out, r)
		}
	}
	return out
}

// TopN returns the first n results, preserving order. n <= 0 yields an empty
// slice.
func TopN(results []Result, n int) []Result {
	if n <= 0 {
		return []Result{}
	}
	if n > len(results) {
		n = len(results)
	}
	out := make([]Result, n)
	copy(out, results[:n])
	return out
}
