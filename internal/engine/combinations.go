package engine

import "sync"

// combinationCache stores, per grid size N, every k-subset of the value
// indices {0..N-1} for k in [2, N/2]. NakedGroup and HiddenGroup both
// iterate this table once per house rather than re-enumerating subsets on
// every Perform call. It is a per-process cache keyed by N, populated
// lazily on first use.
var (
	combinationCacheMu sync.Mutex
	combinationCache    = map[int][]CandidateMask{}
)

// ValueSubsets returns every k-element subset mask of {0..n-1} for
// 2 <= k <= n/2, for a grid of size n. Result order is unspecified and
// does not matter: the consuming techniques (NakedGroup, HiddenGroup)
// short-circuit on the first subset that produces a change.
func ValueSubsets(n int) []CandidateMask {
	combinationCacheMu.Lock()
	defer combinationCacheMu.Unlock()

	if cached, ok := combinationCache[n]; ok {
		return cached
	}

	var subsets []CandidateMask
	maxK := n / 2
	for k := 2; k <= maxK; k++ {
		subsets = append(subsets, kSubsets(n, k)...)
	}
	combinationCache[n] = subsets
	return subsets
}

// kSubsets generates all k-element subsets of {0..n-1} as CandidateMasks.
func kSubsets(n, k int) []CandidateMask {
	if k <= 0 || k > n {
		return nil
	}
	var out []CandidateMask
	indices := make([]int, k)
	var build func(start, depth int)
	build = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, indices)
			out = append(out, MaskFromBitIndices(cp))
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			indices[depth] = i
			build(i+1, depth+1)
		}
	}
	build(0, 0)
	return out
}
