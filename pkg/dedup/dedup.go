// Package dedup collapses near-duplicate memory candidates. Similarity is
// the normalized longest-common-subsequence ratio; candidates above the
// threshold are clustered with union-find and each cluster keeps a single
// survivor. The pairwise comparison is O(n²), which is fine for the tens
// to low hundreds of candidates a run produces.
package dedup

import (
	"strings"

	"github.com/grifmang/memsift/pkg/types"
)

// DefaultThreshold is the similarity at or above which two candidates are
// considered duplicates.
const DefaultThreshold = 0.8

// Dedup collapses near-duplicates at DefaultThreshold. Input is not
// mutated; survivors are returned verbatim.
func Dedup(candidates []types.MemoryCandidate) []types.MemoryCandidate {
	return DedupThreshold(candidates, DefaultThreshold)
}

// DedupThreshold collapses near-duplicates at the given similarity
// threshold. Clusters are transitive: if A~B and B~C, all three merge
// even when A and C are not directly similar. Within a cluster the
// highest-confidence candidate survives, earliest first on ties; clusters
// are emitted in order of the first candidate that founded them.
func DedupThreshold(candidates []types.MemoryCandidate, threshold float64) []types.MemoryCandidate {
	if len(candidates) <= 1 {
		return append([]types.MemoryCandidate(nil), candidates...)
	}

	// Normalization is for comparison only; stored text is untouched.
	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = strings.ToLower(strings.TrimSpace(c.Text))
	}

	uf := newUnionFind(len(candidates))
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if similarity(normalized[i], normalized[j]) >= threshold {
				uf.union(i, j)
			}
		}
	}

	survivor := make(map[int]int) // cluster root -> surviving index
	var order []int               // roots in founding order
	for i := range candidates {
		root := uf.find(i)
		best, seen := survivor[root]
		if !seen {
			survivor[root] = i
			order = append(order, root)
			continue
		}
		if candidates[i].Confidence.Rank() > candidates[best].Confidence.Rank() {
			survivor[root] = i
		}
	}

	out := make([]types.MemoryCandidate, 0, len(order))
	for _, root := range order {
		out = append(out, candidates[survivor[root]])
	}
	return out
}

// similarity is 2*LCS(a,b) / (len(a)+len(b)). Two empty strings are
// identical (1); one empty string against anything else is 0.
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return float64(2*lcsLength(a, b)) / float64(len(a)+len(b))
}

// lcsLength computes the longest-common-subsequence length with the
// classic dynamic program, keeping only two rows.
func lcsLength(a, b string) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
