package combin_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/railcore/hexroute/combin"
	"github.com/railcore/hexroute/pathbuilder"
)

// TestCombinationsAreAlwaysPairwiseNonConflicting is a property test for
// conflict-freeness: for any randomly generated set of paths
// with random overlapping conflict sets, every tuple Combinations yields is
// pairwise non-conflicting.
func TestCombinationsAreAlwaysPairwiseNonConflicting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		poolSize := rapid.IntRange(1, 4).Draw(t, "poolSize")

		paths := make([]*pathbuilder.Path, n)
		for i := 0; i < n; i++ {
			tag := rapid.IntRange(0, poolSize-1).Draw(t, "tag")
			paths[i] = pathWithConflicts(center(tag, 0, 0))
		}

		maxK := rapid.IntRange(1, n).Draw(t, "maxK")

		for tuple := range combin.Combinations(paths, maxK) {
			for i := 0; i < len(tuple); i++ {
				for j := i + 1; j < len(tuple); j++ {
					if paths[tuple[i]].Conflicts.Intersects(paths[tuple[j]].Conflicts) {
						t.Fatalf("tuple %v contains conflicting indices %d,%d", tuple, tuple[i], tuple[j])
					}
				}
			}
			if len(tuple) == 0 || len(tuple) > maxK {
				t.Fatalf("tuple %v has invalid length for maxK=%d", tuple, maxK)
			}
		}
	})
}

// TestShardNeverDropsOrDuplicatesAnIndex is a property test for
// parallel-partition correctness: Shard always partitions
// [0,n) into disjoint ranges whose union is exactly [0,n), regardless of
// the requested worker count.
func TestShardNeverDropsOrDuplicatesAnIndex(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 50).Draw(t, "n")
		workers := rapid.IntRange(-2, 20).Draw(t, "workers")

		shards := combin.Shard(n, workers)

		seen := make(map[int]bool)
		for _, r := range shards {
			for i := r.Start; i < r.End; i++ {
				if seen[i] {
					t.Fatalf("index %d covered twice", i)
				}
				seen[i] = true
			}
		}
		if n > 0 && len(seen) != n {
			t.Fatalf("expected %d indices covered, got %d", n, len(seen))
		}
	})
}
