// Package combin implements the combination iterator: a lazy stream of
// index tuples into a path list, 1 <= k <= maxK, whose paths are
// pairwise non-conflicting, with early pruning and leading-index
// sharding for parallel workers.
package combin

import (
	"iter"

	"github.com/railcore/hexroute/pathbuilder"
)

// Range is a half-open index interval [Start, End) over a path slice,
// used to restrict the leading (first-chosen) index of a combination so
// distinct workers can search disjoint, duplicate-free slices of the
// same combination space.
type Range struct {
	Start, End int
}

// Shard partitions [0, n) into up to workers contiguous, roughly
// even Ranges, for sharding the leading combination index across
// parallel workers. Returns nil if n <= 0. workers <= 0 or workers > n
// is clamped to a sane value.
//
// Whether an uneven split would balance shard workloads better is an
// open question that needs benchmarks on realistic boards; this always
// produces a plain, even split of the range, the simplest option that is
// still correct.
func Shard(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	ranges := make([]Range, 0, workers)
	base := n / workers
	rem := n % workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		end := start + size
		if size > 0 {
			ranges = append(ranges, Range{Start: start, End: end})
		}
		start = end
	}
	return ranges
}

// Combinations streams every index tuple (i1 < ... < ik), 1 <= k <= maxK,
// over paths such that the selected paths are pairwise non-conflicting.
// It is equivalent to CombinationsInRange(paths, maxK, Range{0, len(paths)}).
func Combinations(paths []*pathbuilder.Path, maxK int) iter.Seq[[]int] {
	return CombinationsInRange(paths, maxK, Range{Start: 0, End: len(paths)})
}

// CombinationsInRange streams every pairwise-non-conflicting index tuple
// whose leading (smallest) index falls within leading. Only the leading
// index is restricted: once a worker has picked its first index, the
// rest of the tuple ranges freely over the whole path list. This is the
// only iteration order that lets workers be safely partitioned without
// duplicating or losing tuples.
//
// Complexity: the walk prunes a branch the instant a candidate conflicts
// with the current prefix, rather than running a full C(n,k) enumeration
// followed by filtering.
func CombinationsInRange(paths []*pathbuilder.Path, maxK int, leading Range) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if maxK <= 0 || len(paths) == 0 {
			return
		}

		prefix := make([]int, 0, maxK)

		var walk func(start int) bool
		walk = func(start int) bool {
			for i := start; i < len(paths); i++ {
				if len(prefix) == 0 && (i < leading.Start || i >= leading.End) {
					continue
				}
				if conflictsWithPrefix(paths, prefix, i) {
					continue
				}

				prefix = append(prefix, i)
				out := make([]int, len(prefix))
				copy(out, prefix)
				if !yield(out) {
					prefix = prefix[:len(prefix)-1]
					return false
				}
				if len(prefix) < maxK {
					if !walk(i + 1) {
						prefix = prefix[:len(prefix)-1]
						return false
					}
				}
				prefix = prefix[:len(prefix)-1]
			}
			return true
		}

		walk(0)
	}
}

// conflictsWithPrefix reports whether paths[candidate]'s conflict set
// intersects any path already in prefix.
func conflictsWithPrefix(paths []*pathbuilder.Path, prefix []int, candidate int) bool {
	c := paths[candidate]
	for _, idx := range prefix {
		if paths[idx].Conflicts.Intersects(c.Conflicts) {
			return true
		}
	}
	return false
}
