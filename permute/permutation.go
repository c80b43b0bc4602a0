// Package permute enumerates every k-permutation of a set of train-type
// keys, unique up to type equality. Identical train types among an owned
// fleet are interchangeable, so a naive O(k!) permutation of train
// instances would massively over-count; this instead walks the sorted
// type-key multiset and skips any branch that would reproduce a sequence
// already emitted — the classic "skip the duplicate branch"
// multiset-permutation technique.
package permute

import (
	"iter"
	"sort"
)

// TypeSequences streams every distinct k-length sequence of typeKeys,
// where typeKeys holds one entry per owned train instance (with repeats
// for trains sharing a type) and a "sequence" assigns a type to each of
// k ordered positions, drawing each position from a distinct instance.
// Two sequences that only differ in which interchangeable instance of
// the same type was used for a position are the same sequence and are
// emitted exactly once.
//
// Returns no sequences if k <= 0 or k > len(typeKeys).
func TypeSequences(typeKeys []string, k int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if k <= 0 || k > len(typeKeys) {
			return
		}

		sorted := make([]string, len(typeKeys))
		copy(sorted, typeKeys)
		sort.Strings(sorted)

		used := make([]bool, len(sorted))
		seq := make([]string, 0, k)

		var walk func() bool
		walk = func() bool {
			if len(seq) == k {
				out := make([]string, k)
				copy(out, seq)
				return yield(out)
			}
			for i := 0; i < len(sorted); i++ {
				if used[i] {
					continue
				}
				// Skip a branch that would reproduce a sequence already
				// emitted by an earlier, identical-valued, unused
				// sibling: this is the standard multiset-permutation
				// dedup rule, applied to prefixes of length k rather
				// than only full-length permutations.
				if i > 0 && sorted[i] == sorted[i-1] && !used[i-1] {
					continue
				}

				used[i] = true
				seq = append(seq, sorted[i])
				if !walk() {
					used[i] = false
					seq = seq[:len(seq)-1]
					return false
				}
				used[i] = false
				seq = seq[:len(seq)-1]
			}
			return true
		}

		walk()
	}
}
