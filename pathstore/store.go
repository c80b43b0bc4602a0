// File: store.go
// Role: Store — collects the per-anchor elementary paths produced by
// pathbuilder.BuildPaths and joins pairs sharing an anchor into composite
// paths. Both entry points (BuildStore and its parallel twin
// BuildStoreConcurrent) sort the anchors into their total order, then
// build and join deterministically.
package pathstore

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/conflict"
	"github.com/railcore/hexroute/pathbuilder"
)

// Store holds every path a route may be built from: per-anchor
// elementary paths (as returned by pathbuilder.BuildPaths, including the
// trivial single-visit path) plus their pairwise-joined composites, all
// flattened into one insertion-ordered slice. combin and permute operate
// purely on indices into Paths.
type Store struct {
	// Paths is the flat, insertion-ordered list of every usable path:
	// elementary paths first, then composites, grouped by anchor in the
	// anchors' total order.
	Paths []*pathbuilder.Path

	// ByAnchor maps each anchor TokenSpace to the indices (into Paths)
	// of every path anchored there.
	ByAnchor map[boardmap.TokenSpace][]int
}

// BuildStore enumerates elementary paths from every anchor in anchors
// (sorted by m.Compare before iterating, so construction is a pure
// function of board content and anchor set, independent of caller
// ordering), joins same-anchor pairs into composites, and returns the
// resulting Store.
//
// Returns whatever error pathbuilder.BuildPaths returns for a given
// anchor (including a context cancellation error), stopping immediately
// — no partial Store is returned on failure.
func BuildStore(ctx context.Context, m boardmap.Map, criteria pathbuilder.Criteria, anchors []boardmap.TokenSpace) (*Store, error) {
	ordered := make([]boardmap.TokenSpace, len(anchors))
	copy(ordered, anchors)
	sort.Slice(ordered, func(i, j int) bool { return m.Compare(ordered[i], ordered[j]) < 0 })

	s := &Store{ByAnchor: make(map[boardmap.TokenSpace][]int, len(ordered))}

	for _, anchor := range ordered {
		elementary, err := pathbuilder.BuildPaths(m, anchor, ordered, criteria, pathbuilder.WithContext(ctx))
		if err != nil {
			return nil, err
		}

		start := len(s.Paths)
		s.Paths = append(s.Paths, elementary...)

		composites := joinAll(elementary, criteria)
		s.Paths = append(s.Paths, composites...)

		indices := make([]int, len(s.Paths)-start)
		for i := range indices {
			indices[i] = start + i
		}
		s.ByAnchor[anchor] = indices
	}

	return s, nil
}

// BuildStoreConcurrent is BuildStore's parallel twin: the per-anchor
// elementary-path build (and its same-anchor composite joins) run as an
// errgroup.Group with SetLimit(workers), one goroutine per anchor, while
// the merge back into Store.Paths happens afterward, sequentially, in
// the anchors' total order — so the result is byte-for-byte identical to
// BuildStore regardless of goroutine completion order. workers <= 0
// means unlimited.
//
// Returns the first error encountered across all anchor builds (any
// anchor's BuildPaths error, or a context cancellation), matching
// BuildStore's fail-fast, no-partial-Store contract.
func BuildStoreConcurrent(ctx context.Context, m boardmap.Map, criteria pathbuilder.Criteria, anchors []boardmap.TokenSpace, workers int) (*Store, error) {
	ordered := make([]boardmap.TokenSpace, len(anchors))
	copy(ordered, anchors)
	sort.Slice(ordered, func(i, j int) bool { return m.Compare(ordered[i], ordered[j]) < 0 })

	type anchorResult struct {
		elementary []*pathbuilder.Path
		composites []*pathbuilder.Path
	}
	results := make([]anchorResult, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, anchor := range ordered {
		i, anchor := i, anchor
		g.Go(func() error {
			elementary, err := pathbuilder.BuildPaths(m, anchor, ordered, criteria, pathbuilder.WithContext(gctx))
			if err != nil {
				return err
			}
			results[i] = anchorResult{
				elementary: elementary,
				composites: joinAll(elementary, criteria),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Store{ByAnchor: make(map[boardmap.TokenSpace][]int, len(ordered))}
	for i, anchor := range ordered {
		start := len(s.Paths)
		s.Paths = append(s.Paths, results[i].elementary...)
		s.Paths = append(s.Paths, results[i].composites...)

		indices := make([]int, len(s.Paths)-start)
		for j := range indices {
			indices[j] = start + j
		}
		s.ByAnchor[anchor] = indices
	}

	return s, nil
}

// joinAll produces every composite path formed from pairwise-distinct,
// non-trivial (len(Visits) > 1) elementary paths sharing an anchor,
// iterating index pairs i < j so each unordered pair is joined exactly
// once — join is symmetric, so the (j,i) direction would only reproduce
// the same path traversed in reverse.
func joinAll(elementary []*pathbuilder.Path, criteria pathbuilder.Criteria) []*pathbuilder.Path {
	var out []*pathbuilder.Path
	for i := 0; i < len(elementary); i++ {
		p := elementary[i]
		if len(p.Visits) <= 1 {
			continue // the trivial anchor-only path never joins; it stands alone
		}
		for j := i + 1; j < len(elementary); j++ {
			q := elementary[j]
			if len(q.Visits) <= 1 {
				continue
			}
			if joined, ok := join(p, q, criteria); ok {
				out = append(out, joined)
			}
		}
	}
	return out
}

// join combines two elementary paths anchored at the same TokenSpace
// into one composite path, running reverse(p) through the shared anchor
// into q, merging conflict sets by sorted union. Both p and q carry the
// shared anchor's Center item, so the disjointness check exempts exactly
// that one item: the anchor is the join point and is visited once in the
// composite (Union dedupes it back to a single item). Any other shared
// item means some Element beyond the anchor is genuinely common to both
// halves, so the halves cannot form one walk that visits every Element
// at most once. Returns ok=false on such an intersection, or when the
// join would exceed criteria's bounds.
func join(p, q *pathbuilder.Path, criteria pathbuilder.Criteria) (*pathbuilder.Path, bool) {
	anchorItem := conflict.Center(p.Visits[0].Element)
	if p.Conflicts.IntersectsExcluding(q.Conflicts, anchorItem) {
		return nil, false
	}

	length := p.Length + q.Length
	if length > criteria.MaxLength {
		return nil, false
	}
	stops := p.StopCount + q.StopCount - 1 // the shared anchor is counted in both
	if !criteria.AllowSkip && stops > criteria.MaxStops {
		return nil, false
	}

	// Track segments carry no conflict item, so halves that leave the
	// anchor along the same track pass the check above; reject any
	// Element other than the anchor that both halves visit.
	inP := make(map[boardmap.Element]bool, len(p.Visits))
	for _, v := range p.Visits[1:] {
		inP[v.Element] = true
	}
	for _, v := range q.Visits[1:] {
		if inP[v.Element] {
			return nil, false
		}
	}

	visits := make([]boardmap.Visit, 0, len(p.Visits)+len(q.Visits)-1)
	for i := len(p.Visits) - 1; i >= 0; i-- {
		visits = append(visits, p.Visits[i])
	}
	visits = append(visits, q.Visits[1:]...)

	return &pathbuilder.Path{
		Anchor:    p.Anchor,
		Visits:    visits,
		Length:    length,
		StopCount: stops,
		Conflicts: p.Conflicts.Union(q.Conflicts),
	}, true
}
