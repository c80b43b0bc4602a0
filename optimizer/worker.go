// File: worker.go
// Role: the second level of parallelism — the combination-iterator
// phase, sharded on the leading path index across an errgroup.Group,
// each worker scoring every (combination x train-type permutation) pair
// it owns and keeping a thread-local best candidate. Reduction is a
// single associative merge over the workers' local bests, breaking ties
// by a lexicographically smaller path-index tuple so the result is
// identical regardless of goroutine completion order.
package optimizer

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/combin"
	"github.com/railcore/hexroute/pathbuilder"
	"github.com/railcore/hexroute/pathstore"
	"github.com/railcore/hexroute/permute"
	"github.com/railcore/hexroute/trainscore"
)

// candidate is one fully-scored (combination, train-type assignment)
// pair: the combination's path indices, the train-type key assigned to
// each position (aligned by index), the per-position Routes, and the
// summed revenue.
type candidate struct {
	revenue  uint32
	pathIdx  []int
	trainSeq []string
	routes   []trainscore.Route
}

// searchBest runs the combination x permutation x scoring search over
// store.Paths, bounded by len(trains), and returns the single best
// candidate under the tie-break rules below. found is false if
// no combination of any size admits a feasible train assignment (e.g.
// every train is too small for every path).
func searchBest(ctx context.Context, store *pathstore.Store, trains []trainscore.TrainType, bonuses []trainscore.Bonus, phase boardmap.Phase, m boardmap.Map, workers int) (candidate, bool, error) {
	typeKeys, byName := buildTypeIndex(trains)
	maxK := len(trains)
	if maxK > len(store.Paths) {
		maxK = len(store.Paths)
	}

	shards := combin.Shard(len(store.Paths), workers)
	if len(shards) == 0 {
		return candidate{}, false, nil
	}

	results := make([]*candidate, len(shards))

	g, gctx := errgroup.WithContext(ctx)
	for si, shard := range shards {
		si, shard := si, shard
		g.Go(func() error {
			best, err := searchShard(gctx, store.Paths, shard, maxK, typeKeys, byName, phase, m, bonuses)
			if err != nil {
				return err
			}
			results[si] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, false, err
	}

	var overall *candidate
	for _, r := range results {
		if r == nil {
			continue
		}
		if overall == nil || isBetterCandidate(r, overall) {
			overall = r
		}
	}
	if overall == nil {
		return candidate{}, false, nil
	}
	return *overall, true, nil
}

// searchShard scans every combination whose leading index falls in
// shard, scoring every distinct train-type permutation for each, and
// returns the best candidate this shard found (nil if none is feasible).
func searchShard(ctx context.Context, paths []*pathbuilder.Path, shard combin.Range, maxK int, typeKeys []string, byName map[string]trainscore.TrainType, phase boardmap.Phase, m boardmap.Map, bonuses []trainscore.Bonus) (*candidate, error) {
	var best *candidate

	for combo := range combin.CombinationsInRange(paths, maxK, shard) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for seq := range permute.TypeSequences(typeKeys, len(combo)) {
			revenue, ok, routes := scoreAssignment(m, paths, combo, seq, byName, phase, bonuses)
			if !ok {
				continue
			}
			cand := &candidate{
				revenue:  revenue,
				pathIdx:  append([]int(nil), combo...),
				trainSeq: append([]string(nil), seq...),
				routes:   routes,
			}
			if best == nil || isBetterCandidate(cand, best) {
				best = cand
			}
		}
	}

	return best, nil
}

// scoreAssignment scores every (path, train type) pair in a combination
// x permutation assignment, returning ok=false as soon as any pair is
// infeasible (trainscore.Score reports no legal stop subset for that
// pairing) — the whole sequence is then not a candidate.
func scoreAssignment(m boardmap.Map, paths []*pathbuilder.Path, combo []int, seq []string, byName map[string]trainscore.TrainType, phase boardmap.Phase, bonuses []trainscore.Bonus) (uint32, bool, []trainscore.Route) {
	routes := make([]trainscore.Route, len(combo))
	var total uint32
	for i, pIdx := range combo {
		tt := byName[seq[i]]
		route, ok := trainscore.Score(m, paths[pIdx], tt, phase, bonuses)
		if !ok {
			return 0, false, nil
		}
		total += route.Revenue
		routes[i] = route
	}
	return total, true, routes
}

// isBetterCandidate reports whether a outranks b: higher revenue wins;
// ties are broken by a lexicographically smaller path-index tuple, so
// the reduction is deterministic regardless of completion order.
func isBetterCandidate(a, b *candidate) bool {
	if a.revenue != b.revenue {
		return a.revenue > b.revenue
	}
	return slices.Compare(a.pathIdx, b.pathIdx) < 0
}

// buildTypeIndex returns one type-key (the TrainType's Name) per owned
// train instance, in trains' order, plus a lookup from key back to a
// representative TrainType value (the first occurrence of that Name).
func buildTypeIndex(trains []trainscore.TrainType) ([]string, map[string]trainscore.TrainType) {
	keys := make([]string, len(trains))
	byName := make(map[string]trainscore.TrainType, len(trains))
	for i, tt := range trains {
		keys[i] = tt.Name
		if _, ok := byName[tt.Name]; !ok {
			byName[tt.Name] = tt
		}
	}
	return keys, byName
}
