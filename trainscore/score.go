// File: score.go
// Role: Score — computes the revenue-maximizing Route for a (TrainType,
// Path) pair. For skip-capable trains, every legal stop subset is
// enumerated exhaustively (bounded by the number of visited centers,
// which Criteria.MaxStops bounds at build time only when AllowSkip is
// false) because bonuses are
// non-monotone — a locally-smaller subset can score higher once
// DoubleRevenueIfConnected or a location bonus is in play. Ties are
// broken by fewer stops, then by a lexicographically smaller stop set.
// The search is exhaustive and deterministic; no randomness anywhere.
package trainscore

import (
	"sort"

	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/pathbuilder"
)

// Route is a Path plus the stop subset chosen for it and the TrainType
// assigned, along with the resulting total Revenue.
type Route struct {
	Path    *pathbuilder.Path
	Train   TrainType
	Stops   []boardmap.Element
	Revenue uint32
}

// Score returns the revenue-maximizing Route for running train along
// path under phase and bonuses, or ok=false if no legal stop assignment
// exists (a non-skip train whose path visits more centers than its
// Capacity, or a skip-capable train whose Capacity is too small to admit
// even the path's mandatory first and last centers).
func Score(m boardmap.Map, path *pathbuilder.Path, train TrainType, phase boardmap.Phase, bonuses []Bonus) (Route, bool) {
	centers := visitedCenters(path)
	if len(centers) == 0 {
		return Route{}, false
	}

	base := make(map[boardmap.Element]uint32, len(centers))
	for _, c := range centers {
		base[c] = m.Revenue(c, phase)
	}

	if len(centers) == 1 {
		if train.Capacity < 1 {
			return Route{}, false
		}
		stops := []boardmap.Element{centers[0]}
		return Route{Path: path, Train: train, Stops: stops, Revenue: applyBonuses(stops, base, train, bonuses)}, true
	}

	if !train.SkipCapable {
		if len(centers) > train.Capacity {
			return Route{}, false
		}
		return Route{Path: path, Train: train, Stops: centers, Revenue: applyBonuses(centers, base, train, bonuses)}, true
	}

	if train.Capacity < 2 {
		return Route{}, false
	}

	first, last := centers[0], centers[len(centers)-1]
	middle := centers[1 : len(centers)-1]
	n := len(middle)

	var best Route
	haveBest := false
	for mask := 0; mask < (1 << n); mask++ {
		stops := make([]boardmap.Element, 0, n+2)
		stops = append(stops, first)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				stops = append(stops, middle[i])
			}
		}
		stops = append(stops, last)
		if len(stops) > train.Capacity {
			continue
		}

		cand := Route{Path: path, Train: train, Stops: stops, Revenue: applyBonuses(stops, base, train, bonuses)}
		if !haveBest || isBetter(cand, best) {
			best = cand
			haveBest = true
		}
	}

	if !haveBest {
		return Route{}, false
	}
	return best, true
}

// isBetter reports whether a outranks b: higher revenue wins; equal
// revenue favors fewer stops; equal revenue and stop count favors the
// lexicographically smaller stop set.
func isBetter(a, b Route) bool {
	if a.Revenue != b.Revenue {
		return a.Revenue > b.Revenue
	}
	if len(a.Stops) != len(b.Stops) {
		return len(a.Stops) < len(b.Stops)
	}
	return compareStopSets(a.Stops, b.Stops) < 0
}

// compareStopSets orders two equal-length stop sets by comparing sorted
// copies element-by-element under Element.Compare.
func compareStopSets(a, b []boardmap.Element) int {
	sa := sortedCopy(a)
	sb := sortedCopy(b)
	for i := range sa {
		if c := sa[i].Compare(sb[i]); c != 0 {
			return c
		}
	}
	return 0
}

func sortedCopy(elems []boardmap.Element) []boardmap.Element {
	out := make([]boardmap.Element, len(elems))
	copy(out, elems)
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// visitedCenters returns the City/Dit Elements visited by path, in visit
// order, regardless of the Stop flag recorded at build time — stop
// selection for skip-capable trains is decided here, not at build time.
func visitedCenters(path *pathbuilder.Path) []boardmap.Element {
	out := make([]boardmap.Element, 0, path.StopCount)
	for _, v := range path.Visits {
		if v.Element.IsRevenueCenter() {
			out = append(out, v.Element)
		}
	}
	return out
}

// applyBonuses sums the base revenue of stops plus every applicable
// Bonus. DoubleRevenueIfConnected is resolved before summing, since it
// modifies a stop's base revenue rather than adding a flat delta.
func applyBonuses(stops []boardmap.Element, base map[boardmap.Element]uint32, train TrainType, bonuses []Bonus) uint32 {
	stopSet := make(map[boardmap.Element]bool, len(stops))
	for _, s := range stops {
		stopSet[s] = true
	}

	perStop := make(map[boardmap.Element]uint32, len(stops))
	for _, s := range stops {
		perStop[s] = base[s]
	}

	for _, b := range bonuses {
		if drc, ok := b.(DoubleRevenueIfConnected); ok && stopSet[drc.Target] {
			for _, other := range drc.AnyOf {
				if stopSet[other] {
					perStop[drc.Target] *= 2
					break
				}
			}
		}
	}

	var total uint32
	for _, v := range perStop {
		total += v
	}

	for _, b := range bonuses {
		switch v := b.(type) {
		case LocationBonus:
			if stopSet[v.Location] {
				total += v.Delta
			}
		case ConnectionBonus:
			if stopSet[v.A] && stopSet[v.B] {
				total += v.Delta
			}
		case VisitWithTrain:
			if stopSet[v.Location] && v.Predicate != nil && v.Predicate(train) {
				total += v.Delta
			}
		}
	}

	return total
}
