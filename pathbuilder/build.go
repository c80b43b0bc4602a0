// File: build.go
// Role: BuildPaths — DFS enumeration of every legal elementary path
// anchored at a TokenSpace: a small walker struct carrying the borrowed,
// read-only board plus resolved options, recursing with a visited set,
// checking ctx.Done() before each step.
//
// Complexity: every elementary path is recorded, so the work grows
// exponentially with board size in the worst case; MaxLength/MaxStops
// bound it in practice.
package pathbuilder

import (
	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/conflict"
)

// pathWalker encapsulates state during a single BuildPaths DFS run.
type pathWalker struct {
	m         boardmap.Map
	criteria  Criteria
	opts      Options
	ownedSet  map[boardmap.HexAddress][]boardmap.TokenSpace
	anchor    boardmap.TokenSpace
	results   []*Path
	visited   map[boardmap.Element]bool
	passedTok bool // have we already passed through one other owned token?
}

// BuildPaths enumerates every legal elementary path anchored at start,
// under criteria. ownedTokens is the full set of TokenSpaces the
// company owns on m (including start); it is used for the "at most one
// other company token, and only if its TokenSpace is >= start" pruning
// rule, which guarantees a composite path joining two tokens is ever
// discovered from its lower anchor only.
//
// Returns ErrGraphNil if m is nil, ErrStartVertexNotFound if start has
// no anchor Element on m, or the context's error if canceled mid-walk.
func BuildPaths(m boardmap.Map, start boardmap.TokenSpace, ownedTokens []boardmap.TokenSpace, criteria Criteria, opts ...Option) ([]*Path, error) {
	if m == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	startElem := m.AnchorElement(start)
	if startElem == (boardmap.Element{}) {
		return nil, ErrStartVertexNotFound
	}

	owned := make(map[boardmap.HexAddress][]boardmap.TokenSpace, len(ownedTokens))
	for _, t := range ownedTokens {
		if m.Compare(t, start) == 0 {
			continue
		}
		owned[t.Hex] = append(owned[t.Hex], t)
	}

	w := &pathWalker{
		m:        m,
		criteria: criteria,
		opts:     o,
		ownedSet: owned,
		anchor:   start,
		visited:  map[boardmap.Element]bool{startElem: true},
	}

	if err := w.checkCtx(); err != nil {
		return nil, err
	}

	seedConflicts := conflict.NewSet()
	if criteria.Rule == FacesAndCenters && startElem.IsRevenueCenter() {
		// The anchor is a visited revenue center like any other: its
		// Center item must be in the set, or two paths sharing an anchor
		// would pass the combination iterator's disjointness check and
		// claim the anchor's revenue twice.
		seedConflicts = conflict.NewSet(conflict.Center(startElem))
	}

	seed := &Path{
		Anchor:    start,
		Visits:    []boardmap.Visit{{Element: startElem, Stop: startElem.IsRevenueCenter()}},
		StopCount: boolToInt(startElem.IsRevenueCenter()),
		Conflicts: seedConflicts,
	}
	w.results = append(w.results, seed)

	if err := w.traverse(seed); err != nil {
		return nil, err
	}

	return w.results, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (w *pathWalker) checkCtx() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// traverse extends cur by one legal step into every unvisited neighbor,
// recording each successful extension as a new elementary path before
// recursing further from it. Terminal revenue centers (IsTerminal) are
// recorded but never extended past.
func (w *pathWalker) traverse(cur *Path) error {
	if err := w.checkCtx(); err != nil {
		return err
	}

	curElem := cur.Visits[len(cur.Visits)-1].Element
	if w.m.IsTerminal(curElem) {
		return nil // terminals are leaves; never extended
	}

	for _, next := range w.m.Connectivity(curElem) {
		if w.visited[next] {
			continue
		}
		if err := w.checkCtx(); err != nil {
			return err
		}

		extended, passedTok, ok := w.tryExtend(cur, next)
		if !ok {
			continue
		}

		w.visited[next] = true
		prevPassed := w.passedTok
		w.passedTok = w.passedTok || passedTok

		w.results = append(w.results, extended)
		if err := w.traverse(extended); err != nil {
			delete(w.visited, next)
			w.passedTok = prevPassed
			return err
		}

		delete(w.visited, next)
		w.passedTok = prevPassed
	}

	return nil
}

// tryExtend decides whether stepping from curElem to next is legal
// under w.criteria and the anchor-minimality/at-most-one-other-token
// rules, and if so, returns the extended Path.
func (w *pathWalker) tryExtend(cur *Path, next boardmap.Element) (*Path, bool, bool) {
	if next.Kind == boardmap.KindCity || next.Kind == boardmap.KindDit {
		if next.Kind == boardmap.KindCity {
			if toks, isOwned := w.ownedSet[next.Hex]; isOwned && len(toks) > 0 {
				// Anchor-minimality pruning: never enter a city holding
				// another owned token smaller than our anchor — that
				// composite is (or will be) discovered from the lower
				// anchor instead.
				for _, t := range toks {
					if w.m.Compare(t, w.anchor) < 0 {
						return nil, false, false
					}
				}
				// At most one other owned token may be passed through.
				if w.passedTok {
					return nil, false, false
				}
				if w.centerBoundExceeded(cur) {
					return nil, false, false
				}
				return w.extend(cur, next), true, true
			}
		}
		if w.centerBoundExceeded(cur) {
			return nil, false, false
		}
		return w.extend(cur, next), false, true
	}

	if next.Kind == boardmap.KindTrack {
		if cur.Length >= w.criteria.MaxLength {
			return nil, false, false
		}
	}

	return w.extend(cur, next), false, true
}

// centerBoundExceeded reports whether visiting one more revenue center
// from cur would violate Criteria.MaxStops. When AllowSkip is false,
// every visited center must eventually be a stop, so MaxStops bounds
// visited centers directly. When AllowSkip is true, every visited center
// is merely visitable-but-optional and the walk is bounded by MaxLength
// alone; the stops are chosen later by trainscore.Score, which bounds
// them by the train's Capacity and does not consult MaxStops.
func (w *pathWalker) centerBoundExceeded(cur *Path) bool {
	if w.criteria.AllowSkip {
		return false
	}
	return cur.StopCount >= w.criteria.MaxStops
}

// extend returns a new Path equal to cur plus one visit of next,
// updating Length/StopCount/Conflicts as appropriate for next's Kind.
func (w *pathWalker) extend(cur *Path, next boardmap.Element) *Path {
	out := cur.Clone()
	out.Visits = append(out.Visits, boardmap.Visit{Element: next, Stop: next.IsRevenueCenter()})

	switch next.Kind {
	case boardmap.KindTrack:
		out.Length++
	case boardmap.KindCity, boardmap.KindDit:
		out.StopCount++
		if w.criteria.Rule == FacesAndCenters {
			out.Conflicts = out.Conflicts.Union(conflict.NewSet(conflict.Center(next)))
		}
	case boardmap.KindFace:
		out.Conflicts = out.Conflicts.Union(conflict.NewSet(conflict.FacePair(next, boardmap.MirrorFace(next))))
	}
	return out
}
