// File: path.go
// Role: Path — an elementary path as enumerated by BuildPaths, and the
// composite paths produced later by pathstore joining two elementary
// paths that share an anchor.
package pathbuilder

import (
	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/conflict"
)

// Path is an ordered walk through the board's connectivity graph,
// anchored at a single TokenSpace, visiting each Element at most once.
// Composite paths produced by pathstore share this representation.
//
// Length counts the number of track segments (KindTrack Elements)
// visited — the path's cumulative distance. StopCount counts the number
// of revenue centers (KindCity/KindDit Elements) visited; whether each
// one is ultimately claimed as a stop is decided later by trainscore,
// not at build time — Visit.Stop here simply marks "this center was
// visited and is available to be claimed".
type Path struct {
	Anchor    boardmap.TokenSpace
	Visits    []boardmap.Visit
	Length    int
	StopCount int
	Conflicts conflict.Set
}

// Clone returns a deep copy of p: its own Visits slice, safe to extend
// independently of p (used when forking the DFS walk across sibling
// branches, and when pathstore builds a composite path from two
// elementary paths).
func (p *Path) Clone() *Path {
	visits := make([]boardmap.Visit, len(p.Visits))
	copy(visits, p.Visits)
	return &Path{
		Anchor:    p.Anchor,
		Visits:    visits,
		Length:    p.Length,
		StopCount: p.StopCount,
		Conflicts: p.Conflicts,
	}
}

// Elements returns the Elements visited by p, in visit order.
func (p *Path) Elements() []boardmap.Element {
	out := make([]boardmap.Element, len(p.Visits))
	for i, v := range p.Visits {
		out[i] = v.Element
	}
	return out
}

// EndpointElements returns the Elements at the two ends of p: for a
// single-direction elementary path this is (anchor element, last
// visited element); for a composite path (built by pathstore) it is the
// two far ends, since the anchor itself sits in the middle of Visits.
func (p *Path) EndpointElements() (first, last boardmap.Element) {
	if len(p.Visits) == 0 {
		return boardmap.Element{}, boardmap.Element{}
	}
	return p.Visits[0].Element, p.Visits[len(p.Visits)-1].Element
}
