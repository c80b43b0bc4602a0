// Package boardfixture provides a concrete, in-memory implementation of
// boardmap.Map: a small hex board of cities, dits, plain track tiles, and
// terminal (off-board) hexes, used by tests and property tests. It is the
// reference Map implementation the
// real tile/board model (out of scope for this module) is expected to
// stand in for.
//
// NewBoard deep-copies its input and precomputes all connectivity once,
// up front, so the resulting Board is immutable and safe to share across
// goroutines: axial hex tiles, six faces each, city/dit sub-nodes, and
// terminal hexes.
package boardfixture

import (
	"fmt"
	"sort"

	"github.com/railcore/hexroute/boardmap"
)

// TileKind tags the kind of tile occupying a hex.
type TileKind uint8

const (
	// TileCity is a token-eligible revenue center with one or more
	// TokenSpaces.
	TileCity TileKind = iota
	// TileDit is a small revenue marker with no token spaces.
	TileDit
	// TilePlain is track-only: it connects faces directly with no
	// revenue center and no stop.
	TilePlain
	// TileTerminal is an off-board ("red") revenue center: a path may
	// end at it but never pass through it.
	TileTerminal
)

// FaceLink connects two face directions (0..5) directly via a single
// track segment, used by TilePlain hexes (straight or curved track with
// no stop).
type FaceLink struct {
	A, B int
}

// HexSpec describes one hex to add to a Board. Revenue maps a Phase name
// to the base revenue of the hex's center (City/Dit/Terminal); the empty
// string key is the fallback used when no entry exists for the requested
// Phase.
type HexSpec struct {
	Addr    boardmap.HexAddress
	Kind    TileKind
	Faces   []int // faces wired to the center node (City/Dit/Terminal)
	Links   []FaceLink
	Spaces  int // token spaces, TileCity only
	Revenue map[string]uint32
}

// Board is an immutable, in-memory boardmap.Map built once by NewBoard
// and then populated with tokens via PlaceToken. Connectivity, terminal
// status, and revenue are fixed at construction; only token ownership
// changes afterward, exactly as a real game board's tile layout is fixed
// once laid while token placement is a separate, later mutation.
type Board struct {
	adjacency map[boardmap.Element][]boardmap.Element
	terminal  map[boardmap.Element]bool
	revenue   map[boardmap.Element]map[string]uint32
	centerOf  map[boardmap.HexAddress]boardmap.Element
	spaces    map[boardmap.HexAddress]int

	tokens     map[string][]boardmap.TokenSpace
	tokenOwner map[boardmap.TokenSpace]string
}

// NewBoard validates specs and builds a Board: hex-internal connectivity
// first (center-to-face or face-to-face track), then cross-hex face
// crossings wired by matching each face's geometric mirror (computed
// purely from coordinates, see boardmap.MirrorFace) against the
// neighboring hex's own declared faces.
//
// Returns ErrDuplicateHex if two specs share a HexAddress, or
// ErrNoSpaces if a TileCity spec declares Spaces <= 0.
func NewBoard(specs []HexSpec) (*Board, error) {
	b := &Board{
		adjacency:  make(map[boardmap.Element][]boardmap.Element),
		terminal:   make(map[boardmap.Element]bool),
		revenue:    make(map[boardmap.Element]map[string]uint32),
		centerOf:   make(map[boardmap.HexAddress]boardmap.Element),
		spaces:     make(map[boardmap.HexAddress]int),
		tokens:     make(map[string][]boardmap.TokenSpace),
		tokenOwner: make(map[boardmap.TokenSpace]string),
	}

	declared := make(map[boardmap.HexAddress]map[int]bool, len(specs))
	seen := make(map[boardmap.HexAddress]bool, len(specs))

	for _, s := range specs {
		if seen[s.Addr] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHex, s.Addr)
		}
		seen[s.Addr] = true
		if s.Kind == TileCity && s.Spaces <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoSpaces, s.Addr)
		}

		faces := make(map[int]bool)
		for _, f := range s.Faces {
			faces[f] = true
		}
		for _, l := range s.Links {
			faces[l.A] = true
			faces[l.B] = true
		}
		declared[s.Addr] = faces

		b.wireHex(s)
	}

	b.wireCrossings(declared)
	b.sortAdjacency()

	return b, nil
}

// wireHex builds the hex-internal connectivity for one spec: for
// center-bearing kinds (City/Dit/Terminal), every declared face connects
// through a dedicated track segment to the center node; for TilePlain,
// each FaceLink wires a direct face-to-face track segment with no
// center.
func (b *Board) wireHex(s HexSpec) {
	link := func(a, c boardmap.Element) {
		b.adjacency[a] = append(b.adjacency[a], c)
		b.adjacency[c] = append(b.adjacency[c], a)
	}

	switch s.Kind {
	case TileCity, TileDit, TileTerminal:
		kind := boardmap.KindCity
		if s.Kind == TileDit {
			kind = boardmap.KindDit
		}
		center := boardmap.Element{Kind: kind, Hex: s.Addr, Index: 0}
		b.centerOf[s.Addr] = center
		revenue := make(map[string]uint32, len(s.Revenue))
		for k, v := range s.Revenue {
			revenue[k] = v
		}
		b.revenue[center] = revenue
		if s.Kind == TileTerminal {
			b.terminal[center] = true
		}
		if s.Kind == TileCity {
			b.spaces[s.Addr] = s.Spaces
		}
		for _, f := range s.Faces {
			face := boardmap.Element{Kind: boardmap.KindFace, Hex: s.Addr, Index: f}
			track := boardmap.Element{Kind: boardmap.KindTrack, Hex: s.Addr, Index: f}
			link(face, track)
			link(track, center)
		}
	case TilePlain:
		for i, l := range s.Links {
			faceA := boardmap.Element{Kind: boardmap.KindFace, Hex: s.Addr, Index: l.A}
			faceB := boardmap.Element{Kind: boardmap.KindFace, Hex: s.Addr, Index: l.B}
			track := boardmap.Element{Kind: boardmap.KindTrack, Hex: s.Addr, Index: i}
			link(faceA, track)
			link(track, faceB)
		}
	}
}

// wireCrossings adds the cross-hex Face<->Face edges: for every declared
// face on every hex, compute its geometric mirror and, if the
// neighboring hex exists and declares the mirrored face itself, link the
// two faces directly. This is the only place Board consults the geometry
// of two different hexes at once; everything else is purely local to one
// hex's own declared faces.
func (b *Board) wireCrossings(declared map[boardmap.HexAddress]map[int]bool) {
	for addr, faces := range declared {
		indices := make([]int, 0, len(faces))
		for f := range faces {
			indices = append(indices, f)
		}
		sort.Ints(indices)
		for _, f := range indices {
			face := boardmap.Element{Kind: boardmap.KindFace, Hex: addr, Index: f}
			mirror := boardmap.MirrorFace(face)
			neighborFaces, ok := declared[mirror.Hex]
			if !ok || !neighborFaces[mirror.Index] {
				continue
			}
			b.adjacency[face] = append(b.adjacency[face], mirror)
		}
	}
}

// sortAdjacency sorts every adjacency list by Element.Compare, so
// Connectivity's iteration order is a pure function of board content and
// never depends on map-iteration or build order.
func (b *Board) sortAdjacency() {
	for e, list := range b.adjacency {
		sort.Slice(list, func(i, j int) bool { return list[i].Compare(list[j]) < 0 })
		b.adjacency[e] = list
	}
}

// PlaceToken assigns company's token to TokenSpace{Addr, space}. Returns
// ErrUnknownHex if Addr was never added, ErrNotACity if it is not a
// TileCity, ErrSpaceOutOfRange if space is outside [0, Spaces), or
// ErrSpaceOccupied if another company already holds that space.
func (b *Board) PlaceToken(company string, addr boardmap.HexAddress, space int) error {
	spaces, ok := b.spaces[addr]
	if !ok {
		if _, exists := b.centerOf[addr]; !exists {
			return fmt.Errorf("%w: %s", ErrUnknownHex, addr)
		}
		return fmt.Errorf("%w: %s", ErrNotACity, addr)
	}
	if space < 0 || space >= spaces {
		return fmt.Errorf("%w: %s space %d", ErrSpaceOutOfRange, addr, space)
	}
	ts := boardmap.TokenSpace{Hex: addr, SpaceIndex: space}
	if _, taken := b.tokenOwner[ts]; taken {
		return fmt.Errorf("%w: %s", ErrSpaceOccupied, ts)
	}
	b.tokenOwner[ts] = company
	b.tokens[company] = append(b.tokens[company], ts)
	return nil
}

// TokensOf implements boardmap.Map.
func (b *Board) TokensOf(company string) []boardmap.TokenSpace {
	out := make([]boardmap.TokenSpace, len(b.tokens[company]))
	copy(out, b.tokens[company])
	return out
}

// Connectivity implements boardmap.Map.
func (b *Board) Connectivity(e boardmap.Element) []boardmap.Element {
	list := b.adjacency[e]
	out := make([]boardmap.Element, len(list))
	copy(out, list)
	return out
}

// IsTerminal implements boardmap.Map.
func (b *Board) IsTerminal(e boardmap.Element) bool {
	return b.terminal[e]
}

// Revenue implements boardmap.Map. It looks up phase.Name first, falling
// back to the empty-string entry (a hex with a single, phase-invariant
// revenue value only needs that one fallback entry).
func (b *Board) Revenue(center boardmap.Element, phase boardmap.Phase) uint32 {
	byPhase, ok := b.revenue[center]
	if !ok {
		return 0
	}
	if v, ok := byPhase[phase.Name]; ok {
		return v
	}
	return byPhase[""]
}

// AnchorElement implements boardmap.Map.
func (b *Board) AnchorElement(t boardmap.TokenSpace) boardmap.Element {
	return b.centerOf[t.Hex]
}

// Compare implements boardmap.Map using TokenSpace's own total order.
func (b *Board) Compare(a, c boardmap.TokenSpace) int {
	return a.Compare(c)
}
