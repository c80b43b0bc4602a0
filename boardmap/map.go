// File: map.go
// Role: the read-only connectivity-view contract borrowed from the board
// collaborator. No algorithm in this module ever mutates a Map; every
// method here is a pure function of committed board state.
package boardmap

import "errors"

// ErrUnknownCompany is returned by callers of Map.TokensOf (or wrapped by
// higher-level packages) when a company has no tokens placed on the map.
var ErrUnknownCompany = errors.New("boardmap: unknown company")

// Map is the connectivity view a route-optimization run consumes. It is
// implemented by the real board/tile model (out of scope here) or, for
// tests and examples, by boardfixture.Board.
//
// Contract:
//   - TokensOf returns the TokenSpaces owned by company, in no particular
//     order; callers that need determinism sort by Compare.
//   - Connectivity returns e's neighboring Elements in a deterministic,
//     implementation-defined iteration order — the same order every call,
//     for the same committed state.
//   - IsTerminal reports whether e is an off-board ("red") revenue center:
//     a path may end at a terminal but never pass through one.
//   - Revenue returns the base revenue of a City/Dit Element under the
//     given Phase; its value for non-revenue-center Elements is undefined
//     and must not be relied upon.
type Map interface {
	// TokensOf returns every TokenSpace owned by company on this map.
	TokensOf(company string) []TokenSpace

	// Connectivity returns the Elements directly reachable from e in one
	// traversal step.
	Connectivity(e Element) []Element

	// IsTerminal reports whether e is an off-board revenue center.
	IsTerminal(e Element) bool

	// Revenue returns the base revenue of center under phase.
	Revenue(center Element, phase Phase) uint32

	// AnchorElement returns the City Element a TokenSpace's token sits
	// in — the starting point for any path anchored at t.
	AnchorElement(t TokenSpace) Element

	// Compare orders two TokenSpaces consistently with the board's own
	// notion of token identity (normally TokenSpace.Compare, but a Map
	// implementation is free to special-case, e.g., around synthetic
	// TokenSpaces). pathbuilder and pathstore use this instead of calling
	// TokenSpace.Compare directly so a Map implementation's ordering is
	// always authoritative.
	Compare(a, b TokenSpace) int
}
