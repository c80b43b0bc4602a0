// File: hexmath.go
// Role: pure axial-hex geometry — no board state, no Map — used to derive
// a face crossing's "mirror" view from the neighboring hex. This keeps
// the canonical FacePair conflict encoding computable from value
// identifiers alone, with no pointer or lookup into a board.
package boardmap

// axialDirections lists the six neighbor offsets of a hex in axial
// coordinates, indexed 0..5 in a fixed, implementation-wide order. Index
// i and index (i+3)%6 are always opposite directions.
var axialDirections = [6]HexAddress{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// NeighborHex returns the hex adjacent to h in the given face direction
// (0..5). Direction values outside 0..5 are reduced modulo 6.
func NeighborHex(h HexAddress, direction int) HexAddress {
	d := axialDirections[((direction%6)+6)%6]
	return HexAddress{Q: h.Q + d.Q, R: h.R + d.R}
}

// OppositeFace returns the face direction index that looks back toward
// the originating hex from the hex across a face addressed as
// direction. It is always (direction+3)%6.
func OppositeFace(direction int) int {
	return (((direction%6)+6)%6 + 3) % 6
}

// MirrorFace returns the Face Element that represents the very same
// physical hex-face crossing as e, but as seen from the neighboring hex
// on the other side of that face. e must be a KindFace Element.
//
// This is a pure function of (Hex, Index): no Map lookup is needed,
// because hex-face adjacency is a geometric fact of the axial grid, not
// board content. conflict.FacePair(e, MirrorFace(e)) is therefore always
// the canonical conflict item for a crossing, regardless of which hex's
// perspective discovered it first.
func MirrorFace(e Element) Element {
	dir := e.Index % 6
	neighbor := NeighborHex(e.Hex, dir)
	return Element{Kind: KindFace, Hex: neighbor, Index: OppositeFace(dir)}
}
