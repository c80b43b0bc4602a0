// File: errors.go
// Role: sentinel errors for the boardfixture package, in the module's
// package-prefixed, errors.New style.
package boardfixture

import "errors"

var (
	// ErrDuplicateHex indicates two HexSpecs share the same HexAddress.
	ErrDuplicateHex = errors.New("boardfixture: duplicate hex address")
	// ErrNoSpaces indicates a city HexSpec declares zero token spaces.
	ErrNoSpaces = errors.New("boardfixture: city hex must declare at least one token space")
	// ErrUnknownHex indicates PlaceToken targeted a hex address that was
	// never added to the Board.
	ErrUnknownHex = errors.New("boardfixture: unknown hex address")
	// ErrSpaceOccupied indicates PlaceToken targeted an already-occupied
	// TokenSpace.
	ErrSpaceOccupied = errors.New("boardfixture: token space already occupied")
	// ErrSpaceOutOfRange indicates PlaceToken targeted a SpaceIndex beyond
	// the hex's declared Spaces count.
	ErrSpaceOutOfRange = errors.New("boardfixture: space index out of range")
	// ErrNotACity indicates PlaceToken targeted a hex that is not a city
	// (no token-eligible revenue center).
	ErrNotACity = errors.New("boardfixture: hex is not a city")
)
