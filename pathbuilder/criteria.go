// File: criteria.go
// Role: Criteria — the search bounds a path build is run under — and its
// construction-time validation.
//
// Criteria is resolved once into an immutable value, and invalid
// combinations are rejected at construction rather than discovered
// mid-traversal.
package pathbuilder

import (
	"errors"
	"fmt"
)

// ConflictRule selects which Element kinds are recorded as conflict
// items for a path (conflict.Set construction happens downstream, in
// pathbuilder/pathstore, but the rule is chosen here because it affects
// which paths are legal to build in the first place).
type ConflictRule uint8

const (
	// FacesOnly records only hex-face crossings as conflicts.
	FacesOnly ConflictRule = iota
	// FacesAndCenters records hex-face crossings and visited revenue
	// centers (cities/dits) as conflicts — the default rule.
	FacesAndCenters
	// TrackOnly would record only internal track segments as conflicts.
	// It is invalid: a path's single invariant is that no Element is
	// ever revisited, and track segments are already implied by the
	// face-pairs they connect — recording
	// conflicts on tracks instead of faces would permit two paths that
	// cross but never share a face or center to incorrectly "conflict",
	// or worse, silently fail to forbid an actual revisit. NewCriteria
	// rejects it with ErrInvalidCriteria.
	TrackOnly
)

// Sentinel errors for pathbuilder.
var (
	// ErrInvalidCriteria is returned by NewCriteria when the requested
	// configuration cannot be honored.
	ErrInvalidCriteria = errors.New("pathbuilder: invalid criteria")

	// ErrGraphNil is returned when BuildPaths is called with a nil Map.
	ErrGraphNil = errors.New("pathbuilder: map is nil")

	// ErrStartVertexNotFound is returned when the start TokenSpace has
	// no corresponding anchor Element on the map.
	ErrStartVertexNotFound = errors.New("pathbuilder: start token space not found")
)

// Criteria bounds a single path-build run: the maximum cumulative track
// length, the maximum number of stopped revenue centers, the conflict
// rule in effect, and whether skip-stop (express) traversal is allowed.
//
// Criteria is immutable once constructed by NewCriteria; pathbuilder,
// pathstore, and optimizer all treat it as a read-only value shared
// across goroutines during the combinatorial phase.
type Criteria struct {
	MaxLength int
	MaxStops  int
	Rule      ConflictRule
	AllowSkip bool
}

// NewCriteria validates and constructs a Criteria. It fails fast with
// ErrInvalidCriteria when:
//   - rule is TrackOnly (forbidden, see ConflictRule docs),
//   - maxStops <= 0,
//   - maxLength <= 0.
func NewCriteria(maxLength, maxStops int, rule ConflictRule, allowSkip bool) (Criteria, error) {
	if rule == TrackOnly {
		return Criteria{}, fmt.Errorf("%w: conflict rule TrackOnly is not permitted", ErrInvalidCriteria)
	}
	if maxStops <= 0 {
		return Criteria{}, fmt.Errorf("%w: max stops must be positive, got %d", ErrInvalidCriteria, maxStops)
	}
	if maxLength <= 0 {
		return Criteria{}, fmt.Errorf("%w: max length must be positive, got %d", ErrInvalidCriteria, maxLength)
	}
	return Criteria{MaxLength: maxLength, MaxStops: maxStops, Rule: rule, AllowSkip: allowSkip}, nil
}
