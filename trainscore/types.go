// Package trainscore defines TrainType, the sealed Bonus variants, and
// the route scorer that computes the revenue of a (train, path) pair —
// including exhaustive skip-stop subset optimization for express trains.
//
// Bonus is a closed, tagged variant dispatched by a type switch over an
// unexported sealed interface rather than an open class hierarchy, so
// the scorer's dispatch is exhaustive by construction.
package trainscore

import "github.com/railcore/hexroute/boardmap"

// TrainType is an immutable value describing one kind of train: its
// display Name (also its type-equality key for permute.TypeSequences),
// its Capacity (maximum stops, or maximum claimed centers for a
// skip-capable train), and whether it is skip-capable (an "express"
// train that may pass some visited centers without stopping).
type TrainType struct {
	Name        string
	Capacity    int
	SkipCapable bool
}

// TrainPredicate reports whether t matches some caller-defined
// condition; used by VisitWithTrain to restrict a bonus to specific
// train types without growing the Bonus variant set.
type TrainPredicate func(t TrainType) bool

// Bonus is a sealed interface implemented only by the four variants
// below. A type switch over Bonus is exhaustive in practice because no
// other package can add a variant (the marker method is unexported).
type Bonus interface {
	isBonus()
}

// LocationBonus adds Delta to the route's revenue if Location is
// stopped at.
type LocationBonus struct {
	Location boardmap.Element
	Delta    uint32
}

func (LocationBonus) isBonus() {}

// ConnectionBonus adds Delta to the route's revenue only if both A and B
// are stopped at.
type ConnectionBonus struct {
	A, B  boardmap.Element
	Delta uint32
}

func (ConnectionBonus) isBonus() {}

// VisitWithTrain adds Delta if Location is stopped at and the assigned
// train satisfies Predicate.
type VisitWithTrain struct {
	Location  boardmap.Element
	Delta     uint32
	Predicate TrainPredicate
}

func (VisitWithTrain) isBonus() {}

// DoubleRevenueIfConnected doubles Target's base revenue if Target is
// stopped at and at least one location in AnyOf is also stopped at.
type DoubleRevenueIfConnected struct {
	Target boardmap.Element
	AnyOf  []boardmap.Element
}

func (DoubleRevenueIfConnected) isBonus() {}
