// Package config loads the YAML fixtures that drive a single Optimize
// run — board layout, token placements, Criteria, TrainTypes, and
// Bonuses — outside the route-optimization core itself. This package
// only loads values; it never invents new rule kinds.
//
// The shape is deliberately plain: a flat YAML-tagged struct,
// gopkg.in/yaml.v3 unmarshal, then a validate pass returning a wrapped
// sentinel error.
package config

// HexFixture describes one hex to add to the board, in the YAML schema.
// Addr and Links use the compact "Q,R" / "[a,b]" textual forms so
// fixture files stay readable.
type HexFixture struct {
	Addr    string         `yaml:"addr"`
	Kind    string         `yaml:"kind"` // "city", "dit", "plain", "terminal"
	Faces   []int          `yaml:"faces,omitempty"`
	Links   [][2]int       `yaml:"links,omitempty"`
	Spaces  int            `yaml:"spaces,omitempty"`
	Revenue map[string]int `yaml:"revenue,omitempty"`
}

// TokenFixture places one company token at a hex's space.
type TokenFixture struct {
	Hex   string `yaml:"hex"`
	Space int    `yaml:"space"`
}

// CriteriaFixture is the YAML form of pathbuilder.Criteria.
type CriteriaFixture struct {
	MaxLength int    `yaml:"maxLength"`
	MaxStops  int    `yaml:"maxStops"`
	Rule      string `yaml:"rule"` // "facesOnly" or "facesAndCenters"
	AllowSkip bool   `yaml:"allowSkip"`
}

// TrainFixture is the YAML form of trainscore.TrainType.
type TrainFixture struct {
	Name        string `yaml:"name"`
	Capacity    int    `yaml:"capacity"`
	SkipCapable bool   `yaml:"skipCapable"`
}

// LocationFixture addresses a single board Element by hex and index.
type LocationFixture struct {
	Hex  string `yaml:"hex"`
	Kind string `yaml:"kind"` // "city" or "dit"
	Idx  int    `yaml:"index"`
}

// BonusFixture is the tagged-union YAML form of trainscore.Bonus. Only
// the fields relevant to Kind are populated by the fixture author.
type BonusFixture struct {
	Kind      string            `yaml:"kind"` // location, connection, visitWithTrain, doubleIfConnected
	Location  LocationFixture   `yaml:"location,omitempty"`
	A         LocationFixture   `yaml:"a,omitempty"`
	B         LocationFixture   `yaml:"b,omitempty"`
	Target    LocationFixture   `yaml:"target,omitempty"`
	AnyOf     []LocationFixture `yaml:"anyOf,omitempty"`
	Delta     uint32            `yaml:"delta,omitempty"`
	TrainName string            `yaml:"trainName,omitempty"`
}

// RunFixture is the full contents of a single run's YAML fixture file:
// the board layout, a company's token placements, search Criteria, the
// company's owned trains, and the active bonuses.
type RunFixture struct {
	Board    []HexFixture    `yaml:"board"`
	Company  string          `yaml:"company"`
	Tokens   []TokenFixture  `yaml:"tokens"`
	Criteria CriteriaFixture `yaml:"criteria"`
	Trains   []TrainFixture  `yaml:"trains"`
	Bonuses  []BonusFixture  `yaml:"bonuses,omitempty"`
}
