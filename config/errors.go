// File: errors.go
// Role: sentinel errors for the config package, in the module's
// package-prefixed, errors.New style.
package config

import "errors"

var (
	// ErrReadFixture indicates the fixture file could not be read.
	ErrReadFixture = errors.New("config: could not read fixture file")
	// ErrParseFixture indicates the fixture's YAML could not be parsed.
	ErrParseFixture = errors.New("config: could not parse fixture YAML")
	// ErrInvalidFixture indicates the parsed fixture fails validation
	// (bad hex address, unknown bonus/tile kind, empty company, etc.).
	ErrInvalidFixture = errors.New("config: invalid fixture")
)
