// File: load.go
// Role: LoadFixture reads and validates a RunFixture from a YAML file;
// Build converts a validated RunFixture into the concrete domain values
// optimizer.Optimize consumes: os.ReadFile, yaml.Unmarshal, validate,
// wrap errors with fmt.Errorf("%w: ...", sentinel).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/railcore/hexroute/boardfixture"
	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/pathbuilder"
	"github.com/railcore/hexroute/trainscore"
)

// LoadFixture reads path, parses it as YAML into a RunFixture, and
// validates it.
func LoadFixture(path string) (*RunFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFixture, path, err)
	}
	return LoadFixtureBytes(data)
}

// LoadFixtureBytes parses data as YAML into a RunFixture and validates
// it, without touching the filesystem (used by tests).
func LoadFixtureBytes(data []byte) (*RunFixture, error) {
	var f RunFixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFixture, err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(f *RunFixture) error {
	if f.Company == "" {
		return fmt.Errorf("%w: company must not be empty", ErrInvalidFixture)
	}
	if len(f.Board) == 0 {
		return fmt.Errorf("%w: board must declare at least one hex", ErrInvalidFixture)
	}
	if len(f.Trains) == 0 {
		return fmt.Errorf("%w: at least one train must be declared", ErrInvalidFixture)
	}
	for _, h := range f.Board {
		if _, err := parseHex(h.Addr); err != nil {
			return fmt.Errorf("%w: board hex %q: %v", ErrInvalidFixture, h.Addr, err)
		}
	}
	return nil
}

// Build converts a validated RunFixture into a ready-to-use board (with
// the company's tokens placed) and the Criteria, TrainTypes, and Bonuses
// Optimize needs.
func Build(f *RunFixture) (*boardfixture.Board, pathbuilder.Criteria, []trainscore.TrainType, []trainscore.Bonus, error) {
	specs := make([]boardfixture.HexSpec, len(f.Board))
	for i, h := range f.Board {
		addr, err := parseHex(h.Addr)
		if err != nil {
			return nil, pathbuilder.Criteria{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
		}
		kind, err := parseTileKind(h.Kind)
		if err != nil {
			return nil, pathbuilder.Criteria{}, nil, nil, err
		}
		links := make([]boardfixture.FaceLink, len(h.Links))
		for j, l := range h.Links {
			links[j] = boardfixture.FaceLink{A: l[0], B: l[1]}
		}
		revenue := make(map[string]uint32, len(h.Revenue))
		for k, v := range h.Revenue {
			revenue[k] = uint32(v)
		}
		specs[i] = boardfixture.HexSpec{
			Addr:    addr,
			Kind:    kind,
			Faces:   h.Faces,
			Links:   links,
			Spaces:  h.Spaces,
			Revenue: revenue,
		}
	}

	board, err := boardfixture.NewBoard(specs)
	if err != nil {
		return nil, pathbuilder.Criteria{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	for _, t := range f.Tokens {
		addr, err := parseHex(t.Hex)
		if err != nil {
			return nil, pathbuilder.Criteria{}, nil, nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
		}
		if err := board.PlaceToken(f.Company, addr, t.Space); err != nil {
			return nil, pathbuilder.Criteria{}, nil, nil, fmt.Errorf("%w: placing token: %v", ErrInvalidFixture, err)
		}
	}

	rule, err := parseConflictRule(f.Criteria.Rule)
	if err != nil {
		return nil, pathbuilder.Criteria{}, nil, nil, err
	}
	criteria, err := pathbuilder.NewCriteria(f.Criteria.MaxLength, f.Criteria.MaxStops, rule, f.Criteria.AllowSkip)
	if err != nil {
		return nil, pathbuilder.Criteria{}, nil, nil, err
	}

	trains := make([]trainscore.TrainType, len(f.Trains))
	for i, t := range f.Trains {
		trains[i] = trainscore.TrainType{Name: t.Name, Capacity: t.Capacity, SkipCapable: t.SkipCapable}
	}

	bonuses := make([]trainscore.Bonus, 0, len(f.Bonuses))
	for _, b := range f.Bonuses {
		bonus, err := buildBonus(b)
		if err != nil {
			return nil, pathbuilder.Criteria{}, nil, nil, err
		}
		bonuses = append(bonuses, bonus)
	}

	return board, criteria, trains, bonuses, nil
}

func buildBonus(b BonusFixture) (trainscore.Bonus, error) {
	switch strings.ToLower(b.Kind) {
	case "location":
		loc, err := locationElement(b.Location)
		if err != nil {
			return nil, err
		}
		return trainscore.LocationBonus{Location: loc, Delta: b.Delta}, nil
	case "connection":
		a, err := locationElement(b.A)
		if err != nil {
			return nil, err
		}
		bb, err := locationElement(b.B)
		if err != nil {
			return nil, err
		}
		return trainscore.ConnectionBonus{A: a, B: bb, Delta: b.Delta}, nil
	case "visitwithtrain":
		loc, err := locationElement(b.Location)
		if err != nil {
			return nil, err
		}
		name := b.TrainName
		return trainscore.VisitWithTrain{
			Location:  loc,
			Delta:     b.Delta,
			Predicate: func(t trainscore.TrainType) bool { return t.Name == name },
		}, nil
	case "doubleifconnected":
		target, err := locationElement(b.Target)
		if err != nil {
			return nil, err
		}
		anyOf := make([]boardmap.Element, len(b.AnyOf))
		for i, l := range b.AnyOf {
			e, err := locationElement(l)
			if err != nil {
				return nil, err
			}
			anyOf[i] = e
		}
		return trainscore.DoubleRevenueIfConnected{Target: target, AnyOf: anyOf}, nil
	default:
		return nil, fmt.Errorf("%w: unknown bonus kind %q", ErrInvalidFixture, b.Kind)
	}
}

func locationElement(l LocationFixture) (boardmap.Element, error) {
	addr, err := parseHex(l.Hex)
	if err != nil {
		return boardmap.Element{}, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	kind := boardmap.KindCity
	switch strings.ToLower(l.Kind) {
	case "", "city":
		kind = boardmap.KindCity
	case "dit":
		kind = boardmap.KindDit
	default:
		return boardmap.Element{}, fmt.Errorf("%w: unknown location kind %q", ErrInvalidFixture, l.Kind)
	}
	return boardmap.Element{Kind: kind, Hex: addr, Index: l.Idx}, nil
}

func parseHex(s string) (boardmap.HexAddress, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return boardmap.HexAddress{}, fmt.Errorf("hex address %q must be \"Q,R\"", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return boardmap.HexAddress{}, fmt.Errorf("hex address %q: bad Q: %v", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return boardmap.HexAddress{}, fmt.Errorf("hex address %q: bad R: %v", s, err)
	}
	return boardmap.HexAddress{Q: q, R: r}, nil
}

func parseTileKind(s string) (boardfixture.TileKind, error) {
	switch strings.ToLower(s) {
	case "city":
		return boardfixture.TileCity, nil
	case "dit":
		return boardfixture.TileDit, nil
	case "plain":
		return boardfixture.TilePlain, nil
	case "terminal":
		return boardfixture.TileTerminal, nil
	default:
		return 0, fmt.Errorf("%w: unknown tile kind %q", ErrInvalidFixture, s)
	}
}

func parseConflictRule(s string) (pathbuilder.ConflictRule, error) {
	switch strings.ToLower(s) {
	case "", "facesandcenters":
		return pathbuilder.FacesAndCenters, nil
	case "facesonly":
		return pathbuilder.FacesOnly, nil
	default:
		return 0, fmt.Errorf("%w: unknown conflict rule %q", ErrInvalidFixture, s)
	}
}
