package pathbuilder_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/railcore/hexroute/boardfixture"
	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/pathbuilder"
)

// randomLineBoard builds a straight line of n cities with random revenue
// values, each holding exactly one token space.
func randomLineBoard(t *rapid.T, n int) *boardfixture.Board {
	values := rapid.SliceOfN(rapid.Uint32Range(1, 100), n, n).Draw(t, "values")
	specs := make([]boardfixture.HexSpec, n)
	for i, v := range values {
		faces := []int{3, 0}
		if i == 0 {
			faces = []int{0}
		}
		if i == n-1 {
			faces = []int{3}
		}
		specs[i] = boardfixture.HexSpec{
			Addr:    boardmap.HexAddress{Q: i, R: 0},
			Kind:    boardfixture.TileCity,
			Faces:   faces,
			Spaces:  1,
			Revenue: map[string]uint32{"": v},
		}
	}
	board, err := boardfixture.NewBoard(specs)
	if err != nil {
		t.Fatalf("building board: %v", err)
	}
	return board
}

// TestBuildPathsNeverRevisitsAnElement is a property test for
// revisit-freeness: for any randomly sized line board and any
// randomly bounded Criteria, every enumerated Path visits each Element at
// most once.
func TestBuildPathsNeverRevisitsAnElement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(t, "n")
		board := randomLineBoard(t, n)

		maxLength := rapid.IntRange(1, 20).Draw(t, "maxLength")
		maxStops := rapid.IntRange(1, n).Draw(t, "maxStops")
		allowSkip := rapid.Bool().Draw(t, "allowSkip")

		criteria, err := pathbuilder.NewCriteria(maxLength, maxStops, pathbuilder.FacesAndCenters, allowSkip)
		if err != nil {
			t.Fatalf("criteria: %v", err)
		}

		start := boardmap.TokenSpace{Hex: boardmap.HexAddress{Q: 0, R: 0}, SpaceIndex: 0}
		paths, err := pathbuilder.BuildPaths(board, start, []boardmap.TokenSpace{start}, criteria)
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		for _, p := range paths {
			seen := make(map[boardmap.Element]bool, len(p.Visits))
			for _, v := range p.Visits {
				if seen[v.Element] {
					t.Fatalf("path revisits %v", v.Element)
				}
				seen[v.Element] = true
			}
		}
	})
}

// TestBuildPathsHonorsAnchorMinimality is a property test for anchor
// minimality: BuildPaths started at a given anchor never enters a
// city holding another owned token whose TokenSpace compares less than the
// anchor — that composite is only ever discovered from the lower anchor.
func TestBuildPathsHonorsAnchorMinimality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(3, 6).Draw(t, "n")
		board := randomLineBoard(t, n)

		anchorIdx := rapid.IntRange(0, n-1).Draw(t, "anchorIdx")
		otherIdx := rapid.IntRange(0, n-1).Draw(t, "otherIdx")
		if otherIdx == anchorIdx {
			return
		}

		anchor := boardmap.TokenSpace{Hex: boardmap.HexAddress{Q: anchorIdx, R: 0}, SpaceIndex: 0}
		other := boardmap.TokenSpace{Hex: boardmap.HexAddress{Q: otherIdx, R: 0}, SpaceIndex: 0}

		criteria, err := pathbuilder.NewCriteria(20, n, pathbuilder.FacesAndCenters, false)
		if err != nil {
			t.Fatalf("criteria: %v", err)
		}

		paths, err := pathbuilder.BuildPaths(board, anchor, []boardmap.TokenSpace{anchor, other}, criteria)
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		otherCity := boardmap.Element{Kind: boardmap.KindCity, Hex: other.Hex, Index: 0}
		if other.Compare(anchor) < 0 {
			for _, p := range paths {
				for _, v := range p.Visits {
					if v.Element == otherCity {
						t.Fatalf("anchor %v entered lower-anchored city %v owned by %v", anchor, otherCity, other)
					}
				}
			}
		}
	})
}
