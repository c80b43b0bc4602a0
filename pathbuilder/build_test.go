package pathbuilder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/railcore/hexroute/boardfixture"
	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/conflict"
	"github.com/railcore/hexroute/pathbuilder"
)

// lineBoard builds a straight line of n cities, each worth value[i] in the
// empty-string phase, hex i linked to hex i+1 via faces 3 (west) / 0 (east).
func lineBoard(t *testing.T, values []uint32) (*boardfixture.Board, boardmap.HexAddress) {
	t.Helper()
	specs := make([]boardfixture.HexSpec, len(values))
	for i, v := range values {
		faces := []int{3, 0}
		if i == 0 {
			faces = []int{0}
		}
		if i == len(values)-1 {
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
	require.NoError(t, err)
	return board, boardmap.HexAddress{Q: 0, R: 0}
}

func TestBuildPathsRejectsNilMap(t *testing.T) {
	criteria, err := pathbuilder.NewCriteria(5, 2, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	_, err = pathbuilder.BuildPaths(nil, boardmap.TokenSpace{}, nil, criteria)
	require.ErrorIs(t, err, pathbuilder.ErrGraphNil)
}

func TestBuildPathsRejectsUnknownStart(t *testing.T) {
	board, _ := lineBoard(t, []uint32{10, 20})
	criteria, err := pathbuilder.NewCriteria(5, 2, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	_, err = pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: boardmap.HexAddress{Q: 99, R: 99}}, nil, criteria)
	require.ErrorIs(t, err, pathbuilder.ErrStartVertexNotFound)
}

func TestBuildPathsIncludesSingleElementSeedPath(t *testing.T) {
	board, start := lineBoard(t, []uint32{10, 20})
	criteria, err := pathbuilder.NewCriteria(5, 2, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	paths, err := pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: start, SpaceIndex: 0}, nil, criteria)
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	seed := paths[0]
	require.Len(t, seed.Visits, 1)
	require.Equal(t, 0, seed.Length)
	require.Equal(t, 1, seed.StopCount)
}

func TestBuildPathsReachesFarEndOfLine(t *testing.T) {
	board, start := lineBoard(t, []uint32{10, 20, 30})
	criteria, err := pathbuilder.NewCriteria(10, 3, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	paths, err := pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: start, SpaceIndex: 0}, nil, criteria)
	require.NoError(t, err)

	farEnd := boardmap.Element{Kind: boardmap.KindCity, Hex: boardmap.HexAddress{Q: 2, R: 0}, Index: 0}
	found := false
	for _, p := range paths {
		_, last := p.EndpointElements()
		if last == farEnd {
			found = true
			require.Equal(t, 3, p.StopCount)
		}
	}
	require.True(t, found, "expected some path to reach the far end city")
}

func TestBuildPathsRecordsAnchorCenterAsConflict(t *testing.T) {
	board, start := lineBoard(t, []uint32{10, 20})
	criteria, err := pathbuilder.NewCriteria(5, 2, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	paths, err := pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: start, SpaceIndex: 0}, nil, criteria)
	require.NoError(t, err)

	anchorCity := boardmap.Element{Kind: boardmap.KindCity, Hex: start, Index: 0}
	anchorSet := conflict.NewSet(conflict.Center(anchorCity))
	for _, p := range paths {
		require.True(t, p.Conflicts.Intersects(anchorSet),
			"every path anchored at %v must carry the anchor's Center item", start)
	}
}

func TestBuildPathsHonorsMaxStopsWhenSkipDisallowed(t *testing.T) {
	board, start := lineBoard(t, []uint32{10, 20, 30, 40})
	criteria, err := pathbuilder.NewCriteria(10, 2, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	paths, err := pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: start, SpaceIndex: 0}, nil, criteria)
	require.NoError(t, err)

	for _, p := range paths {
		require.LessOrEqual(t, p.StopCount, 2)
	}
}

func TestBuildPathsAllowsMoreVisitedCentersThanMaxStopsWhenSkipAllowed(t *testing.T) {
	board, start := lineBoard(t, []uint32{10, 20, 30, 40})
	criteria, err := pathbuilder.NewCriteria(10, 2, pathbuilder.FacesAndCenters, true)
	require.NoError(t, err)

	paths, err := pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: start, SpaceIndex: 0}, nil, criteria)
	require.NoError(t, err)

	maxStops := 0
	for _, p := range paths {
		if p.StopCount > maxStops {
			maxStops = p.StopCount
		}
	}
	require.Greater(t, maxStops, 2, "AllowSkip should let the walk visit more centers than MaxStops bounds")
}

func TestBuildPathsRespectsContextCancellation(t *testing.T) {
	board, start := lineBoard(t, []uint32{10, 20, 30})
	criteria, err := pathbuilder.NewCriteria(10, 3, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: start, SpaceIndex: 0}, nil, criteria, pathbuilder.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestPathCloneIsIndependent(t *testing.T) {
	board, start := lineBoard(t, []uint32{10, 20})
	criteria, err := pathbuilder.NewCriteria(5, 2, pathbuilder.FacesAndCenters, false)
	require.NoError(t, err)

	paths, err := pathbuilder.BuildPaths(board, boardmap.TokenSpace{Hex: start, SpaceIndex: 0}, nil, criteria)
	require.NoError(t, err)

	original := paths[0]
	clone := original.Clone()
	clone.Visits = append(clone.Visits, boardmap.Visit{})

	require.NotEqual(t, len(original.Visits), len(clone.Visits))
}
