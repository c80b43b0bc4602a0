package conflict_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/railcore/hexroute/boardmap"
	"github.com/railcore/hexroute/conflict"
)

func hex(q, r int) boardmap.HexAddress { return boardmap.HexAddress{Q: q, R: r} }

func faceElem(h boardmap.HexAddress, i int) boardmap.Element {
	return boardmap.Element{Kind: boardmap.KindFace, Hex: h, Index: i}
}

func cityElem(h boardmap.HexAddress, i int) boardmap.Element {
	return boardmap.Element{Kind: boardmap.KindCity, Hex: h, Index: i}
}

func TestFacePairCanonicalizesRegardlessOfDiscoveryOrder(t *testing.T) {
	u := faceElem(hex(0, 0), 2)
	v := faceElem(hex(1, 0), 5)

	a := conflict.FacePair(u, v)
	b := conflict.FacePair(v, u)

	require.Equal(t, a, b)
}

func TestSetDedupsAndSorts(t *testing.T) {
	i1 := conflict.Center(cityElem(hex(0, 0), 0))
	i2 := conflict.Center(cityElem(hex(0, 1), 0))
	s := conflict.NewSet(i2, i1, i1)

	require.Equal(t, 2, s.Len())
	items := s.Items()
	require.True(t, items[0].Compare(items[1]) < 0)
}

func TestIntersectsDetectsSharedItem(t *testing.T) {
	shared := conflict.Center(cityElem(hex(5, 5), 0))
	other1 := conflict.Center(cityElem(hex(0, 0), 0))
	other2 := conflict.Center(cityElem(hex(1, 1), 0))

	a := conflict.NewSet(shared, other1)
	b := conflict.NewSet(shared, other2)
	c := conflict.NewSet(other1, other2)

	require.True(t, a.Intersects(b))
	require.False(t, a.Intersects(c))
	require.False(t, b.Intersects(c))
}

func TestIntersectsExcludingExemptsOnlyTheGivenItem(t *testing.T) {
	anchor := conflict.Center(cityElem(hex(3, 3), 0))
	shared := conflict.Center(cityElem(hex(5, 5), 0))

	a := conflict.NewSet(anchor, conflict.Center(cityElem(hex(0, 0), 0)))
	b := conflict.NewSet(anchor, conflict.Center(cityElem(hex(1, 1), 0)))
	c := conflict.NewSet(anchor, shared)
	d := conflict.NewSet(anchor, shared, conflict.Center(cityElem(hex(2, 2), 0)))

	require.False(t, a.IntersectsExcluding(b, anchor), "anchor alone must not count as a conflict")
	require.True(t, a.Intersects(b), "plain Intersects still sees the anchor")
	require.True(t, c.IntersectsExcluding(d, anchor), "a second shared item must still conflict")
}

func TestUnionMergesDistinctSortedItems(t *testing.T) {
	a := conflict.NewSet(conflict.Center(cityElem(hex(0, 0), 0)))
	b := conflict.NewSet(conflict.Center(cityElem(hex(1, 0), 0)))

	u := a.Union(b)
	require.Equal(t, 2, u.Len())
	require.False(t, u.Intersects(conflict.NewSet(conflict.Center(cityElem(hex(9, 9), 0)))))
}

func TestUnionOfOverlappingSetsDeduplicates(t *testing.T) {
	shared := conflict.Center(cityElem(hex(2, 2), 0))
	a := conflict.NewSet(shared, conflict.Center(cityElem(hex(0, 0), 0)))
	b := conflict.NewSet(shared, conflict.Center(cityElem(hex(1, 0), 0)))

	u := a.Union(b)
	require.Equal(t, 3, u.Len())
}
