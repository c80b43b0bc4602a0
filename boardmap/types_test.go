package boardmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/railcore/hexroute/boardmap"
)

func TestHexAddressCompare(t *testing.T) {
	a := boardmap.HexAddress{Q: 0, R: 0}
	b := boardmap.HexAddress{Q: 0, R: 1}
	c := boardmap.HexAddress{Q: 1, R: 0}

	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(a))
	require.Negative(t, a.Compare(c))
	require.Negative(t, b.Compare(c))
}

func TestElementCompareOrdersByKindThenHexThenIndex(t *testing.T) {
	h0 := boardmap.HexAddress{Q: 0, R: 0}
	h1 := boardmap.HexAddress{Q: 1, R: 0}

	face := boardmap.Element{Kind: boardmap.KindFace, Hex: h0, Index: 0}
	track := boardmap.Element{Kind: boardmap.KindTrack, Hex: h0, Index: 0}
	cityLowHex := boardmap.Element{Kind: boardmap.KindCity, Hex: h0, Index: 0}
	cityHighHex := boardmap.Element{Kind: boardmap.KindCity, Hex: h1, Index: 0}
	cityHighIndex := boardmap.Element{Kind: boardmap.KindCity, Hex: h0, Index: 1}

	require.Negative(t, face.Compare(track))
	require.Negative(t, track.Compare(cityLowHex))
	require.Negative(t, cityLowHex.Compare(cityHighHex))
	require.Negative(t, cityLowHex.Compare(cityHighIndex))
	require.Zero(t, face.Compare(face))
}

func TestElementIsRevenueCenter(t *testing.T) {
	h := boardmap.HexAddress{}
	require.True(t, boardmap.Element{Kind: boardmap.KindCity, Hex: h}.IsRevenueCenter())
	require.True(t, boardmap.Element{Kind: boardmap.KindDit, Hex: h}.IsRevenueCenter())
	require.False(t, boardmap.Element{Kind: boardmap.KindFace, Hex: h}.IsRevenueCenter())
	require.False(t, boardmap.Element{Kind: boardmap.KindTrack, Hex: h}.IsRevenueCenter())
}

func TestTokenSpaceCompareIsTotalOrder(t *testing.T) {
	t1 := boardmap.TokenSpace{Hex: boardmap.HexAddress{Q: 0, R: 0}, SpaceIndex: 0}
	t2 := boardmap.TokenSpace{Hex: boardmap.HexAddress{Q: 0, R: 0}, SpaceIndex: 1}
	t3 := boardmap.TokenSpace{Hex: boardmap.HexAddress{Q: 0, R: 1}, SpaceIndex: 0}

	require.Negative(t, t1.Compare(t2))
	require.Negative(t, t2.Compare(t3))
	require.Negative(t, t1.Compare(t3))
	require.Zero(t, t1.Compare(t1))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "face", boardmap.KindFace.String())
	require.Equal(t, "track", boardmap.KindTrack.String())
	require.Equal(t, "dit", boardmap.KindDit.String())
	require.Equal(t, "city", boardmap.KindCity.String())
	require.Equal(t, "unknown", boardmap.Kind(255).String())
}
