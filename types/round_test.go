package types_test

import (
	"math"
	"testing"

	"github.com/blockberries/p2ptypes/types"
	"github.com/stretchr/testify/require"
)

func TestRound_Nil(t *testing.T) {
	r := types.NilRound
	require.True(t, r.IsNil())
	require.False(t, r.IsDefined())

	_, ok := r.AsUint32()
	require.False(t, ok)
	require.Nil(t, r.OptionalUint32())
	require.Equal(t, int64(-1), r.Int64())
	require.Equal(t, "nil", r.String())
	require.Panics(t, func() { r.MustUint32() })
}

func TestRound_OtherNegativesAreNotNil(t *testing.T) {
	for _, r := range []types.Round{-2, -100, math.MinInt64} {
		require.False(t, r.IsNil(), "round %d", int64(r))
		require.False(t, r.IsDefined(), "round %d", int64(r))

		_, ok := r.AsUint32()
		require.False(t, ok)
		require.Nil(t, r.OptionalUint32())
		require.Equal(t, int64(r), r.Int64())
		require.NotEqual(t, "nil", r.String())
		require.Panics(t, func() { r.MustUint32() })
	}
}

func TestRound_Concrete(t *testing.T) {
	for _, v := range []uint32{0, 1, 3, math.MaxUint32} {
		r := types.NewRound(v)
		require.True(t, r.IsDefined())

		got, ok := r.AsUint32()
		require.True(t, ok)
		require.Equal(t, v, got)
		require.Equal(t, v, r.MustUint32())

		opt := r.OptionalUint32()
		require.NotNil(t, opt)
		require.Equal(t, v, *opt)
		require.Equal(t, int64(v), r.Int64())
	}
	require.Equal(t, "3", types.NewRound(3).String())
}

func TestRound_Overflow(t *testing.T) {
	r := types.Round(math.MaxUint32 + 1)
	require.False(t, r.IsNil())
	require.False(t, r.IsDefined())

	_, ok := r.AsUint32()
	require.False(t, ok)
	require.Nil(t, r.OptionalUint32())
}

func TestRoundFromOptional(t *testing.T) {
	require.Equal(t, types.NilRound, types.RoundFromOptional(nil))

	v := uint32(0)
	require.Equal(t, types.NewRound(0), types.RoundFromOptional(&v))

	v = 9
	require.Equal(t, types.NewRound(9), types.RoundFromOptional(&v))
}

func TestRound_Increment(t *testing.T) {
	require.Equal(t, types.NewRound(0), types.NilRound.Increment())
	require.Equal(t, types.NewRound(5), types.NewRound(4).Increment())
}
