package types_test

import (
	"strings"
	"testing"

	"github.com/blockberries/p2ptypes"
	"github.com/blockberries/p2ptypes/p2ptypestest"
	"github.com/blockberries/p2ptypes/types"
	"github.com/blockberries/p2ptypes/wire"
	"github.com/stretchr/testify/require"
)

func TestParseBlockHash(t *testing.T) {
	h, err := types.ParseBlockHash("0x1")
	require.NoError(t, err)

	var want types.BlockHash
	want[31] = 1
	require.Equal(t, want, h)
	require.Equal(t, "0x"+strings.Repeat("0", 63)+"1", h.String())

	full := p2ptypestest.MakeBlockHash(5)
	again, err := types.ParseBlockHash(full.String())
	require.NoError(t, err)
	require.Equal(t, full, again)

	// Bare hex, odd length.
	h, err = types.ParseBlockHash("abc")
	require.NoError(t, err)
	require.Equal(t, byte(0x0a), h[30])
	require.Equal(t, byte(0xbc), h[31])
}

func TestParseBlockHash_Invalid(t *testing.T) {
	for _, s := range []string{"", "0x", "0xzz", strings.Repeat("f", 65)} {
		_, err := types.ParseBlockHash(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestParseAddress(t *testing.T) {
	a := p2ptypestest.MakeAddress(3)
	got, err := types.ParseAddress(a.String())
	require.NoError(t, err)
	require.Equal(t, a, got)

	_, err = types.ParseAddress("not hex")
	require.Error(t, err)
}

func TestBlockHashFromWire_InvalidLength(t *testing.T) {
	_, err := types.BlockHashFromWire(wire.Hash{Elements: []byte{1, 2, 3}})
	l, ok := p2ptypes.IsInvalidLength(err)
	require.True(t, ok)
	require.Equal(t, "Hash", l.Type)
	require.Equal(t, 3, l.Got)

	_, err = types.BlockHashFromWire(wire.Hash{})
	_, ok = p2ptypes.IsInvalidLength(err)
	require.True(t, ok)
}

func TestAddressFromWire_InvalidLength(t *testing.T) {
	_, err := types.AddressFromWire(wire.Address{Elements: make([]byte, 33)})
	l, ok := p2ptypes.IsInvalidLength(err)
	require.True(t, ok)
	require.Equal(t, "Address", l.Type)
	require.Equal(t, 33, l.Got)
}

func TestFelt_WireMatchesToWire(t *testing.T) {
	h := p2ptypestest.MakeBlockHash(7)
	hw, err := h.ToWire()
	require.NoError(t, err)
	require.Equal(t, h.Wire(), hw)

	a := p2ptypestest.MakeAddress(7)
	aw, err := a.ToWire()
	require.NoError(t, err)
	require.Equal(t, a.Wire(), aw)
}

func TestBlockHash_ToWireCopies(t *testing.T) {
	h := p2ptypestest.MakeBlockHash(1)
	w, err := h.ToWire()
	require.NoError(t, err)

	w.Elements[0] ^= 0xff
	require.Equal(t, p2ptypestest.MakeBlockHash(1), h)
}
