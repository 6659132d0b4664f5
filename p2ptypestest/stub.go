package p2ptypestest

import (
	"encoding/binary"
	"errors"

	"github.com/blockberries/p2ptypes"
	"github.com/blockberries/p2ptypes/wire"
)

// Compile-time checks.
var (
	_ p2ptypes.Encoder[wire.Hash] = StubFragment(0)
	_ p2ptypes.Encoder[wire.Hash] = FailingEncoder{}
)

// StubFragment is a minimal wire fragment: a uint64 carried big-endian
// in a wire.Hash. It exists to exercise generic codec code with
// something other than the production types.
type StubFragment uint64

func (s StubFragment) ToWire() (wire.Hash, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(s))
	return wire.Hash{Elements: b}, nil
}

// ErrStubLength is returned by DecodeStubFragment for input
// that is not exactly 8 bytes.
var ErrStubLength = errors.New("p2ptypestest: stub fragment must be 8 bytes")

// DecodeStubFragment decodes a StubFragment from its wire.Hash.
func DecodeStubFragment(w wire.Hash) (StubFragment, error) {
	if len(w.Elements) != 8 {
		return 0, ErrStubLength
	}
	return StubFragment(binary.BigEndian.Uint64(w.Elements)), nil
}

// FailingEncoder is an Encoder whose ToWire always returns Err.
// A nil Err yields a generic error.
type FailingEncoder struct {
	Err error
}

func (f FailingEncoder) ToWire() (wire.Hash, error) {
	if f.Err == nil {
		return wire.Hash{}, errors.New("p2ptypestest: encoding failed")
	}
	return wire.Hash{}, f.Err
}
