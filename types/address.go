package types

import (
	"fmt"

	"github.com/blockberries/p2ptypes"
	"github.com/blockberries/p2ptypes/wire"
)

var _ p2ptypes.Encoder[wire.Address] = Address{}

// Address is the identity of a validator node.
type Address felt

// ParseAddress parses a hex address, with or without 0x prefix.
func ParseAddress(s string) (Address, error) {
	f, err := parseFelt(s)
	if err != nil {
		return Address{}, fmt.Errorf("p2ptypes: parse address: %w", err)
	}
	return Address(f), nil
}

func (a Address) String() string { return felt(a).String() }

// Wire returns the wire form of a. It never fails.
func (a Address) Wire() wire.Address {
	b := make([]byte, FeltSize)
	copy(b, a[:])
	return wire.Address{Elements: b}
}

// ToWire is Wire with the error p2ptypes.Encoder requires; it is always nil.
func (a Address) ToWire() (wire.Address, error) {
	return a.Wire(), nil
}

// AddressFromWire decodes an address, which must be exactly 32 bytes.
func AddressFromWire(w wire.Address) (Address, error) {
	if len(w.Elements) != FeltSize {
		return Address{}, p2ptypes.NewInvalidLengthError("Address", FeltSize, len(w.Elements))
	}
	var a Address
	copy(a[:], w.Elements)
	return a, nil
}
