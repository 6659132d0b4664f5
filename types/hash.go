package types

import (
	"fmt"

	"github.com/blockberries/p2ptypes"
	"github.com/blockberries/p2ptypes/wire"
)

var _ p2ptypes.Encoder[wire.Hash] = BlockHash{}

// BlockHash is the content identifier of a block.
type BlockHash felt

// ParseBlockHash parses a hex block hash, with or without 0x prefix.
func ParseBlockHash(s string) (BlockHash, error) {
	f, err := parseFelt(s)
	if err != nil {
		return BlockHash{}, fmt.Errorf("p2ptypes: parse block hash: %w", err)
	}
	return BlockHash(f), nil
}

func (h BlockHash) String() string { return felt(h).String() }

// Wire returns the wire form of h. It never fails.
func (h BlockHash) Wire() wire.Hash {
	b := make([]byte, FeltSize)
	copy(b, h[:])
	return wire.Hash{Elements: b}
}

// ToWire is Wire with the error p2ptypes.Encoder requires; it is always nil.
func (h BlockHash) ToWire() (wire.Hash, error) {
	return h.Wire(), nil
}

// BlockHashFromWire decodes a block hash, which must be exactly 32 bytes.
func BlockHashFromWire(w wire.Hash) (BlockHash, error) {
	if len(w.Elements) != FeltSize {
		return BlockHash{}, p2ptypes.NewInvalidLengthError("Hash", FeltSize, len(w.Elements))
	}
	var h BlockHash
	copy(h[:], w.Elements)
	return h, nil
}
