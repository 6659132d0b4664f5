// Package types defines the domain values of the consensus message
// contract and their mapping to the wire schema in package wire.
//
// Values here are immutable and compared structurally. Encoding and
// decoding are pure functions of the value; nothing in this package
// holds state, performs I/O or logs, so every operation is safe for
// concurrent use.
package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// FeltSize is the byte length of a Starknet field element.
const FeltSize = 32

// felt is the shared 32-byte big-endian representation behind
// BlockHash and Address.
type felt [FeltSize]byte

func (f felt) String() string {
	return "0x" + hex.EncodeToString(f[:])
}

// parseFelt accepts up to 64 hex digits, with or without a 0x prefix,
// and left-pads shorter input with zeros.
func parseFelt(s string) (felt, error) {
	var f felt
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) == 0 {
		return f, errors.New("empty hex string")
	}
	if len(s) > 2*FeltSize {
		return f, fmt.Errorf("hex string has %d digits, max %d", len(s), 2*FeltSize)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return f, err
	}
	copy(f[FeltSize-len(b):], b)
	return f, nil
}
