// Package p2ptypes defines the consensus message contract exchanged
// between validators: domain values in [types], their wire schema in
// [wire], and the deterministic cramberry encoding that turns one into
// bytes.
//
// Every domain value that travels over the wire implements [Encoder]
// for its wire message and has a matching decode function
// func(W) (T, error), which returns either a complete value or an
// error and never a partial value. The generic
// helpers in this package compose the two with cramberry so callers
// never marshal wire structs by hand.
package p2ptypes

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
)

// Encoder is implemented by domain values that map onto a wire message W.
//
// ToWire must be deterministic: logically equal values produce equal
// wire messages, so the cramberry bytes are identical too.
type Encoder[W any] interface {
	ToWire() (W, error)
}

// Marshal encodes v to its wire message and serializes it with cramberry.
func Marshal[W any](v Encoder[W]) ([]byte, error) {
	w, err := v.ToWire()
	if err != nil {
		return nil, err
	}
	data, err := cramberry.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("cramberry marshal: %w", err)
	}
	return data, nil
}

// Unmarshal deserializes data into the wire message W and decodes it.
func Unmarshal[W, T any](data []byte, decode func(W) (T, error)) (T, error) {
	var w W
	if err := cramberry.Unmarshal(data, &w); err != nil {
		var zero T
		return zero, fmt.Errorf("cramberry unmarshal: %w", err)
	}
	return decode(w)
}
