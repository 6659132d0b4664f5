package types

import (
	"math"
	"strconv"
)

// Round is a consensus round index within a height.
//
// NilRound (-1) is the only nil round, meaning "no round". A concrete
// round is in [0, math.MaxUint32]. Any other value is out of range:
// it is neither nil nor concrete and cannot be encoded.
type Round int64

// NilRound is the nil round.
const NilRound Round = -1

// NewRound returns the concrete round r.
func NewRound(r uint32) Round {
	return Round(r)
}

// RoundFromOptional returns NilRound for a nil pointer and the
// concrete round *r otherwise.
func RoundFromOptional(r *uint32) Round {
	if r == nil {
		return NilRound
	}
	return NewRound(*r)
}

// IsNil reports whether r is the nil round.
func (r Round) IsNil() bool { return r == NilRound }

// IsDefined reports whether r is a concrete round.
func (r Round) IsDefined() bool { return r >= 0 && r <= math.MaxUint32 }

// AsUint32 returns the concrete round and true,
// or 0 and false for any round that is not concrete.
func (r Round) AsUint32() (uint32, bool) {
	if !r.IsDefined() {
		return 0, false
	}
	return uint32(r), true
}

// MustUint32 is like AsUint32 but panics if r is not concrete.
func (r Round) MustUint32() uint32 {
	v, ok := r.AsUint32()
	if !ok {
		panic("types: MustUint32 called on round " + r.String())
	}
	return v
}

// OptionalUint32 returns nil for any round that is not concrete
// and a pointer to the value otherwise.
func (r Round) OptionalUint32() *uint32 {
	v, ok := r.AsUint32()
	if !ok {
		return nil
	}
	return &v
}

// Int64 returns the round as a signed value, -1 for nil.
func (r Round) Int64() int64 {
	return int64(r)
}

// Increment returns the following round. The round after nil is 0.
func (r Round) Increment() Round {
	if r.IsNil() {
		return 0
	}
	return r + 1
}

func (r Round) String() string {
	if r.IsNil() {
		return "nil"
	}
	return strconv.FormatInt(int64(r), 10)
}
