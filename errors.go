package p2ptypes

import (
	"errors"
	"fmt"
)

// ErrNilRound is returned when a message whose round must be concrete
// is encoded with a nil round. Reaching it means the producer of the
// message broke its contract; the bytes must not be signed or sent.
var ErrNilRound = errors.New("p2ptypes: round must not be nil")

// ErrRoundOutOfRange is returned when a round is neither the nil
// round nor a concrete round that fits in a uint32.
var ErrRoundOutOfRange = errors.New("p2ptypes: round out of range")

// MissingFieldError reports a required embedded message that was
// absent on the wire.
//
// The wire format does not distinguish a field that was never set
// from one that was cleared; both decode to this error.
type MissingFieldError struct {
	// Type is the wire message name, e.g. "Proposal".
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("p2ptypes: missing field %s in %s", e.Field, e.Type)
}

// NewMissingFieldError creates a new MissingFieldError.
func NewMissingFieldError(typ, field string) *MissingFieldError {
	return &MissingFieldError{Type: typ, Field: field}
}

// IsMissingField checks whether an error is a MissingFieldError and returns it.
func IsMissingField(err error) (*MissingFieldError, bool) {
	var m *MissingFieldError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

// InvalidLengthError reports a fixed-size wire fragment whose byte
// length does not match what the type requires.
type InvalidLengthError struct {
	Type string
	Want int
	Got  int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("p2ptypes: invalid %s length: want %d bytes, got %d", e.Type, e.Want, e.Got)
}

// NewInvalidLengthError creates a new InvalidLengthError.
func NewInvalidLengthError(typ string, want, got int) *InvalidLengthError {
	return &InvalidLengthError{Type: typ, Want: want, Got: got}
}

// IsInvalidLength checks whether an error is an InvalidLengthError and returns it.
func IsInvalidLength(err error) (*InvalidLengthError, bool) {
	var l *InvalidLengthError
	if errors.As(err, &l) {
		return l, true
	}
	return nil, false
}
