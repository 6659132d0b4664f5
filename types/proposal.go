package types

import (
	"fmt"

	"github.com/blockberries/p2ptypes"
	"github.com/blockberries/p2ptypes/wire"
)

var _ p2ptypes.Encoder[wire.Proposal] = Proposal{}

const proposalWireType = "Proposal"

// Proposal is a proposer's claim that BlockHash should be decided at
// Height in Round. PolRound is the round in which the proposer saw a
// proof-of-lock for the value, or NilRound if it saw none.
//
// A Proposal is a value: two proposals are the same proposal exactly
// when all five fields are equal.
type Proposal struct {
	Height    Height
	Round     Round
	BlockHash BlockHash
	PolRound  Round
	Proposer  Address
}

// NewProposal creates a Proposal. It performs no validation; a nil
// Round is only rejected when the proposal is encoded.
func NewProposal(height Height, round Round, blockHash BlockHash, polRound Round, proposer Address) Proposal {
	return Proposal{
		Height:    height,
		Round:     round,
		BlockHash: blockHash,
		PolRound:  polRound,
		Proposer:  proposer,
	}
}

// ToWire maps p to its wire message.
//
// A nil Round has no wire representation. ToWire reports it as an
// error wrapping p2ptypes.ErrNilRound and never substitutes a default.
// A Round or PolRound that is out of range (see Round) fails with
// p2ptypes.ErrRoundOutOfRange, so every encodable proposal decodes
// back to an equal value.
func (p Proposal) ToWire() (wire.Proposal, error) {
	if p.Round.IsNil() {
		return wire.Proposal{}, fmt.Errorf("proposal round: %w", p2ptypes.ErrNilRound)
	}
	round, ok := p.Round.AsUint32()
	if !ok {
		return wire.Proposal{}, fmt.Errorf("proposal round %d: %w", p.Round.Int64(), p2ptypes.ErrRoundOutOfRange)
	}
	if !p.PolRound.IsNil() && !p.PolRound.IsDefined() {
		return wire.Proposal{}, fmt.Errorf("proposal pol_round %d: %w", p.PolRound.Int64(), p2ptypes.ErrRoundOutOfRange)
	}

	blockHash := p.BlockHash.Wire()
	proposer := p.Proposer.Wire()

	return wire.Proposal{
		BlockNumber: p.Height.BlockNumber,
		ForkID:      p.Height.ForkID,
		Round:       round,
		BlockHash:   &blockHash,
		PolRound:    p.PolRound.OptionalUint32(),
		Proposer:    &proposer,
	}, nil
}

// ProposalFromWire rebuilds a Proposal from its wire message.
//
// A zero round is a valid round. An absent block hash or proposer
// fails with a *p2ptypes.MissingFieldError; block_hash is checked
// first. Errors from the nested decoders are wrapped with the field
// name and otherwise passed through unchanged.
func ProposalFromWire(w wire.Proposal) (Proposal, error) {
	if w.BlockHash == nil {
		return Proposal{}, p2ptypes.NewMissingFieldError(proposalWireType, "block_hash")
	}
	blockHash, err := BlockHashFromWire(*w.BlockHash)
	if err != nil {
		return Proposal{}, fmt.Errorf("proposal block_hash: %w", err)
	}

	if w.Proposer == nil {
		return Proposal{}, p2ptypes.NewMissingFieldError(proposalWireType, "proposer")
	}
	proposer, err := AddressFromWire(*w.Proposer)
	if err != nil {
		return Proposal{}, fmt.Errorf("proposal proposer: %w", err)
	}

	return Proposal{
		Height:    NewHeight(w.BlockNumber, w.ForkID),
		Round:     NewRound(w.Round),
		BlockHash: blockHash,
		PolRound:  RoundFromOptional(w.PolRound),
		Proposer:  proposer,
	}, nil
}

// Marshal returns the cramberry encoding of p's wire message.
func (p Proposal) Marshal() ([]byte, error) {
	return p2ptypes.Marshal[wire.Proposal](p)
}

// UnmarshalProposal decodes a Proposal from its cramberry encoding.
//
// Decoding is lenient: input that is not in canonical form (for
// example with trailing bytes) may still decode. Verifiers must check
// signatures against SignBytes of the decoded Proposal, never against
// the bytes as received.
func UnmarshalProposal(data []byte) (Proposal, error) {
	return p2ptypes.Unmarshal(data, ProposalFromWire)
}

// SignBytes returns the canonical payload signed by the proposer and
// checked by verifiers. It is identical to the output of Marshal.
//
// SignBytes panics if p cannot be encoded, which only happens when
// Round is nil or either round is out of range. Signing substitute bytes would be
// unsafe, so this is treated as a programming error. Callers that
// cannot guarantee a concrete round must use Marshal.
func (p Proposal) SignBytes() []byte {
	b, err := p.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal proposal sign bytes: %w", err))
	}
	return b
}

func (p Proposal) String() string {
	return fmt.Sprintf("Proposal{%s/%s %s pol=%s by %s}",
		p.Height, p.Round, p.BlockHash, p.PolRound, p.Proposer)
}
