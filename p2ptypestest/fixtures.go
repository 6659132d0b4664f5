package p2ptypestest

import (
	"math"

	"github.com/blockberries/p2ptypes/types"
)

// MakeBlockHash returns a block hash whose bytes are derived from seed,
// so distinct seeds give distinct hashes.
func MakeBlockHash(seed byte) types.BlockHash {
	var h types.BlockHash
	for i := range h {
		h[i] = seed ^ byte(i*7)
	}
	return h
}

// MakeAddress returns an address whose bytes are derived from seed.
// It never equals MakeBlockHash(seed) byte-for-byte.
func MakeAddress(seed byte) types.Address {
	var a types.Address
	for i := range a {
		a[i] = seed ^ byte(i*13+1)
	}
	return a
}

// MakeProposal returns a proposal at block 42 on fork 0 with the
// given rounds and seeded hash and proposer.
func MakeProposal(round, polRound types.Round) types.Proposal {
	return types.NewProposal(
		types.NewHeight(42, 0),
		round,
		MakeBlockHash(1),
		polRound,
		MakeAddress(2),
	)
}

// Proposals returns a fixed set of encodable proposals covering the
// edges of each field: nil and concrete pol_round, round zero, the
// largest round, zero and maximal heights.
func Proposals() []types.Proposal {
	return []types.Proposal{
		MakeProposal(3, types.NilRound),
		MakeProposal(3, 1),
		MakeProposal(0, types.NilRound),
		MakeProposal(0, 0),
		MakeProposal(types.NewRound(math.MaxUint32), types.NewRound(math.MaxUint32-1)),
		types.NewProposal(types.NewHeight(0, 0), 1, types.BlockHash{}, types.NilRound, types.Address{}),
		types.NewProposal(
			types.NewHeight(math.MaxUint64, math.MaxUint64),
			7,
			MakeBlockHash(0xff),
			6,
			MakeAddress(0xfe),
		),
		types.NewProposal(types.NewHeight(1, 2), 5, MakeBlockHash(9), 2, MakeAddress(9)),
	}
}
