// Package fixture reads and writes proposals as TOML documents.
//
// A document looks like:
//
//	block_number = 42
//	fork_id = 0
//	round = 3
//	pol_round = 1 # omit for no proof-of-lock
//	block_hash = "0x..."
//	proposer = "0x..."
package fixture

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/blockberries/p2ptypes/types"
)

type fileProposal struct {
	BlockNumber uint64 `toml:"block_number"`
	ForkID      uint64 `toml:"fork_id"`
	Round       int64  `toml:"round"`
	PolRound    *int64 `toml:"pol_round,omitempty"`
	BlockHash   string `toml:"block_hash"`
	Proposer    string `toml:"proposer"`
}

// LoadFile reads a proposal document from path.
func LoadFile(path string) (types.Proposal, error) {
	var raw fileProposal
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return types.Proposal{}, fmt.Errorf("load proposal fixture: %w", err)
	}
	return fromFile(raw, meta)
}

// Decode reads a proposal document from r.
func Decode(r io.Reader) (types.Proposal, error) {
	var raw fileProposal
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return types.Proposal{}, fmt.Errorf("decode proposal fixture: %w", err)
	}
	return fromFile(raw, meta)
}

func fromFile(raw fileProposal, meta toml.MetaData) (types.Proposal, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return types.Proposal{}, fmt.Errorf("proposal fixture: unknown key %s", undecoded[0])
	}
	for _, key := range []string{"round", "block_hash", "proposer"} {
		if !meta.IsDefined(key) {
			return types.Proposal{}, fmt.Errorf("proposal fixture: missing key %s", key)
		}
	}

	round, err := parseRound("round", raw.Round)
	if err != nil {
		return types.Proposal{}, err
	}

	polRound := types.NilRound
	if meta.IsDefined("pol_round") && raw.PolRound != nil {
		polRound, err = parseRound("pol_round", *raw.PolRound)
		if err != nil {
			return types.Proposal{}, err
		}
	}

	blockHash, err := types.ParseBlockHash(strings.TrimSpace(raw.BlockHash))
	if err != nil {
		return types.Proposal{}, fmt.Errorf("proposal fixture: block_hash: %w", err)
	}
	proposer, err := types.ParseAddress(strings.TrimSpace(raw.Proposer))
	if err != nil {
		return types.Proposal{}, fmt.Errorf("proposal fixture: proposer: %w", err)
	}

	return types.NewProposal(
		types.NewHeight(raw.BlockNumber, raw.ForkID),
		round,
		blockHash,
		polRound,
		proposer,
	), nil
}

func parseRound(key string, v int64) (types.Round, error) {
	if v < 0 || v > math.MaxUint32 {
		return types.NilRound, fmt.Errorf("proposal fixture: %s %d out of range [0, %d]", key, v, uint32(math.MaxUint32))
	}
	return types.NewRound(uint32(v)), nil
}

// Encode writes p as a proposal document. A nil pol_round is omitted.
//
// A nil or out-of-range Round or PolRound is written as its signed
// value, which LoadFile rejects.
func Encode(w io.Writer, p types.Proposal) error {
	raw := fileProposal{
		BlockNumber: p.Height.BlockNumber,
		ForkID:      p.Height.ForkID,
		Round:       p.Round.Int64(),
		BlockHash:   p.BlockHash.String(),
		Proposer:    p.Proposer.String(),
	}
	if !p.PolRound.IsNil() {
		v := p.PolRound.Int64()
		raw.PolRound = &v
	}
	if err := toml.NewEncoder(w).Encode(raw); err != nil {
		return fmt.Errorf("encode proposal fixture: %w", err)
	}
	return nil
}
