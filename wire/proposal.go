package wire

// Proposal is the wire form of "proposer proposes block_hash at
// (block_number, fork_id) in round, justified by pol_round".
//
// Its cramberry encoding is also the payload that validators sign.
type Proposal struct {
	BlockNumber uint64   `cramberry:"1"`
	ForkID      uint64   `cramberry:"2"`
	Round       uint32   `cramberry:"3"`
	BlockHash   *Hash    `cramberry:"4"`
	PolRound    *uint32  `cramberry:"5"` // nil when the proposer holds no proof-of-lock
	Proposer    *Address `cramberry:"6"`
}
