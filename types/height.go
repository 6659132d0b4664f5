package types

import "fmt"

// Height identifies a chain position: a block number on a given fork.
type Height struct {
	BlockNumber uint64
	ForkID      uint64
}

// NewHeight creates a Height from its block number and fork id.
func NewHeight(blockNumber, forkID uint64) Height {
	return Height{BlockNumber: blockNumber, ForkID: forkID}
}

// Increment returns the next height on the same fork.
func (h Height) Increment() Height {
	return Height{BlockNumber: h.BlockNumber + 1, ForkID: h.ForkID}
}

// Less orders heights by fork, then block number.
func (h Height) Less(other Height) bool {
	if h.ForkID != other.ForkID {
		return h.ForkID < other.ForkID
	}
	return h.BlockNumber < other.BlockNumber
}

func (h Height) String() string {
	return fmt.Sprintf("%d/%d", h.BlockNumber, h.ForkID)
}
