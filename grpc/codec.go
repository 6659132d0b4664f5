// Package p2pgrpc lets gRPC carry consensus messages using cramberry
// for deterministic binary serialization.
//
// No protobuf code generation is required. Domain proposals are mapped
// through their wire schema; any other value is serialized directly
// via its cramberry struct tags.
package p2pgrpc

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/blockberries/p2ptypes/types"
	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype the codec registers under.
const Name = "cramberry"

// CramberryCodec implements grpc/encoding.Codec using cramberry.
type CramberryCodec struct{}

func (CramberryCodec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case types.Proposal:
		return marshalProposal(m)
	case *types.Proposal:
		if m == nil {
			return nil, fmt.Errorf("cramberry marshal: nil *types.Proposal")
		}
		return marshalProposal(*m)
	}

	data, err := cramberry.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cramberry marshal: %w", err)
	}
	return data, nil
}

func marshalProposal(p types.Proposal) ([]byte, error) {
	data, err := p.Marshal()
	if err != nil {
		return nil, fmt.Errorf("cramberry marshal: %w", err)
	}
	return data, nil
}

func (CramberryCodec) Unmarshal(data []byte, v any) error {
	if p, ok := v.(*types.Proposal); ok {
		got, err := types.UnmarshalProposal(data)
		if err != nil {
			return fmt.Errorf("cramberry unmarshal: %w", err)
		}
		*p = got
		return nil
	}

	if err := cramberry.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cramberry unmarshal: %w", err)
	}
	return nil
}

func (CramberryCodec) Name() string { return Name }

func init() {
	encoding.RegisterCodec(CramberryCodec{})
}
