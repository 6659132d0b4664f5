// Package p2ptypestest provides test utilities for the consensus
// message contract: a codec compliance suite that any
// [p2ptypes.Encoder] can be checked against, deterministic fixtures,
// and stub wire fragments.
package p2ptypestest

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/blockberries/p2ptypes"
	"github.com/stretchr/testify/require"
)

// RunCodecCompliance runs the standard codec checks against every sample:
//
//   - decoding the encoded wire message yields the original value;
//   - encoding the same value twice yields identical bytes;
//   - bytes re-encoded from the decoded value are identical to the originals;
//   - concurrent encodes of one value all agree.
//
// Every sample must be encodable.
func RunCodecCompliance[T interface {
	comparable
	p2ptypes.Encoder[W]
}, W any](t *testing.T, decode func(W) (T, error), samples ...T) {
	t.Helper()

	require.NotEmpty(t, samples, "compliance suite needs at least one sample")

	for i, v := range samples {
		t.Run(fmt.Sprintf("sample %d", i), func(t *testing.T) {
			t.Run("wire round trip", func(t *testing.T) {
				w, err := v.ToWire()
				require.NoError(t, err)

				got, err := decode(w)
				require.NoError(t, err)
				require.Equal(t, v, got)
			})

			t.Run("bytes round trip", func(t *testing.T) {
				data, err := p2ptypes.Marshal[W](v)
				require.NoError(t, err)

				got, err := p2ptypes.Unmarshal[W, T](data, decode)
				require.NoError(t, err)
				require.Equal(t, v, got)

				again, err := p2ptypes.Marshal[W](got)
				require.NoError(t, err)
				require.True(t, bytes.Equal(data, again), "re-encoded bytes differ:\n%x\n%x", data, again)
			})

			t.Run("deterministic", func(t *testing.T) {
				a, err := p2ptypes.Marshal[W](v)
				require.NoError(t, err)
				b, err := p2ptypes.Marshal[W](v)
				require.NoError(t, err)
				require.Equal(t, a, b)
			})

			t.Run("concurrent encode", func(t *testing.T) {
				want, err := p2ptypes.Marshal[W](v)
				require.NoError(t, err)

				const n = 16
				results := make([][]byte, n)
				errs := make([]error, n)

				var wg sync.WaitGroup
				for j := 0; j < n; j++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						results[j], errs[j] = p2ptypes.Marshal[W](v)
					}()
				}
				wg.Wait()

				for j := 0; j < n; j++ {
					require.NoError(t, errs[j])
					require.Equal(t, want, results[j])
				}
			})
		})
	}

	t.Run("distinct samples encode distinctly", func(t *testing.T) {
		seen := make(map[string]int, len(samples))
		for i, v := range samples {
			data, err := p2ptypes.Marshal[W](v)
			require.NoError(t, err)

			if j, ok := seen[string(data)]; ok {
				require.Equal(t, samples[j], v, "samples %d and %d differ but share an encoding", j, i)
				continue
			}
			seen[string(data)] = i
		}
	})
}
