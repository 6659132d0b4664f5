package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blockberries/p2ptypes/internal/fixture"
	"github.com/blockberries/p2ptypes/p2ptypestest"
	"github.com/blockberries/p2ptypes/types"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd(slogt.New(t), nil)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, p types.Proposal) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, fixture.Encode(&buf, p))

	path := filepath.Join(t.TempDir(), "proposal.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestEncode(t *testing.T) {
	p := p2ptypestest.MakeProposal(3, types.NilRound)

	out, err := run(t, "encode", writeFixture(t, p))
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(p.SignBytes()), strings.TrimSpace(out))
}

func TestDecode(t *testing.T) {
	p := p2ptypestest.MakeProposal(4, 2)

	out, err := run(t, "--log-level", "debug", "decode", "0x"+hex.EncodeToString(p.SignBytes()))
	require.NoError(t, err)

	got, err := fixture.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := run(t, "decode", "not-hex")
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	out, err := run(t, "roundtrip", writeFixture(t, p2ptypestest.MakeProposal(0, 0)))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ok "), "unexpected output %q", out)
}

func TestEncode_MissingFile(t *testing.T) {
	_, err := run(t, "encode", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
