package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blockberries/p2ptypes/internal/fixture"
	"github.com/blockberries/p2ptypes/types"
	"github.com/spf13/cobra"
)

func NewEncodeCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use: "encode PROPOSAL_FILE",

		Short: "Print the hex sign bytes of the proposal in a TOML file",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := fixture.LoadFile(args[0])
			if err != nil {
				return err
			}
			log.Debug("Loaded proposal", "path", args[0], "proposal", p)

			b, err := p.Marshal()
			if err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", b)
			return nil
		},
	}
}

func NewDecodeCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use: "decode HEX_SIGN_BYTES",

		Short: "Print the proposal encoded in the given hex sign bytes as TOML",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(args[0]), "0x"))
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}

			p, err := types.UnmarshalProposal(b)
			if err != nil {
				return err
			}
			log.Debug("Decoded proposal", "bytes", len(b), "proposal", p)

			return fixture.Encode(cmd.OutOrStdout(), p)
		},
	}
}

func NewRoundTripCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use: "roundtrip PROPOSAL_FILE",

		Short: "Check that the proposal in a TOML file survives encode and decode unchanged",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := fixture.LoadFile(args[0])
			if err != nil {
				return err
			}

			b, err := p.Marshal()
			if err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}

			got, err := types.UnmarshalProposal(b)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			if got != p {
				return fmt.Errorf("decoded proposal %s differs from %s", got, p)
			}

			again, err := got.Marshal()
			if err != nil {
				return fmt.Errorf("re-encode %s: %w", args[0], err)
			}
			if !bytes.Equal(b, again) {
				return fmt.Errorf("re-encoded bytes differ: %x != %x", again, b)
			}

			log.Debug("Round trip ok", "path", args[0], "bytes", len(b))
			fmt.Fprintf(cmd.OutOrStdout(), "ok %d bytes\n", len(b))
			return nil
		},
	}
}
