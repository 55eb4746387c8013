package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-docsis/docsistlv/pkg/codec"
	"github.com/go-docsis/docsistlv/pkg/mic"
)

func init() {
	rootCmd.AddCommand(newMICCmd())
}

func newMICCmd() *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "mic <config-file>",
		Short: "Compute or verify the CM-MIC/CMTS-MIC digests of a DOCSIS configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("mic: --secret is required")
			}
			ver, err := resolveVersion()
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			tree, err := codec.Parse(b, ver, codec.ParseOptions{})
			if err != nil {
				return err
			}

			if err := mic.Verify(tree, []byte(secret)); err != nil {
				if jsonOut {
					return printJSON(map[string]any{"valid": false, "error": err.Error()})
				}
				return err
			}

			cmtsDigest, err := mic.ComputeCMTSMIC(tree, []byte(secret))
			if err != nil {
				return err
			}
			cmDigest, err := mic.ComputeCMMIC(tree, []byte(secret))
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(map[string]any{
					"valid":    true,
					"cmts_mic": hex.EncodeToString(cmtsDigest[:]),
					"cm_mic":   hex.EncodeToString(cmDigest[:]),
				})
			}
			printInfo("MIC valid\n")
			printInfo("  CMTS-MIC: %s\n", hex.EncodeToString(cmtsDigest[:]))
			printInfo("  CM-MIC:   %s\n", hex.EncodeToString(cmDigest[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "Shared secret for MIC computation (required)")
	return cmd
}
