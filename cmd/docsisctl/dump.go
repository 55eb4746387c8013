package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-docsis/docsistlv/internal/registry"
	"github.com/go-docsis/docsistlv/pkg/codec"
	"github.com/go-docsis/docsistlv/pkg/docsistree"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	var allowVendorTwoByte bool
	cmd := &cobra.Command{
		Use:   "dump <config-file>",
		Short: "Parse a DOCSIS configuration file and print its TLV tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ver, err := resolveVersion()
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			tree, err := codec.Parse(b, ver, codec.ParseOptions{AllowVendorTwoByteLength: allowVendorTwoByte})
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(tree)
			}
			printTree(tree, 0)
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowVendorTwoByte, "allow-vendor-two-byte-length", false,
		"Recognize the informally-reported vendor 2-byte length encoding")
	return cmd
}

func printTree(records docsistree.DocsisFile, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	for _, r := range records {
		name := "(pad/end)"
		if r.Metadata != nil {
			name = r.Metadata.Name
		}
		printInfo("%sTLV %d (%s) len=%d\n", indent, r.Type, name, r.Length())
		if r.Warning != "" {
			printInfo("%s  warning: %s\n", indent, r.Warning)
		}
		if r.IsCompound() {
			printTree(r.Children, depth+1)
		}
	}
}

func resolveVersion() (registry.DocsisVersion, error) {
	v, ok := registry.ParseVersion(version)
	if !ok {
		return 0, fmt.Errorf("unknown DOCSIS version %q", version)
	}
	return v, nil
}
