package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-docsis/docsistlv/pkg/codec"
	"github.com/go-docsis/docsistlv/pkg/validate"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a DOCSIS configuration against a target DOCSIS version",
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
			tree, err := codec.Parse(b, ver, codec.ParseOptions{})
			if err != nil {
				return err
			}

			issues := validate.Validate(tree, ver)
			if jsonOut {
				return printJSON(issues)
			}
			for _, issue := range issues {
				printInfo("[%s] %s at %s: %s\n", issue.Severity, issue.Code, issue.TLVPath, issue.Message)
			}
			if len(issues) == 0 {
				printInfo("no issues found\n")
			}

			if strict {
				return validate.Strict(tree, ver)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if any error-severity issue is found")
	return cmd
}
