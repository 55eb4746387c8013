package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
	version string = "1.0"
)

var rootCmd = &cobra.Command{
	Use:   "docsisctl",
	Short: "Parse, validate, and authenticate DOCSIS TLV configuration files",
	Long: `docsisctl reads DOCSIS cable-modem configuration files (CableLabs
CL-SP-CANN binary TLV format), dumps their decoded contents, validates them
against a target DOCSIS version, and computes or verifies their Message
Integrity Check digests.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&version, "docsis-version", "3.0", "Target DOCSIS version (1.0, 1.1, 2.0, 3.0, 3.1)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
