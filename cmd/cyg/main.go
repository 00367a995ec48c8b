// Package main provides the cyg CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cyg",
	Short: "DOI-to-citation resolution",
	Long: `cyg resolves DOIs to formatted citations via Crossref.

Core features:
  - Citations in BibLaTeX, Markdown, Word, or plain-DOI form
  - DOI extraction from PDF files
  - Publisher full-text PDF URL construction

Designed to be driven from editors and scripts: commands output JSON by
default and collapse every failure into a single error line and exit code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
