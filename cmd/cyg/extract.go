package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yongrenjie/cygnet/internal/config"
	"github.com/yongrenjie/cygnet/internal/pdf"
)

var extractCite bool

var extractCmd = &cobra.Command{
	Use:   "extract <pdf-file>",
	Short: "Extract the DOI from a PDF file",
	Long: `Extract the article DOI from a PDF file by scanning its first pages.

With --cite, the extracted DOI is immediately resolved to a citation using
the default format.

Examples:
  cyg extract paper.pdf
  cyg extract paper.pdf --cite --human`,
	Args: cobra.ExactArgs(1),
	Run:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractCite, "cite", false, "Resolve the extracted DOI to a citation")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	path := args[0]

	d, err := pdf.ExtractDOI(path)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", path, err)
	}
	if d.IsZero() {
		exitWithError(ExitNotFound, "no DOI found in %s", path)
	}

	if extractCite {
		out, err := newResolver().Resolve(context.Background(), d.String(), config.GetDefaultFormat())
		if err != nil {
			exitResolveError(d.String(), err)
		}
		if humanOutput {
			fmt.Println(out.Citation)
		} else {
			_ = outputJSON(out)
		}
		return
	}

	if humanOutput {
		fmt.Println(d)
		return
	}
	_ = outputJSON(map[string]string{"file": path, "doi": d.String()})
}
