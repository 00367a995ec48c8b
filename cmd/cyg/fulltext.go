package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yongrenjie/cygnet/internal/doi"
	"github.com/yongrenjie/cygnet/internal/fulltext"
)

var fulltextCmd = &cobra.Command{
	Use:   "fulltext <doi>",
	Short: "Construct the publisher's full-text PDF URL for a DOI",
	Long: `Construct the direct full-text PDF URL for a DOI from its registrant
prefix. Whether the link works depends on your institutional access.

Examples:
  cyg fulltext 10.1021/acs.jpca.1c02621
  cyg fulltext 10.1038/nature12373 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runFulltext,
}

func init() {
	rootCmd.AddCommand(fulltextCmd)
}

func runFulltext(cmd *cobra.Command, args []string) {
	d, err := doi.Parse(args[0])
	if err != nil {
		exitWithError(ExitInvalidDOI, "could not resolve %q: %v", args[0], err)
	}

	u, err := fulltext.PDFURL(d)
	if err != nil {
		exitWithError(ExitNotFound, "%v", err)
	}

	if humanOutput {
		fmt.Println(u)
		return
	}
	_ = outputJSON(map[string]string{
		"doi":       d.String(),
		"publisher": fulltext.Publisher(d),
		"url":       u,
	})
}
