package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yongrenjie/cygnet/internal/config"
	"github.com/yongrenjie/cygnet/internal/crossref"
	"github.com/yongrenjie/cygnet/internal/resolver"
)

var citeFormat string

var citeCmd = &cobra.Command{
	Use:   "cite <doi>...",
	Short: "Resolve DOIs to formatted citations",
	Long: `Resolve one or more DOIs to formatted citations via Crossref.

Formats:
  bib       BibLaTeX entry (default)
  markdown  Journal reference in Markdown
  Markdown  Authors, title, and journal reference in Markdown
  word      Plain-text citation
  doi       The canonical DOI itself

Single-letter abbreviations (b, m, M, w, d) are accepted.

Environment Variables:
  CROSSREF_MAILTO  Contact address for the Crossref polite pool

Examples:
  cyg cite 10.1021/acs.jpca.1c02621
  cyg cite https://doi.org/10.1039/c9cc06944e --format markdown
  cyg cite 10.1038/nature12373 --format M --human`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCite,
}

func init() {
	// Load .env file if present (for CROSSREF_MAILTO)
	_ = godotenv.Load()

	citeCmd.Flags().StringVarP(&citeFormat, "format", "f", "", "Citation format (default from config, else bib)")
	rootCmd.AddCommand(citeCmd)
}

// newResolver builds a resolver from global config plus environment.
func newResolver() *resolver.Resolver {
	opts := []crossref.ClientOption{
		crossref.WithJournalAbbrevs(config.GetJournalAbbrevs()),
	}
	if addr := config.GetMailto(); addr != "" {
		opts = append(opts, crossref.WithMailto(addr))
	}
	if secs := config.GetTimeoutSeconds(); secs > 0 {
		opts = append(opts, crossref.WithTimeout(time.Duration(secs)*time.Second))
	}
	return resolver.New(crossref.NewClient(opts...))
}

func runCite(cmd *cobra.Command, args []string) {
	format := citeFormat
	if format == "" {
		format = config.GetDefaultFormat()
	}

	r := newResolver()
	var outputs []resolver.Output

	for _, identifier := range args {
		out, err := r.Resolve(context.Background(), identifier, format)
		if err != nil {
			exitResolveError(identifier, err)
		}
		outputs = append(outputs, out)
	}

	if humanOutput {
		citations := make([]string, len(outputs))
		for i, out := range outputs {
			citations[i] = strings.TrimRight(out.Citation, "\n")
		}
		fmt.Println(strings.Join(citations, "\n\n"))
		return
	}

	if len(outputs) == 1 {
		_ = outputJSON(outputs[0])
		return
	}
	_ = outputJSON(outputs)
}
