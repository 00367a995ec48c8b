// Package pdf extracts DOIs from PDF files.
package pdf

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/yongrenjie/cygnet/internal/doi"
)

// doiBody matches the body of a DOI as it appears in PDF metadata.
const doiBody = `10\.\d{4,9}/[-._;()/:a-zA-Z0-9]+`

// doiPatterns are tried in order against each line of extracted text. The
// anchored forms (prism tags, doi.org URIs, WPS-ARTICLEDOI) come first:
// they only ever match the article's own DOI, whereas the bare pattern can
// pick up a cited paper's DOI.
var doiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<prism:doi>(` + doiBody + `)</prism:doi>`),
	regexp.MustCompile(`["'](?:doi|DOI):(` + doiBody + `)["']`),
	regexp.MustCompile(`URI\s*\(https?://doi\.org/(` + doiBody + `)\)`),
	regexp.MustCompile(`URI\s*\((?:https?://)?www\.nature\.com/doifinder/(` + doiBody + `)\)`),
	regexp.MustCompile(`/WPS-ARTICLEDOI\s*\((` + doiBody + `)\)`),
	regexp.MustCompile(`\((?:doi|DOI):\s*(` + doiBody + `)\)`),
	regexp.MustCompile(`(?:doi|DOI):\s*(` + doiBody + `)`),
	regexp.MustCompile(`(` + doiBody + `)`),
}

// maxSearchPages bounds the text search; the DOI is nearly always on the
// first page.
const maxSearchPages = 3

// ExtractDOI extracts the article DOI from a PDF file. A PDF without a
// recognizable DOI returns the zero DOI and a nil error.
func ExtractDOI(filePath string) (doi.DOI, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return doi.DOI{}, err
	}
	defer f.Close()

	maxPages := maxSearchPages
	if r.NumPage() < maxPages {
		maxPages = r.NumPage()
	}

	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if d, ok := FindDOI(text); ok {
			return d, nil
		}
	}

	return doi.DOI{}, nil
}

// FindDOI searches text for a DOI, returning the first parseable match.
func FindDOI(text string) (doi.DOI, bool) {
	for _, re := range doiPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			candidate := cleanCandidate(match[1])
			d, err := doi.Parse(candidate)
			if err != nil {
				continue
			}
			return d, true
		}
	}
	return doi.DOI{}, false
}

// cleanCandidate strips trailing punctuation and prunes close-parentheses
// that belong to surrounding text rather than the DOI itself.
func cleanCandidate(s string) string {
	s = strings.TrimRight(s, ".,;:")

	// A DOI can legitimately contain parentheses, but a match with more
	// close- than open-parens has swallowed the end of a bracketed phrase.
	nopen := strings.Count(s, "(")
	nclose := strings.Count(s, ")")
	for nclose > nopen {
		idx := strings.LastIndex(s, ")")
		if idx < 0 {
			break
		}
		s = s[:idx]
		nclose--
	}
	return strings.TrimRight(s, ".,;:")
}
