// Package fulltext constructs direct links to publisher-hosted PDFs.
package fulltext

import (
	"errors"
	"fmt"

	"github.com/yongrenjie/cygnet/internal/doi"
)

// ErrUnknownPublisher indicates a DOI whose registrant prefix maps to no
// known publisher URL scheme.
var ErrUnknownPublisher = errors.New("unknown publisher")

// publisher describes how to turn a DOI into a direct PDF URL.
type publisher struct {
	name string
	// format receives the identifier; for most publishers that is the DOI
	// itself, Nature wants only the suffix.
	format     string
	suffixOnly bool
}

// publishersByPrefix maps DOI registrant prefixes to publishers. The
// patterns cover the major chemistry and general-science publishers; other
// prefixes report ErrUnknownPublisher rather than guessing.
var publishersByPrefix = map[string]publisher{
	"10.1021": {name: "ACS", format: "https://pubs.acs.org/doi/pdf/%s"},
	"10.1002": {name: "Wiley", format: "https://onlinelibrary.wiley.com/doi/pdfdirect/%s"},
	"10.1016": {name: "Elsevier", format: "https://www.sciencedirect.com/science/article/pii/%s/pdfft"},
	"10.1038": {name: "Nature", format: "https://www.nature.com/articles/%s.pdf", suffixOnly: true},
	"10.1126": {name: "Science", format: "https://science.sciencemag.org/content/sci/%s.full.pdf"},
	"10.1007": {name: "Springer", format: "https://link.springer.com/content/pdf/%s.pdf"},
	"10.1080": {name: "Taylor & Francis", format: "https://www.tandfonline.com/doi/pdf/%s"},
	"10.1146": {name: "Annual Reviews", format: "https://www.annualreviews.org/doi/pdf/%s"},
	"10.1039": {name: "RSC", format: "https://pubs.rsc.org/en/content/articlepdf/%s"},
}

// PDFURL returns the direct full-text PDF URL for a DOI, based on its
// registrant prefix. Access still depends on the caller's subscriptions.
func PDFURL(d doi.DOI) (string, error) {
	pub, ok := publishersByPrefix[d.Prefix()]
	if !ok {
		return "", fmt.Errorf("%w: prefix %s", ErrUnknownPublisher, d.Prefix())
	}

	id := d.String()
	if pub.suffixOnly {
		id = d.Suffix()
	}
	return fmt.Sprintf(pub.format, id), nil
}

// Publisher returns the publisher name for a DOI, or "" if unknown.
func Publisher(d doi.DOI) string {
	return publishersByPrefix[d.Prefix()].name
}
