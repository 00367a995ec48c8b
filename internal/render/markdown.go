package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yongrenjie/cygnet/internal/reference"
)

// toMarkdown renders the journal-reference form used in notebooks and
// READMEs. The long form prepends ACS-style authors and the title.
func toMarkdown(ref reference.Reference, long bool) string {
	var b strings.Builder

	if long {
		b.WriteString(acsAuthors(ref.Authors))
		b.WriteString(" ")
		b.WriteString(ref.Title)
		b.WriteString(". ")
	}

	b.WriteString(fmt.Sprintf("*%s* **%d**, ", ref.Journal(), ref.Year))
	if ref.Issue != "" {
		b.WriteString(fmt.Sprintf("*%s* (%s), ", ref.Volume, ref.Issue))
	} else {
		// The comma goes inside the italics when there is no issue.
		b.WriteString(fmt.Sprintf("*%s,* ", ref.Volume))
	}
	b.WriteString(endashPages(ref.Pages))
	b.WriteString(fmt.Sprintf(". [DOI: %s](%s).", ref.DOI, doiURL(ref.DOI)))

	return b.String()
}

// toWord renders a plain-text citation suitable for pasting into documents.
func toWord(ref reference.Reference) string {
	var b strings.Builder

	b.WriteString(acsAuthors(ref.Authors))
	b.WriteString(fmt.Sprintf(" %s %d, ", ref.Journal(), ref.Year))
	if ref.Issue != "" {
		b.WriteString(fmt.Sprintf("%s (%s), ", ref.Volume, ref.Issue))
	} else {
		b.WriteString(fmt.Sprintf("%s, ", ref.Volume))
	}
	b.WriteString(endashPages(ref.Pages))
	b.WriteString(".")

	return b.String()
}

// endashPages replaces hyphens in page ranges with en dashes.
func endashPages(pages string) string {
	return strings.ReplaceAll(pages, "-", "–")
}

// doiURL builds the doi.org resolver URL, escaping parentheses and the like
// so the link survives Markdown-to-HTML conversion.
func doiURL(s string) string {
	return "https://doi.org/" + strings.ReplaceAll(url.PathEscape(s), "%2F", "/")
}
