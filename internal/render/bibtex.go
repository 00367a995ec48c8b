package render

import (
	"fmt"
	"strings"

	"github.com/yongrenjie/cygnet/internal/reference"
)

// toBibLaTeX converts a reference to a BibLaTeX entry. Field order is fixed
// so that output is reproducible.
func toBibLaTeX(ref reference.Reference) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType(ref), CiteKey(ref)))

	if ref.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", ref.DOI))
	}
	if len(ref.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", latexField(bibAuthors(ref.Authors))))
	}
	if journal := ref.Journal(); journal != "" {
		// Control spaces after abbreviation periods, as in author names.
		journal = strings.ReplaceAll(journal, ". ", ".\\ ")
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", journalField(ref), unicodeToLatex.Replace(journal)))
	}
	b.WriteString(fmt.Sprintf("  title = {%s},\n", latexField(ref.Title)))
	b.WriteString(fmt.Sprintf("  year = {%d},\n", ref.Year))
	if ref.Volume != "" {
		b.WriteString(fmt.Sprintf("  volume = {%s},\n", ref.Volume))
	}
	if ref.Issue != "" {
		b.WriteString(fmt.Sprintf("  issue = {%s},\n", ref.Issue))
	}
	if ref.Pages != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", strings.ReplaceAll(ref.Pages, "-", "--")))
	}
	b.WriteString("}\n")

	return b.String()
}

// entryType returns the BibLaTeX entry type for a reference, based on the
// Crossref work type.
func entryType(ref reference.Reference) string {
	switch ref.Type {
	case "book", "monograph", "edited-book":
		return "book"
	case "book-chapter", "book-section":
		return "incollection"
	case "proceedings-article":
		return "inproceedings"
	case "dissertation":
		return "thesis"
	default:
		return "article"
	}
}

// journalField returns the field name used for the container title.
func journalField(ref reference.Reference) string {
	if entryType(ref) == "inproceedings" {
		return "booktitle"
	}
	return "journal"
}
