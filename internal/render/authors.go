package render

import (
	"strings"

	"github.com/yongrenjie/cygnet/internal/reference"
)

// formatAuthorBib renders one author in BibLaTeX style: "Family, Given",
// with control spaces after initials so LaTeX does not treat the periods as
// sentence ends.
func formatAuthorBib(a reference.Author) string {
	if a.Given == "" {
		return a.Family
	}
	s := a.Family + ", " + a.Given
	return strings.ReplaceAll(s, ". ", ".\\ ")
}

// formatAuthorACS renders one author in ACS style: "Family, G. I.".
func formatAuthorACS(a reference.Author) string {
	if a.Given == "" {
		return a.Family
	}
	var initials []string
	for _, name := range strings.Fields(a.Given) {
		initials = append(initials, string([]rune(name)[0]))
	}
	return a.Family + ", " + strings.Join(initials, ". ") + "."
}

// bibAuthors joins all authors with " and ", per BibTeX convention.
func bibAuthors(authors []reference.Author) string {
	parts := make([]string, len(authors))
	for i, a := range authors {
		parts[i] = formatAuthorBib(a)
	}
	return strings.Join(parts, " and ")
}

// acsAuthors joins all authors with "; ", per ACS citation convention.
func acsAuthors(authors []reference.Author) string {
	parts := make([]string, len(authors))
	for i, a := range authors {
		parts[i] = formatAuthorACS(a)
	}
	return strings.Join(parts, "; ")
}
