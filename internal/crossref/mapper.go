package crossref

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/yongrenjie/cygnet/internal/doi"
	"github.com/yongrenjie/cygnet/internal/reference"
)

// defaultJournalAbbrevs corrects journal abbreviations that Crossref reports
// in a non-CASSI form.
var defaultJournalAbbrevs = map[string]string{
	"Proceedings of the National Academy of Sciences":     "Proc. Natl. Acad. Sci. U. S. A.",
	"The Journal of Chemical Physics":                     "J. Chem. Phys.",
	"Journal of Magnetic Resonance":                       "J. Magn. Reson.",
	"Journal of Magnetic Resonance (1969)":                "J. Magn. Reson.",
	"Progress in Nuclear Magnetic Resonance Spectroscopy": "Prog. Nucl. Magn. Reson. Spectrosc.",
	"Magn Reson Chem":                                     "Magn. Reson. Chem.",
	"Chemical Physics Letters":                            "Chem. Phys. Lett.",
	"Biochemistry Journal":                                "Biochem. J.",
	"Journal of Magnetic Resonance, Series A":             "J. Magn. Reson., Ser. A",
	"Journal of Magnetic Resonance, Series B":             "J. Magn. Reson., Ser. B",
	"J Biomol NMR":                                        "J. Biomol. NMR",
	"Annual Reports on NMR Spectroscopy":                  "Annu. Rep. NMR Spectrosc.",
	"Angewandte Chemie International Edition":             "Angew. Chem. Int. Ed.",
}

// greekTokens maps the ".alpha."-style tokens that ACS uses in older titles
// to the corresponding Greek letters.
var greekTokens = map[string]string{
	"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ",
	"Epsilon": "Ε", "Zeta": "Ζ", "Eta": "Η", "Theta": "Θ",
	"Iota": "Ι", "Kappa": "Κ", "Lamda": "Λ", "Mu": "Μ",
	"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο", "Pi": "Π",
	"Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
	"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
	"iota": "ι", "kappa": "κ", "lamda": "λ", "mu": "μ",
	"nu": "ν", "xi": "ξ", "omicron": "ο", "pi": "π",
	"rho": "ρ", "sigma": "σ", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
}

// mapWork converts a Crossref work into a Reference, enforcing the required
// fields: a title, at least one author or editor, and a year.
func mapWork(d doi.DOI, w work, abbrevs map[string]string) (reference.Reference, error) {
	if len(w.Title) == 0 || w.Title[0] == "" {
		return reference.Reference{}, fmt.Errorf("%w: no title for %s", ErrMalformedMetadata, d)
	}

	contributors := w.Author
	if len(contributors) == 0 {
		contributors = w.Editor
	}
	if len(contributors) == 0 {
		return reference.Reference{}, fmt.Errorf("%w: no authors or editors for %s", ErrMalformedMetadata, d)
	}

	// Prefer the print date; many online-first works have no print date at
	// all, and some records carry only "issued".
	year := w.PublishedPrint.year()
	if year == 0 {
		year = w.PublishedOnline.year()
	}
	if year == 0 {
		year = w.Issued.year()
	}
	if year == 0 {
		return reference.Reference{}, fmt.Errorf("%w: no publication year for %s", ErrMalformedMetadata, d)
	}

	ref := reference.Reference{
		DOI:       d.String(),
		Title:     mapTitle(w.Title[0]),
		Authors:   mapAuthors(contributors),
		Year:      year,
		Volume:    w.Volume,
		Issue:     w.Issue,
		Pages:     w.Page,
		Publisher: w.Publisher,
		Type:      w.Type,
	}

	if len(w.ContainerTitle) > 0 {
		ref.JournalLong = w.ContainerTitle[0]
	}
	// Some records have an empty short-container-title list; fall back to
	// the long form (10.1126/science.280.5362.421 is one such).
	ref.JournalShort = ref.JournalLong
	if len(w.ShortContainerTitle) > 0 && w.ShortContainerTitle[0] != "" {
		ref.JournalShort = w.ShortContainerTitle[0]
	}
	if corrected, ok := abbrevs[ref.JournalShort]; ok {
		ref.JournalShort = corrected
	}

	return ref, nil
}

// mapTitle converts ACS ".alpha."-style tokens to Greek letters.
func mapTitle(title string) string {
	for token, letter := range greekTokens {
		dotted := "." + token + "."
		if strings.Contains(title, dotted) {
			title = strings.ReplaceAll(title, dotted, letter)
		}
	}
	return title
}

// mapAuthors normalizes contributor names. Crossref sometimes reports
// run-together initials ("J.R.J."); respace them so downstream formatting
// sees "J. R. J.".
func mapAuthors(contributors []workAuthor) []reference.Author {
	authors := make([]reference.Author, len(contributors))
	for i, a := range contributors {
		authors[i] = reference.Author{
			Given:  respaceInitials(norm.NFKC.String(a.Given)),
			Family: norm.NFKC.String(a.Family),
			ORCID:  trimORCID(a.ORCID),
		}
	}
	return authors
}

// trimORCID strips the URL prefix Crossref wraps around ORCID iDs.
func trimORCID(orcid string) string {
	orcid = strings.TrimPrefix(orcid, "https://orcid.org/")
	return strings.TrimPrefix(orcid, "http://orcid.org/")
}

// respaceInitials turns "J.R.J." into "J. R. J.".
func respaceInitials(given string) string {
	s := strings.ReplaceAll(given, ". ", ".")
	s = strings.ReplaceAll(s, ".", ". ")
	return strings.TrimRight(s, " ")
}
