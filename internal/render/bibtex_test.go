package render

import (
	"strings"
	"testing"

	"github.com/yongrenjie/cygnet/internal/reference"
)

func TestToBibLaTeX(t *testing.T) {
	got := toBibLaTeX(sampleRef())
	want := `@article{doe2020-sx,
  doi = {10.1000/jy.2020.1},
  author = {Doe, Jane},
  journal = {J.\ Y.},
  title = {A Study of X},
  year = {2020},
  volume = {12},
  issue = {3},
  pages = {100--110},
}
`
	if got != want {
		t.Errorf("toBibLaTeX mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestToBibLaTeXOptionalFields(t *testing.T) {
	ref := reference.Reference{
		DOI:         "10.1000/xyz",
		Title:       "Minimal Work",
		Authors:     []reference.Author{{Given: "Ada", Family: "Lovelace"}},
		JournalLong: "Annals",
		Year:        1843,
	}
	got := toBibLaTeX(ref)

	for _, absent := range []string{"volume", "issue", "pages"} {
		if strings.Contains(got, absent) {
			t.Errorf("empty %s field should be omitted:\n%s", absent, got)
		}
	}
	if !strings.Contains(got, "journal = {Annals}") {
		t.Errorf("long journal title should be used as fallback:\n%s", got)
	}
}

func TestToBibLaTeXEscaping(t *testing.T) {
	ref := sampleRef()
	ref.Title = "Salts & Acids: 100% of H_2O {at} 25°"
	got := toBibLaTeX(ref)

	if !strings.Contains(got, `Salts \& Acids`) {
		t.Errorf("ampersand not escaped:\n%s", got)
	}
	if !strings.Contains(got, `100\%`) {
		t.Errorf("percent not escaped:\n%s", got)
	}
	if !strings.Contains(got, `H\_2O`) {
		t.Errorf("underscore not escaped:\n%s", got)
	}
	if !strings.Contains(got, `\{at\}`) {
		t.Errorf("braces not escaped:\n%s", got)
	}
}

func TestToBibLaTeXUnicodeAuthors(t *testing.T) {
	ref := sampleRef()
	ref.Authors = []reference.Author{
		{Given: "Jürgen", Family: "Müller"},
		{Given: "René", Family: "Descartes"},
	}
	got := toBibLaTeX(ref)

	if !strings.Contains(got, `M{\"u}ller, J{\"u}rgen`) {
		t.Errorf("umlaut not converted to LaTeX:\n%s", got)
	}
	if !strings.Contains(got, `Ren{\'e}`) {
		t.Errorf("acute accent not converted to LaTeX:\n%s", got)
	}
	if !strings.Contains(got, " and ") {
		t.Errorf("authors not joined with ' and ':\n%s", got)
	}
}

func TestEntryType(t *testing.T) {
	tests := []struct {
		crossrefType string
		want         string
	}{
		{crossrefType: "journal-article", want: "article"},
		{crossrefType: "book", want: "book"},
		{crossrefType: "monograph", want: "book"},
		{crossrefType: "book-chapter", want: "incollection"},
		{crossrefType: "proceedings-article", want: "inproceedings"},
		{crossrefType: "dissertation", want: "thesis"},
		{crossrefType: "", want: "article"},
	}
	for _, tt := range tests {
		ref := reference.Reference{Type: tt.crossrefType}
		if got := entryType(ref); got != tt.want {
			t.Errorf("entryType(%q) = %q, want %q", tt.crossrefType, got, tt.want)
		}
	}
}

func TestProceedingsUseBooktitle(t *testing.T) {
	ref := sampleRef()
	ref.Type = "proceedings-article"
	got := toBibLaTeX(ref)
	if !strings.Contains(got, "booktitle = {") {
		t.Errorf("proceedings entry should use booktitle:\n%s", got)
	}
	if strings.Contains(got, "  journal = {") {
		t.Errorf("proceedings entry should not use journal:\n%s", got)
	}
}
