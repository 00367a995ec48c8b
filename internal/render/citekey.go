package render

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yongrenjie/cygnet/internal/reference"
)

// stopWords are skipped when deriving the title suffix of a cite key.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "and": true,
	"in": true, "on": true, "for": true, "to": true, "with": true,
}

// asciiFallbacks covers letters that NFD decomposition cannot reduce to
// ASCII (they have no combining-mark form).
var asciiFallbacks = strings.NewReplacer(
	"ø", "o", "Ø", "O",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ß", "ss",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
)

// stripDiacritics decomposes to NFD and drops combining marks, then applies
// the fallback table, so "Müller" becomes "Muller" and "Søren" "Soren".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CiteKey derives a deterministic citation key from a reference:
// transliterated lowercase family name of the first author, the year, and a
// two-letter disambiguating fragment from the title, e.g. "yong2021-po".
func CiteKey(ref reference.Reference) string {
	family := "unknown"
	if len(ref.Authors) > 0 && ref.Authors[0].Family != "" {
		family = sanitizeForCiteKey(Transliterate(ref.Authors[0].Family))
	}

	year := ref.Year
	if year == 0 {
		year = 9999
	}

	return fmt.Sprintf("%s%d-%s", strings.ToLower(family), year, titleSuffix(Transliterate(ref.Title)))
}

// Transliterate reduces a string to its closest ASCII form.
func Transliterate(s string) string {
	out, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		out = s
	}
	return asciiFallbacks.Replace(out)
}

// sanitizeForCiteKey removes anything that is not a letter or digit.
func sanitizeForCiteKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// titleSuffix builds a two-letter fragment from the initials of the first
// significant title words, padded with 'x' for very short titles.
func titleSuffix(title string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if stopWords[word] || word == "" {
			continue
		}
		if c := word[0]; (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
		if b.Len() >= 2 {
			break
		}
	}
	for b.Len() < 2 {
		b.WriteByte('x')
	}
	return b.String()
}
