// Package doi validates and canonicalizes Digital Object Identifiers.
package doi

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// ErrInvalidIdentifier indicates a string that cannot be a DOI.
var ErrInvalidIdentifier = errors.New("invalid DOI")

// Common prefixes that people paste along with the DOI itself.
var strippablePrefixes = []string{
	"https://doi.org/",
	"http://doi.org/",
	"https://dx.doi.org/",
	"http://dx.doi.org/",
	"dx.doi.org/",
	"doi.org/",
	"doi:",
}

// DOI is a canonical (trimmed, lowercase) Digital Object Identifier of the
// form prefix/suffix. The zero value is invalid; construct via Parse.
type DOI struct {
	value string
}

// Parse validates and canonicalizes a raw DOI string. It strips common URL
// and "doi:" prefixes, trims whitespace, and lowercases the result, per the
// registry convention that DOI matching is case-insensitive.
func Parse(raw string) (DOI, error) {
	s := strings.TrimSpace(raw)

	for _, prefix := range strippablePrefixes {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = s[len(prefix):]
			break
		}
	}

	if s == "" {
		return DOI{}, fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return DOI{}, fmt.Errorf("%w: %q contains whitespace", ErrInvalidIdentifier, raw)
	}

	// The registrant prefix is everything before the first slash. The suffix
	// may itself contain slashes (e.g. 10.1126/science.280.5362.421 does not,
	// but 10.1002/(SICI)1097-0231 variants do).
	prefix, suffix, found := strings.Cut(s, "/")
	if !found {
		return DOI{}, fmt.Errorf("%w: %q has no prefix/suffix separator", ErrInvalidIdentifier, raw)
	}
	if prefix == "" || suffix == "" {
		return DOI{}, fmt.Errorf("%w: %q has an empty prefix or suffix", ErrInvalidIdentifier, raw)
	}

	return DOI{value: strings.ToLower(s)}, nil
}

// MustParse is Parse that panics on error. For use in tests and constants.
func MustParse(raw string) DOI {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the canonical DOI string.
func (d DOI) String() string { return d.value }

// IsZero reports whether d is the zero (unparsed) value.
func (d DOI) IsZero() bool { return d.value == "" }

// Prefix returns the registrant prefix (the part before the first slash).
func (d DOI) Prefix() string {
	prefix, _, _ := strings.Cut(d.value, "/")
	return prefix
}

// Suffix returns the part after the first slash.
func (d DOI) Suffix() string {
	_, suffix, _ := strings.Cut(d.value, "/")
	return suffix
}

// MarshalText implements encoding.TextMarshaler, so a DOI serializes as its
// canonical string.
func (d DOI) MarshalText() ([]byte, error) {
	return []byte(d.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (d *DOI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// URL returns the doi.org resolver URL for this DOI. Path segments are
// escaped so that parentheses and semicolons survive Markdown and HTML
// conversion.
func (d DOI) URL() string {
	// PathEscape escapes the slash separators too; put those back.
	escaped := strings.ReplaceAll(url.PathEscape(d.value), "%2F", "/")
	return "https://doi.org/" + escaped
}
