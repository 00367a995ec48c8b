// Package render turns bibliographic records into formatted citations.
//
// Rendering is deterministic: the same record and format always produce
// byte-identical output. Nothing in this package performs I/O.
package render

import (
	"errors"
	"fmt"

	"github.com/yongrenjie/cygnet/internal/reference"
)

// ErrUnsupportedFormat indicates an unrecognized citation format tag.
var ErrUnsupportedFormat = errors.New("unsupported citation format")

// Format identifies a citation output format.
type Format string

// Supported citation formats. Note that MarkdownLong is tagged "Markdown"
// (capitalized): the long form includes authors and title, the short form
// only the journal reference.
const (
	BibLaTeX      Format = "bib"
	MarkdownShort Format = "markdown"
	MarkdownLong  Format = "Markdown"
	Word          Format = "word"
	PlainDOI      Format = "doi"
)

// formatAliases maps accepted tags (including single-letter abbreviations)
// to their canonical Format.
var formatAliases = map[string]Format{
	"bib":      BibLaTeX,
	"b":        BibLaTeX,
	"markdown": MarkdownShort,
	"m":        MarkdownShort,
	"Markdown": MarkdownLong,
	"M":        MarkdownLong,
	"word":     Word,
	"w":        Word,
	"doi":      PlainDOI,
	"d":        PlainDOI,
}

// ParseFormat resolves a format tag to a canonical Format. Tags are
// case-sensitive ("markdown" and "Markdown" are distinct formats).
func ParseFormat(tag string) (Format, error) {
	if f, ok := formatAliases[tag]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
}

// Formats lists the canonical format tags, for help text.
func Formats() []string {
	return []string{string(BibLaTeX), string(MarkdownShort), string(MarkdownLong), string(Word), string(PlainDOI)}
}

// Render formats a reference in the given format.
func Render(ref reference.Reference, f Format) (string, error) {
	switch f {
	case BibLaTeX:
		return toBibLaTeX(ref), nil
	case MarkdownShort:
		return toMarkdown(ref, false), nil
	case MarkdownLong:
		return toMarkdown(ref, true), nil
	case Word:
		return toWord(ref), nil
	case PlainDOI:
		return ref.DOI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
