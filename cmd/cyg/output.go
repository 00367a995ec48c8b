package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/yongrenjie/cygnet/internal/crossref"
	"github.com/yongrenjie/cygnet/internal/doi"
	"github.com/yongrenjie/cygnet/internal/render"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		enc := json.NewEncoder(os.Stderr)
		_ = enc.Encode(map[string]string{"error": msg})
	}
	os.Exit(code)
}

// exitCodeFor maps a resolution failure to its exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, doi.ErrInvalidIdentifier):
		return ExitInvalidDOI
	case errors.Is(err, render.ErrUnsupportedFormat):
		return ExitBadFormat
	case crossref.IsNotFound(err):
		return ExitNotFound
	case crossref.IsTimeout(err):
		return ExitTimeout
	case crossref.IsUnavailable(err):
		return ExitUnavailable
	case crossref.IsMalformed(err):
		return ExitBadMetadata
	default:
		return ExitError
	}
}

// exitResolveError collapses any resolution failure into the single
// "could not resolve" signal that editor integrations expect.
func exitResolveError(identifier string, err error) {
	exitWithError(exitCodeFor(err), "could not resolve %q: %v", identifier, err)
}
