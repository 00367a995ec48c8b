// Package resolver composes identifier normalization, metadata lookup, and
// citation rendering into a single entry point.
package resolver

import (
	"context"

	"github.com/yongrenjie/cygnet/internal/doi"
	"github.com/yongrenjie/cygnet/internal/reference"
	"github.com/yongrenjie/cygnet/internal/render"
)

// Fetcher is the metadata lookup dependency; *crossref.Client satisfies it.
type Fetcher interface {
	GetWork(ctx context.Context, d doi.DOI) (reference.Reference, error)
}

// Output is the result of a successful resolution.
type Output struct {
	DOI      doi.DOI       `json:"doi"`
	Format   render.Format `json:"format"`
	Citation string        `json:"citation"`
}

// Resolver resolves raw DOI strings to formatted citations. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	fetcher Fetcher
}

// New creates a Resolver around a metadata fetcher.
func New(f Fetcher) *Resolver {
	return &Resolver{fetcher: f}
}

// Resolve turns a raw identifier and a format tag into a citation.
//
// Steps run in order: normalize, validate the format, fetch, render; the
// first failure short-circuits and is returned unchanged, so callers can
// match it against the doi, render, and crossref sentinel errors. The format
// is validated before the fetch so an unsupported tag never costs a network
// call. The context deadline governs the fetch step only.
func (r *Resolver) Resolve(ctx context.Context, identifier, format string) (Output, error) {
	d, err := doi.Parse(identifier)
	if err != nil {
		return Output{}, err
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return Output{}, err
	}

	ref, err := r.fetcher.GetWork(ctx, d)
	if err != nil {
		return Output{}, err
	}

	citation, err := render.Render(ref, f)
	if err != nil {
		return Output{}, err
	}

	return Output{DOI: d, Format: f, Citation: citation}, nil
}
