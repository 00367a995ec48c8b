package main

// Exit codes. Editors and scripts branch on these rather than parsing
// error text.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitInvalidDOI  = 2 // Identifier is not a valid DOI
	ExitNotFound    = 3 // DOI unknown to the metadata service
	ExitUnavailable = 4 // Metadata service unavailable (retries exhausted)
	ExitTimeout     = 5 // Lookup timed out
	ExitBadMetadata = 6 // Metadata unusable (missing required fields)
	ExitBadFormat   = 7 // Unsupported citation format tag
)
