package reference

// Author represents a single author with optional ORCID identifier.
type Author struct {
	Given  string `json:"given"`           // Given name(s), e.g. "Jonathan R. J."
	Family string `json:"family"`          // Family name, e.g. "Yong"
	ORCID  string `json:"orcid,omitempty"` // ORCID identifier (without URL prefix)
}
