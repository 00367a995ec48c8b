package crossref

// worksResponse is the envelope returned by /works/{doi}.
type worksResponse struct {
	Status  string `json:"status"`
	Message work   `json:"message"`
}

// work is the subset of a Crossref work record that we consume.
type work struct {
	DOI                 string       `json:"DOI"`
	Type                string       `json:"type"`
	Title               []string     `json:"title"`
	Author              []workAuthor `json:"author"`
	Editor              []workAuthor `json:"editor"`
	ContainerTitle      []string     `json:"container-title"`
	ShortContainerTitle []string     `json:"short-container-title"`
	PublishedPrint      dateParts    `json:"published-print"`
	PublishedOnline     dateParts    `json:"published-online"`
	Issued              dateParts    `json:"issued"`
	Volume              string       `json:"volume"`
	Issue               string       `json:"issue"`
	Page                string       `json:"page"`
	Publisher           string       `json:"publisher"`
}

type workAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	ORCID  string `json:"ORCID"`
}

// dateParts holds Crossref's nested date representation,
// e.g. {"date-parts": [[2021, 4, 13]]}.
type dateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// year returns the year component, or 0 if absent.
func (d dateParts) year() int {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0
	}
	return d.DateParts[0][0]
}
