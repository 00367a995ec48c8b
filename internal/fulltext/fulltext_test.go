package fulltext

import (
	"errors"
	"testing"

	"github.com/yongrenjie/cygnet/internal/doi"
)

func TestPDFURL(t *testing.T) {
	tests := []struct {
		name string
		doi  string
		want string
	}{
		{
			name: "acs",
			doi:  "10.1021/acs.jpca.1c02621",
			want: "https://pubs.acs.org/doi/pdf/10.1021/acs.jpca.1c02621",
		},
		{
			name: "wiley",
			doi:  "10.1002/mrc.4793",
			want: "https://onlinelibrary.wiley.com/doi/pdfdirect/10.1002/mrc.4793",
		},
		{
			name: "nature uses suffix only",
			doi:  "10.1038/s41586-020-2649-2",
			want: "https://www.nature.com/articles/s41586-020-2649-2.pdf",
		},
		{
			name: "springer",
			doi:  "10.1007/s10858-018-0181-6",
			want: "https://link.springer.com/content/pdf/10.1007/s10858-018-0181-6.pdf",
		},
		{
			name: "rsc",
			doi:  "10.1039/d0cp04859c",
			want: "https://pubs.rsc.org/en/content/articlepdf/10.1039/d0cp04859c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PDFURL(doi.MustParse(tt.doi))
			if err != nil {
				t.Fatalf("PDFURL(%q): %v", tt.doi, err)
			}
			if got != tt.want {
				t.Errorf("PDFURL(%q) = %q, want %q", tt.doi, got, tt.want)
			}
		})
	}
}

func TestPDFURLUnknownPrefix(t *testing.T) {
	_, err := PDFURL(doi.MustParse("10.9999/unknown.2020"))
	if !errors.Is(err, ErrUnknownPublisher) {
		t.Fatalf("PDFURL error = %v, want ErrUnknownPublisher", err)
	}
}

func TestPublisher(t *testing.T) {
	if got := Publisher(doi.MustParse("10.1021/abc")); got != "ACS" {
		t.Errorf("Publisher = %q, want ACS", got)
	}
	if got := Publisher(doi.MustParse("10.9999/abc")); got != "" {
		t.Errorf("Publisher for unknown prefix = %q, want empty", got)
	}
}
