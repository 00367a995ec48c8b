package crossref

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yongrenjie/cygnet/internal/doi"
)

// workJSON is a minimal valid works response for 10.1021/acs.jpca.1c02621.
const workJSON = `{
  "status": "ok",
  "message": {
    "DOI": "10.1021/acs.jpca.1c02621",
    "type": "journal-article",
    "title": ["Parallel Experiments in NMR"],
    "author": [{"given": "Jonathan R. J.", "family": "Yong"}],
    "container-title": ["The Journal of Physical Chemistry A"],
    "short-container-title": ["J. Phys. Chem. A"],
    "published-print": {"date-parts": [[2021, 6, 17]]},
    "volume": "125",
    "issue": "23",
    "page": "5040-5046"
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	base := []ClientOption{WithBaseURL(srv.URL), WithBackoff(time.Millisecond)}
	return NewClient(append(base, opts...)...)
}

func TestGetWork(t *testing.T) {
	var gotPath, gotAccept string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(workJSON))
	})

	ref, err := c.GetWork(context.Background(), doi.MustParse("10.1021/acs.jpca.1c02621"))
	if err != nil {
		t.Fatalf("GetWork: %v", err)
	}

	if gotPath != "/works/10.1021/acs.jpca.1c02621" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept header = %q", gotAccept)
	}
	if ref.Title != "Parallel Experiments in NMR" {
		t.Errorf("Title = %q", ref.Title)
	}
	if ref.Year != 2021 {
		t.Errorf("Year = %d", ref.Year)
	}
}

func TestGetWorkPoliteUserAgent(t *testing.T) {
	var gotUA string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(workJSON))
	}, WithMailto("someone@example.com"))

	if _, err := c.GetWork(context.Background(), doi.MustParse("10.1/abc")); err != nil {
		t.Fatalf("GetWork: %v", err)
	}
	if gotUA != "cygnet/1.0 (https://github.com/yongrenjie/cygnet; mailto:someone@example.com)" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestGetWorkNotFound(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "Resource not found.", http.StatusNotFound)
	})

	_, err := c.GetWork(context.Background(), doi.MustParse("10.1/nonexistent"))
	if !IsNotFound(err) {
		t.Fatalf("GetWork error = %v, want ErrNotFound", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("4xx was retried: %d calls", n)
	}
}

func TestGetWorkRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 3 {
			http.Error(w, "upstream broken", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(workJSON))
	})

	ref, err := c.GetWork(context.Background(), doi.MustParse("10.1021/acs.jpca.1c02621"))
	if err != nil {
		t.Fatalf("GetWork after transient failures: %v", err)
	}
	if ref.Title == "" {
		t.Error("expected populated record after retries")
	}
	if n := calls.Load(); n != 4 {
		t.Errorf("expected 4 attempts, got %d", n)
	}
}

func TestGetWorkRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	})

	_, err := c.GetWork(context.Background(), doi.MustParse("10.1/abc"))
	if !IsUnavailable(err) {
		t.Fatalf("GetWork error = %v, want ErrServiceUnavailable", err)
	}
	// Initial attempt plus DefaultRetries.
	if n := calls.Load(); n != int32(DefaultRetries)+1 {
		t.Errorf("expected %d attempts, got %d", DefaultRetries+1, n)
	}
}

func TestGetWorkTimeout(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(workJSON))
	}, WithTimeout(time.Millisecond))

	_, err := c.GetWork(context.Background(), doi.MustParse("10.1/abc"))
	if !IsTimeout(err) {
		t.Fatalf("GetWork error = %v, want ErrLookupTimeout", err)
	}
}

func TestGetWorkCallerDeadline(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(workJSON))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := c.GetWork(ctx, doi.MustParse("10.1/abc"))
	if !IsTimeout(err) {
		t.Fatalf("GetWork error = %v, want ErrLookupTimeout", err)
	}
}

func TestGetWorkMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>surprise</html>"},
		{name: "missing title", body: `{"status":"ok","message":{"author":[{"family":"Doe"}],"issued":{"date-parts":[[2020]]}}}`},
		{name: "missing authors", body: `{"status":"ok","message":{"title":["T"],"issued":{"date-parts":[[2020]]}}}`},
		{name: "missing year", body: `{"status":"ok","message":{"title":["T"],"author":[{"family":"Doe"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			_, err := c.GetWork(context.Background(), doi.MustParse("10.1/abc"))
			if !IsMalformed(err) {
				t.Errorf("GetWork error = %v, want ErrMalformedMetadata", err)
			}
		})
	}
}

func TestGetWorkTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	c := NewClient(WithBaseURL(srv.URL), WithBackoff(time.Millisecond), WithRetries(1))
	_, err := c.GetWork(context.Background(), doi.MustParse("10.1/abc"))
	if !IsUnavailable(err) {
		t.Fatalf("GetWork error = %v, want ErrServiceUnavailable", err)
	}
}

func TestWorkJSONDecodes(t *testing.T) {
	var wr worksResponse
	if err := json.Unmarshal([]byte(workJSON), &wr); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	if wr.Message.DOI != "10.1021/acs.jpca.1c02621" {
		t.Errorf("fixture DOI = %q", wr.Message.DOI)
	}
	if errs := wr.Message.PublishedPrint.year(); errs != 2021 {
		t.Errorf("fixture year = %d", errs)
	}
}
