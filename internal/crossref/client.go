// Package crossref fetches bibliographic metadata for DOIs from the
// Crossref REST API.
package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/yongrenjie/cygnet/internal/doi"
	"github.com/yongrenjie/cygnet/internal/reference"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout bounds a single HTTP attempt. The caller's context
	// deadline bounds the lookup as a whole, retries included.
	DefaultTimeout = 15 * time.Second

	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 3

	// DefaultBackoff is the delay before the first retry; it doubles on
	// each subsequent attempt.
	DefaultBackoff = 500 * time.Millisecond

	// RateLimit keeps us inside Crossref's polite-pool guidance.
	RateLimit = 10.0
)

// Client is a rate-limited HTTP client for the Crossref works API.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
	userAgent  string
	retries    int
	backoff    time.Duration
	abbrevs    map[string]string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithMailto sets the contact address sent in the User-Agent header, which
// admits requests to Crossref's polite pool.
func WithMailto(addr string) ClientOption {
	return func(c *Client) { c.mailto = addr }
}

// WithTimeout bounds each HTTP attempt.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRetries sets how many times a transient failure is retried.
func WithRetries(n int) ClientOption {
	return func(c *Client) { c.retries = n }
}

// WithBackoff sets the initial retry delay (doubled per attempt).
func WithBackoff(d time.Duration) ClientOption {
	return func(c *Client) { c.backoff = d }
}

// WithJournalAbbrevs sets journal-title corrections applied on top of the
// built-in table. Keys are the titles Crossref reports, values the desired
// abbreviated form.
func WithJournalAbbrevs(m map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range m {
			c.abbrevs[k] = v
		}
	}
}

// NewClient creates a Crossref API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		retries:    DefaultRetries,
		backoff:    DefaultBackoff,
		abbrevs:    map[string]string{},
	}
	for k, v := range defaultJournalAbbrevs {
		c.abbrevs[k] = v
	}

	if addr := os.Getenv("CROSSREF_MAILTO"); addr != "" {
		c.mailto = addr
	}

	for _, opt := range opts {
		opt(c)
	}

	c.userAgent = "cygnet/1.0 (https://github.com/yongrenjie/cygnet"
	if c.mailto != "" {
		c.userAgent += "; mailto:" + c.mailto
	}
	c.userAgent += ")"

	return c
}

// GetWork fetches the bibliographic record for a canonical DOI. Transient
// failures (5xx, transport errors) are retried with exponential backoff;
// a 4xx response is final and reported as ErrNotFound.
func (c *Client) GetWork(ctx context.Context, d doi.DOI) (reference.Reference, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			if err := sleepContext(ctx, c.backoff<<(attempt-1)); err != nil {
				return reference.Reference{}, fmt.Errorf("%w: %v", ErrLookupTimeout, err)
			}
		}

		ref, err := c.fetch(ctx, d)
		if err == nil {
			return ref, nil
		}
		if !errors.Is(err, ErrServiceUnavailable) {
			return reference.Reference{}, err
		}
		lastErr = err
	}

	return reference.Reference{}, lastErr
}

// fetch performs a single lookup attempt.
func (c *Client) fetch(ctx context.Context, d doi.DOI) (reference.Reference, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return reference.Reference{}, fmt.Errorf("%w: %v", ErrLookupTimeout, err)
	}

	u := fmt.Sprintf("%s/works/%s", c.baseURL, escapeDOIPath(d))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return reference.Reference{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return reference.Reference{}, fmt.Errorf("%w: %v", ErrLookupTimeout, err)
		}
		return reference.Reference{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp, d); err != nil {
		return reference.Reference{}, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		if isTimeout(err) {
			return reference.Reference{}, fmt.Errorf("%w: %v", ErrLookupTimeout, err)
		}
		return reference.Reference{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	var wr worksResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return reference.Reference{}, fmt.Errorf("%w: parsing response for %s: %v", ErrMalformedMetadata, d, err)
	}

	return mapWork(d, wr.Message, c.abbrevs)
}

// checkHTTPErrors maps an HTTP status to the failure taxonomy: 4xx means an
// unknown or withdrawn DOI, 5xx a transient service problem.
func checkHTTPErrors(resp *http.Response, d doi.DOI) error {
	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %v", ErrServiceUnavailable,
			&APIError{StatusCode: resp.StatusCode, DOI: d.String()})
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %v", ErrNotFound,
			&APIError{StatusCode: resp.StatusCode, DOI: d.String()})
	}
	return nil
}

// escapeDOIPath embeds a DOI in a URL path, keeping its slashes.
func escapeDOIPath(d doi.DOI) string {
	escaped := url.PathEscape(d.String())
	return replaceEscapedSlash(escaped)
}

func replaceEscapedSlash(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if i+2 < len(s) && s[i] == '%' && s[i+1] == '2' && (s[i+2] == 'F' || s[i+2] == 'f') {
			out = append(out, '/')
			i += 2
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// isTimeout reports whether a transport error was a deadline or
// cancellation rather than a connectivity failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return true
	}
	return false
}

// sleepContext waits for d or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
