package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultBaseURL is the page URL template; %d is the page number
const DefaultBaseURL = "http://svt.se/texttv/%d.html"

// HTTPSource downloads pages from the teletext web service
type HTTPSource struct {
	client    *http.Client
	baseURL   string
	charset   string
	userAgent string
	debug     bool
}

// HTTPOption configures an HTTPSource
type HTTPOption func(*HTTPSource)

// WithTimeout bounds every request
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithCharset sets the charset label used to decode responses
func WithCharset(label string) HTTPOption {
	return func(s *HTTPSource) {
		if label != "" {
			s.charset = label
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) HTTPOption {
	return func(s *HTTPSource) { s.userAgent = ua }
}

// WithHTTPClient replaces the underlying client
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithDebug logs every request URL
func WithDebug(debug bool) HTTPOption {
	return func(s *HTTPSource) { s.debug = debug }
}

// NewHTTPSource creates a source for the given URL template
func NewHTTPSource(baseURL string, opts ...HTTPOption) *HTTPSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := &HTTPSource{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		charset: DefaultCharset,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch downloads and cleans a page
func (s *HTTPSource) Fetch(ctx context.Context, number int) (string, error) {
	if err := ValidateNumber(number); err != nil {
		return "", err
	}

	url := fmt.Sprintf(s.baseURL, number)
	if s.debug {
		log.Printf("source: GET %s", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", Transport(number, fmt.Errorf("build request: %w", err))
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", Transport(number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", Transport(number, fmt.Errorf("unexpected status %s", resp.Status))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", Transport(number, fmt.Errorf("read body: %w", err))
	}

	return Parse(number, raw, s.charset, resp.Header.Get("Content-Type"))
}
