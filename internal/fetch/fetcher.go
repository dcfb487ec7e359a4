// internal/fetch/fetcher.go
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Fetcher retrieves a single HTML page over HTTP. It uses a raw HTTP request
// and goquery for parsing - the target page is fully server-rendered.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Page holds the parsed document together with response metadata.
type Page struct {
	Document     *goquery.Document
	URL          string
	StatusCode   int
	FetchedAt    time.Time
	ResponseTime int64
}

// New creates a Fetcher with an optimized HTTP client
func New(timeout time.Duration, userAgent string) *Fetcher {
	// Keep-Alive for connection reuse across periodic runs in one process
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
	}

	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves and parses the page at url. Extra headers are set after
// the defaults, so callers can override any of them.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (*Page, error) {
	start := time.Now()

	log.Debug().
		Str("url", url).
		Msg("Starting fetch")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Browser-mimicking defaults. Accept-Encoding is left to the transport
	// so the response body arrives already decompressed.
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, resp.Status, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	responseTime := time.Since(start).Milliseconds()

	log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", responseTime).
		Msg("Fetch completed")

	return &Page{
		Document:     doc,
		URL:          url,
		StatusCode:   resp.StatusCode,
		FetchedAt:    time.Now().UTC(),
		ResponseTime: responseTime,
	}, nil
}

// CloseIdleConnections releases pooled connections held by the client.
func (f *Fetcher) CloseIdleConnections() {
	f.client.CloseIdleConnections()
}
