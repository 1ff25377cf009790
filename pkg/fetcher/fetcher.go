// Package fetcher wraps outbound HTTP: page fetches with charset-aware HTML
// parsing, and the rendering-proxy client used for client-rendered sites.
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

const acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Page is one fetched and parsed document plus its transport facts.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	HTML       string
	Doc        *goquery.Document
	LoadTime   time.Duration
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher builds a fetcher with a hard per-request timeout. Redirects are
// followed by default.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		userAgent: userAgent,
	}
}

// GetPage fetches one URL and parses the response into a goquery document.
// Non-2xx statuses and transport errors are returned as errors; the caller
// decides whether that is fatal (homepage) or a silent drop (sub-pages).
func (f *Fetcher) GetPage(ctx context.Context, rawURL string) (*Page, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHTML)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	html, err := decodeToUTF8(data, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &Page{
		URL:        rawURL,
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		HTML:       html,
		Doc:        doc,
		LoadTime:   time.Since(start),
	}, nil
}

// decodeToUTF8 converts the body to UTF-8 using the declared or sniffed
// charset, keeping the bytes as-is when they are already valid UTF-8.
func decodeToUTF8(data []byte, contentType string) (string, error) {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if utf8.Valid(data) {
			return string(data), nil
		}
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}
	return string(bytes.TrimPrefix(decoded, []byte("\xef\xbb\xbf"))), nil
}
