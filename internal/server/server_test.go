package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/crawler"
	"github.com/aireadyhq/crawler/pkg/fetcher"
	"github.com/aireadyhq/crawler/pkg/robots"
	"github.com/aireadyhq/crawler/pkg/storage"
)

const testSitePage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Test Site</title>
<meta name="description" content="A site used in tests.">
</head>
<body>
<h1>Hello</h1>
<p>This page exists so the crawl pipeline has something realistic to chew on.
It carries a title, a description, one heading and enough words to avoid the
client-rendering heuristics entirely. Nothing here is fancy and that is the
point: the handler tests care about status codes and envelopes, not content
quality. A few more words round out the paragraph nicely.</p>
</body>
</html>`

func newTestServer(t *testing.T, store *storage.DB) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := fetcher.NewFetcher(5*time.Second, "test-agent")
	r := fetcher.NewRenderer("http://127.0.0.1:1", 5*time.Second)
	analyzer := crawler.NewAnalyzer(f, r, logger)
	robotsAnalyzer := robots.NewAnalyzer(5*time.Second, logger)
	c := crawler.New(analyzer, robotsAnalyzer, crawler.MaxPages, logger)
	return New(c, store, logger)
}

func postCrawl(t *testing.T, handler http.Handler, body string) (*httptest.ResponseRecorder, models.CrawlResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/crawl", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp models.CrawlResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, resp
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"ok"`)) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleCrawlSuccess(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_, _ = io.WriteString(w, testSitePage)
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	srv := newTestServer(t, nil)
	rec, resp := postCrawl(t, srv.Handler(), `{"url":"`+site.URL+`"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !resp.Success {
		t.Fatalf("Success = false, error = %s", resp.Error)
	}
	if resp.Data == nil || resp.Data.Title != "Test Site" {
		t.Errorf("Data = %+v", resp.Data)
	}
}

func TestHandleCrawlPersists(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_, _ = io.WriteString(w, testSitePage)
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	srv := newTestServer(t, store)
	rec, _ := postCrawl(t, srv.Handler(), `{"url":"`+site.URL+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	crawls, err := store.ListCrawls(0)
	if err != nil {
		t.Fatalf("ListCrawls: %v", err)
	}
	if len(crawls) != 1 {
		t.Errorf("got %d stored crawls, want 1", len(crawls))
	}
}

func TestHandleCrawlBadRequests(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.Handler()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"url":`},
		{"missing url", `{}`},
		{"unsupported scheme", `{"url":"ftp://example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := postCrawl(t, handler, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if resp.Success {
				t.Error("Success = true for a bad request")
			}
			if resp.Error == "" {
				t.Error("Error message missing")
			}
		})
	}
}

func TestHandleCrawlUnreachableSite(t *testing.T) {
	srv := newTestServer(t, nil)
	rec, resp := postCrawl(t, srv.Handler(), `{"url":"http://127.0.0.1:1"}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if resp.Success {
		t.Error("Success = true for unreachable site")
	}
}

func TestHandleCrawlMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/crawl", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
