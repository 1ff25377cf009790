package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Renderer asks a third-party rendering proxy to execute a page's scripts
// and hand back a readable markdown/plain-text version. Only invoked when
// the SPA heuristics fire.
type Renderer struct {
	client   *http.Client
	endpoint string
}

func NewRenderer(endpoint string, timeout time.Duration) *Renderer {
	return &Renderer{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

// RenderText requests a markdown rendering of the target URL. An empty body
// is reported as an error so callers can fall back to their static data.
func (r *Renderer) RenderText(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"/"+target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("X-Return-Format", "markdown")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("render proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("render proxy returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read render response: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("render proxy returned empty body")
	}
	return text, nil
}
