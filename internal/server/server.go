// Package server exposes the crawl pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aireadyhq/crawler/models"
	"github.com/aireadyhq/crawler/pkg/crawler"
	"github.com/aireadyhq/crawler/pkg/storage"
)

type Server struct {
	crawler *crawler.Crawler
	store   *storage.DB
	logger  *slog.Logger
}

// New builds the HTTP server. store may be nil; crawls are then not
// persisted.
func New(c *crawler.Crawler, store *storage.DB, logger *slog.Logger) *Server {
	return &Server{crawler: c, store: store, logger: logger}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/api/crawl", s.handleCrawl)
	return s.logRequests(mux)
}

// handleCrawl runs one crawl request. A bad URL is a 400, an unreachable
// homepage a 502; both carry the success=false envelope. Everything else
// returns success=true with a best-effort result.
func (s *Server) handleCrawl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, models.CrawlResponse{Success: false, Error: "method not allowed"})
		return
	}

	var req models.CrawlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, models.CrawlResponse{Success: false, Error: "invalid payload: url is required"})
		return
	}

	if _, err := crawler.NormalizeRequestURL(req.URL); err != nil {
		writeJSON(w, http.StatusBadRequest, models.CrawlResponse{Success: false, Error: err.Error()})
		return
	}

	result, err := s.crawler.Crawl(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, models.CrawlResponse{Success: false, Error: err.Error()})
		return
	}

	if s.store != nil {
		if _, err := s.store.SaveCrawl(result); err != nil {
			s.logger.Warn("failed to persist crawl", "url", result.URL, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, models.CrawlResponse{Success: true, Data: result})
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration_ms", time.Since(start).Milliseconds())
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
