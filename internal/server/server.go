// Package server hosts the most recent detection report over HTTP, for
// local dashboard tooling. Its gzip-on-request-header wiring is adapted
// from the teacher's own JSON-RPC HTTP server; the router and the single
// typed value it serves are this module's own.
package server

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Cyfrin/aderyn-sub003/report"
)

// gzipResponseWriter wraps an http.ResponseWriter so handlers can write
// through a gzip.Writer transparently, the same shape the teacher's own
// HTTP layer uses for its JSON-RPC responses.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzip *gzip.Writer
}

func (w gzipResponseWriter) Write(bs []byte) (int, error) {
	return w.gzip.Write(bs)
}

func gzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, rq *http.Request) {
		if !strings.Contains(rq.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(rw, rq)
			return
		}
		gz := gzip.NewWriter(rw)
		defer gz.Close()
		rw.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(gzipResponseWriter{rw, gz}, rq)
	})
}

// Store holds the most recently finished Summary, safe for concurrent
// access between the CLI's detection loop and the HTTP handlers below.
type Store struct {
	mu  sync.RWMutex
	sum *report.Summary
}

// Set replaces the stored Summary — called once per completed run.
func (s *Store) Set(sum *report.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sum = sum
}

func (s *Store) get() *report.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sum
}

// New builds the chi router serving the Store's current report: the full
// JSON document at /report, the SARIF rendering at /report.sarif, and a
// liveness probe at /healthz.
func New(store *Store, log *logrus.Entry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(gzipMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/report", func(w http.ResponseWriter, r *http.Request) {
		sum := store.get()
		if sum == nil {
			http.Error(w, "no report available yet", http.StatusServiceUnavailable)
			return
		}
		doc, err := sum.ToJSON()
		if err != nil {
			log.WithError(err).Error("encode report")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		_, _ = w.Write(doc)
	})

	r.Get("/report.sarif", func(w http.ResponseWriter, r *http.Request) {
		sum := store.get()
		if sum == nil {
			http.Error(w, "no report available yet", http.StatusServiceUnavailable)
			return
		}
		doc, err := sum.ToSARIF()
		if err != nil {
			log.WithError(err).Error("encode sarif report")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		_, _ = w.Write(doc)
	})

	return r
}

// ListenAndServe blocks serving handler on addr, with the same
// conservative timeouts the teacher's own HTTP server sets.
func ListenAndServe(addr string, handler http.Handler, log *logrus.Entry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       time.Second * 2,
		WriteTimeout:      time.Second * 3,
		IdleTimeout:       time.Second * 5,
	}
	log.WithField("addr", addr).Info("report server listening")
	return srv.ListenAndServe()
}
