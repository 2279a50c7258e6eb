// Package server delivers the landing page, the game page and the static
// files they reference.
package server

import (
	"io/fs"
	"log"
	"net/http"
	"time"
)

const (
	LandingPage = "index.html"
	GamePage    = "3d/index.html"
)

// New serves root: the landing page at /, the game page at /3d, and every
// other path verbatim. Missing files get the file server's 404.
func New(root fs.FS) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", page(root, LandingPage))
	mux.HandleFunc("GET /3d", page(root, GamePage))
	mux.Handle("/", http.FileServerFS(root))
	return logRequests(mux)
}

func page(root fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, root, name)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("server: %s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
