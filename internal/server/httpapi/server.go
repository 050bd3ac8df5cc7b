// Package httpapi exposes the task store over the JSON REST surface the
// CLI client talks to.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/johnp-05/sumativatr1/internal/logging"
	"github.com/johnp-05/sumativatr1/internal/server/tasks"
)

type Server struct {
	repo   tasks.Repository
	logger logging.Logger
	router *mux.Router
}

func NewServer(repo tasks.Repository, logger logging.Logger) *Server {
	s := &Server{repo: repo, logger: logger, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(s.loggingMiddleware)

	s.router.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)
	s.router.HandleFunc("/tasks", s.handleList).Methods(http.MethodGet)
	s.router.HandleFunc("/tasks", s.handleCreate).Methods(http.MethodPost)
	s.router.HandleFunc("/tasks/{id:[0-9]+}", s.handleGet).Methods(http.MethodGet)
	s.router.HandleFunc("/tasks/{id:[0-9]+}", s.handlePatch).Methods(http.MethodPatch)
	s.router.HandleFunc("/tasks/{id:[0-9]+}", s.handleDelete).Methods(http.MethodDelete)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request handled",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
