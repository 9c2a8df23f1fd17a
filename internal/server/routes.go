package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler builds the router with its middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(corsMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/api/events", s.handleEvents)
	r.Post("/submit", s.handleSubmit)

	if !s.relayVariant() {
		r.Get("/api/submissions", s.handleListSubmissions)
		r.Get("/api/submissions/status", s.handleStatus)
		r.Get("/download", s.handleDownload)
	}

	if s.options.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.options.StaticDir)))
	} else {
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "Endpoint not found")
		})
	}
	return r
}
