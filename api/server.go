package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
)

// Server is AshPaper's HTTP JSON API: POST /v1/execute, POST
// /v1/syllables, GET /v1/health.
type Server struct {
	addr   string
	mux    *http.ServeMux
	server *http.Server
}

// NewServer constructs a Server bound to addr (e.g. ":8080").
func NewServer(addr string) *Server {
	s := &Server{addr: addr, mux: http.NewServeMux()}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/v1/execute", s.handleExecute)
	s.mux.HandleFunc("/v1/syllables", s.handleSyllables)
	s.mux.HandleFunc("/v1/health", s.handleHealth)
}

// ListenAndServe starts the server; it blocks until the server stops or
// errors.
func (s *Server) ListenAndServe() error {
	s.server = &http.Server{Addr: s.addr, Handler: s.mux}
	log.Printf("api: listening on %s", s.addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api: serving: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
