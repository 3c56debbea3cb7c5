// Package web composes the HTTP surface of the site.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/hephaestus/internal/storage"
	"github.com/louisbranch/hephaestus/internal/web/modules/profile"
	"github.com/louisbranch/hephaestus/internal/web/modules/signup"
	"github.com/louisbranch/hephaestus/internal/web/modules/worlds"
	"github.com/louisbranch/hephaestus/internal/web/platform/httpx"
	"github.com/louisbranch/hephaestus/internal/web/routepath"
	"github.com/louisbranch/hephaestus/internal/web/static"
)

const shutdownTimeout = 10 * time.Second

// Config wires the HTTP server to its stores.
type Config struct {
	HTTPAddr     string
	QueryTimeout time.Duration
	WorldStore   storage.WorldStore
	MemberStore  storage.MemberStore
}

// Server runs the web site.
type Server struct {
	httpServer *http.Server
}

// NewHandler builds the site's routing table with the shared middleware
// chain applied.
func NewHandler(cfg Config) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))
	worlds.Register(mux, cfg.WorldStore, cfg.QueryTimeout)
	profile.Register(mux, cfg.MemberStore, cfg.QueryTimeout)
	signup.Register(mux, cfg.MemberStore, cfg.QueryTimeout)

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLogger(log.Default()),
	)
}

// NewServer validates cfg and builds the server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http address required")
	}
	if cfg.WorldStore == nil {
		return nil, errors.New("world store required")
	}
	if cfg.MemberStore == nil {
		return nil, errors.New("member store required")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// ListenAndServe serves until ctx is canceled or the listener fails, then
// drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	}
}

// Close stops the server without draining.
func (s *Server) Close() error {
	return s.httpServer.Close()
}
