// Package server assembles the portfolio HTTP service: the contact endpoint,
// the static site and the middleware around them.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/leterax/portfolio/internal/contact"
	"github.com/leterax/portfolio/internal/httpx"
	"github.com/leterax/portfolio/internal/site"
	"github.com/leterax/portfolio/internal/storage"
	"github.com/leterax/portfolio/internal/storage/sqlite"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// NewHandler routes the contact endpoint and serves everything else from siteFS.
func NewHandler(store storage.SubscriberStore, siteFS fs.FS) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(contact.Path, contact.NewHandler(store))
	mux.Handle("/", site.NewHandler(siteFS))

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.AccessLog(),
	)
}

// Server hosts the portfolio site.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
}

// New opens the subscriber store and builds the HTTP server.
func New(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	info, err := os.Stat(cfg.SiteDir)
	if err != nil {
		return nil, fmt.Errorf("stat site dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site dir %s is not a directory", cfg.SiteDir)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open subscriber store: %w", err)
	}

	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           NewHandler(store, os.DirFS(cfg.SiteDir)),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		store: store,
	}, nil
}

// ListenAndServe listens on the configured address and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx ends, then drains
// in-flight requests within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("portfolio listening on %s", listener.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the subscriber store.
func (s *Server) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("close subscriber store: %w", err)
	}
	return nil
}
