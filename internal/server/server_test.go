package server

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/leterax/portfolio/internal/httpx"
	"github.com/leterax/portfolio/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("portfolio", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/portfolio.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.SiteDir != "dist" {
		t.Fatalf("SiteDir = %q", cfg.SiteDir)
	}
	if !cfg.OTel.Enabled || cfg.OTel.Endpoint != "" {
		t.Fatalf("OTel = %+v, want enabled without endpoint", cfg.OTel)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("PORTFOLIO_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("PORTFOLIO_DB_PATH", "/var/lib/portfolio.db")
	t.Setenv("PORTFOLIO_OTEL_ENABLED", "false")

	fs := flag.NewFlagSet("portfolio", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-site-dir", "public", "-db", "override.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want env value", cfg.HTTPAddr)
	}
	if cfg.DBPath != "override.db" {
		t.Fatalf("DBPath = %q, want flag value", cfg.DBPath)
	}
	if cfg.SiteDir != "public" {
		t.Fatalf("SiteDir = %q, want flag value", cfg.SiteDir)
	}
	if cfg.OTel.Enabled {
		t.Fatal("expected tracing disabled from env")
	}
}

func TestParseConfigRejectsEmptyAddr(t *testing.T) {
	fs := flag.NewFlagSet("portfolio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-http-addr", " "}); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestParseConfigUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("portfolio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "portfolio.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	files := fstest.MapFS{
		"index.html": {Data: []byte("<h1>home</h1>")},
		"style.css":  {Data: []byte("body{}")},
	}
	return NewHandler(store, files)
}

func TestHandlerRoutesContact(t *testing.T) {
	h := newTestHandler(t)

	submit := func() map[string]any {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"email":"Ada@Example.com"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Header().Get(httpx.RequestIDHeader) == "" {
			t.Fatal("expected request id header")
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return body
	}

	if body := submit(); body["ok"] != true || body["alreadyExists"] != nil {
		t.Fatalf("first submission = %v", body)
	}
	if body := submit(); body["ok"] != true || body["alreadyExists"] != true {
		t.Fatalf("second submission = %v", body)
	}
}

func TestHandlerRoutesSite(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		target     string
		accept     string
		wantStatus int
		wantBody   string
	}{
		{target: "/style.css", wantStatus: http.StatusOK, wantBody: "body{}"},
		{target: "/about", accept: "text/html", wantStatus: http.StatusOK, wantBody: "<h1>home</h1>"},
		{target: "/about", accept: "application/json", wantStatus: http.StatusNotFound},
		{target: "/api/contact/extra", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if tt.accept != "" {
			req.Header.Set("Accept", tt.accept)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != tt.wantStatus {
			t.Fatalf("%s (%s): status = %d, want %d", tt.target, tt.accept, rec.Code, tt.wantStatus)
		}
		if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
			t.Fatalf("%s: body = %q, want %q", tt.target, rec.Body.String(), tt.wantBody)
		}
	}
}

func TestNewRequiresSiteDir(t *testing.T) {
	dir := t.TempDir()
	_, err := New(Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(dir, "portfolio.db"),
		SiteDir:  filepath.Join(dir, "missing"),
	})
	if err == nil {
		t.Fatal("expected error for missing site dir")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	dir := t.TempDir()
	siteDir := filepath.Join(dir, "dist")
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		t.Fatalf("mkdir site: %v", err)
	}
	if err := os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<h1>home</h1>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	srv, err := New(Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(dir, "data", "portfolio.db"),
		SiteDir:  siteDir,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.Close()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/")
	if err != nil {
		t.Fatalf("get index: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "<h1>home</h1>" {
		t.Fatalf("index: status=%d body=%q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNilServer(t *testing.T) {
	var srv *Server
	if err := srv.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error from nil server")
	}
}
