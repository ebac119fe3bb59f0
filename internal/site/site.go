// Package site serves the portfolio's static pages and assets.
package site

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/leterax/portfolio/internal/httpx"
)

const indexFile = "index.html"

// Handler serves files from an fs.FS. Browsers asking for a page that does
// not exist get index.html instead of a 404.
type Handler struct {
	files      fs.FS
	fileServer http.Handler
}

// NewHandler creates a static handler over files.
func NewHandler(files fs.FS) *Handler {
	return &Handler{
		files:      files,
		fileServer: http.FileServerFS(files),
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name, ok := h.resolve(r.URL.Path)
	switch {
	case ok && name == r.URL.Path:
		h.fileServer.ServeHTTP(w, r)
	case ok:
		http.ServeFileFS(w, r, h.files, strings.TrimPrefix(name, "/"))
	case httpx.AcceptsHTML(r) && h.exists(indexFile):
		http.ServeFileFS(w, r, h.files, indexFile)
	default:
		http.NotFound(w, r)
	}
}

// resolve maps a request path to a servable file. Paths without an
// extension may name a page by its basename, so /projects serves
// projects.html.
func (h *Handler) resolve(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	name := strings.TrimPrefix(clean, "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(h.files, name)
	if err == nil {
		if !info.IsDir() {
			return urlPath, true
		}
		if h.exists(path.Join(name, indexFile)) {
			return urlPath, true
		}
		return "", false
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", false
	}

	if path.Ext(name) == "" && name != "." {
		page := name + ".html"
		if h.exists(page) {
			return "/" + page, true
		}
	}
	return "", false
}

func (h *Handler) exists(name string) bool {
	info, err := fs.Stat(h.files, name)
	return err == nil && !info.IsDir()
}
