package static

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const indexFile = "index.html"

// Handler serves the pre-built front-end. Unknown paths fall back to index.html
// so client-side routes resolve.
type Handler struct {
	root string
}

// New serves files below root.
func New(root string) *Handler {
	return &Handler{root: root}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name != "/" {
		full := filepath.Join(h.root, filepath.FromSlash(strings.TrimPrefix(name, "/")))
		if serveFile(w, r, full) {
			return
		}
	}

	if !serveFile(w, r, filepath.Join(h.root, indexFile)) {
		http.NotFound(w, r)
	}
}

// serveFile writes the regular file at full and reports whether it existed.
// http.ServeContent is used over http.ServeFile so /index.html is served
// rather than redirected.
func serveFile(w http.ResponseWriter, r *http.Request, full string) bool {
	f, err := os.Open(full)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
