package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves a built single-page client from dir. Paths that do
// not name a file fall back to index.html so client-side routes resolve.
func StaticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}
