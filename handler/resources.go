package handler

import (
	"net/http"
	"path"
	"strings"
	"time"

	billy "gopkg.in/src-d/go-billy.v4"
)

// ResourceHandler serves regular files out of fs, by request path. Missing
// files and directories are not found.
func ResourceHandler(fs billy.Filesystem) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+req.URL.Path), "/")
		if name == "" {
			http.NotFound(w, req)
			return
		}
		info, err := fs.Stat(name)
		if err != nil || info.IsDir() {
			http.NotFound(w, req)
			return
		}
		f, err := fs.Open(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()

		modTime := info.ModTime()
		if modTime.IsZero() {
			modTime = time.Now()
		}
		http.ServeContent(w, req, path.Base(name), modTime, f)
	})
}
