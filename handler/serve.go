package handler

import (
	"net/http"
	"os"
	"path/filepath"

	billy "gopkg.in/src-d/go-billy.v4"
)

//go:generate go run assets_build.go

// Static assets, set by assets_static.go from index.html and index.js.
var (
	// IndexHandler serves the default conformance page.
	IndexHandler http.Handler

	// RunHandler serves the runner script, which fetches the build info,
	// instantiates main.wasm and runs it with the script tag's data-*
	// attributes as environment.
	RunHandler http.Handler
)

// IndexHandler serves the package directory if it has its own index.html,
// and the default page otherwise.
func (wh *WASMHandler) IndexHandler() http.Handler {
	dir := wh.PackageDir()
	if info, err := os.Stat(filepath.Join(dir, "index.html")); err == nil && !info.IsDir() {
		return http.FileServer(http.Dir(dir))
	}
	return IndexHandler
}

// ExecHandler serves the wasm_exec.js shipped with the Go toolchain.
func (wh *WASMHandler) ExecHandler() http.Handler {
	exec := wh.WASMExec()
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, exec)
	})
}

// Mount registers, under prefix on mux:
//   - / the IndexHandler()
//   - /index.js the RunHandler
//   - /wasm_exec.js the ExecHandler()
//   - /main.wasm the WASMHandler itself
//   - /resources/ the resources filesystem, if not nil
func (wh *WASMHandler) Mount(prefix string, mux *http.ServeMux, resources billy.Filesystem) {
	routes := map[string]http.Handler{
		"/":             wh.IndexHandler(),
		"/index.js":     RunHandler,
		"/wasm_exec.js": wh.ExecHandler(),
		"/main.wasm":    wh,
	}
	if resources != nil {
		routes["/resources/"] = http.StripPrefix(prefix+"/resources", ResourceHandler(resources))
	}
	for path, h := range routes {
		mux.Handle(prefix+path, h)
	}
}

// Handle mounts a new WASMHandler at prefix on http.DefaultServeMux. The
// caller should defer WASMHandler.Close() to remove the built binary.
func Handle(prefix, srcDir, path string, resources billy.Filesystem) (*WASMHandler, error) {
	wh, err := NewWASMHandler(srcDir, path)
	if err != nil {
		return nil, err
	}
	wh.Mount(prefix, http.DefaultServeMux, resources)
	return wh, nil
}
