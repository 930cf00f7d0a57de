// Package handler implements a dynamic wasm building http.Handler, along with
// the page, runner script and test resources that the conformance program is
// served with.
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/build"
	"net/http"
	"os"
	"sync"
)

// WASMHandler implements an http.Handler that serves a dynamically built wasm
// binary from a Go "main" package.
//
// The target package must be a normal main package with a func main() entry
// point and should contain a js build tag. See handler/testdata/hello.
type WASMHandler struct {
	mu       sync.RWMutex
	target   target
	out      output
	wasmExec string
}

// NewWASMHandler creates a WASMHandler for a given package path and source
// directory.
func NewWASMHandler(srcDir, path string) (*WASMHandler, error) {
	wh := &WASMHandler{target: newTarget(srcDir, path)}
	wh.wasmExec = findWASMExec(wh.target.ctxt.GOROOT)
	if err := wh.target.load(); err != nil {
		return nil, err
	}
	return wh, nil
}

// WASMExec returns the path to the runtime wasm_exec.js stub.
func (wh *WASMHandler) WASMExec() string {
	return wh.wasmExec
}

// PackageDir returns the directory path to the main package being built as a
// wasm binary.
func (wh *WASMHandler) PackageDir() string {
	wh.mu.RLock()
	defer wh.mu.RUnlock()
	return wh.target.pkg.Dir
}

// Close removes any temporary built wasm binary.
func (wh *WASMHandler) Close() error {
	wh.mu.Lock()
	defer wh.mu.Unlock()
	return wh.out.remove()
}

// ServeHTTP dispatches on the request's form values:
//   - "log" serves the text build log
//   - "build" serves the build context and package as json
//   - otherwise it serves the wasm binary, building it first if missing,
//     stale, or "force" is set; a failed build redirects to the log.
func (wh *WASMHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	switch {
	case req.Form.Has("log"):
		wh.serveLog(w, req)
	case req.Form.Has("build"):
		wh.serveBuildInfo(w)
	default:
		wh.serveWASM(w, req, req.Form.Has("force"))
	}
}

func (wh *WASMHandler) serveWASM(w http.ResponseWriter, req *http.Request, force bool) {
	f, ok, err := wh.binary(force)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to build wasm: %v", err), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Redirect(w, req, req.URL.Path+"?log", http.StatusSeeOther)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/wasm")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, req, "main.wasm", info.ModTime(), f)
}

// binary rebuilds if needed, then opens the built binary; ok is false if the
// last build failed.
func (wh *WASMHandler) binary(force bool) (f *os.File, ok bool, err error) {
	wh.mu.Lock()
	defer wh.mu.Unlock()
	rebuild := force
	if !rebuild {
		if rebuild, err = wh.stale(); err != nil {
			return nil, false, err
		}
	}
	if rebuild {
		if err := wh.build(); err != nil {
			return nil, false, err
		}
	}
	if !wh.out.ok {
		return nil, false, nil
	}
	f, err = os.Open(wh.out.path())
	return f, err == nil, err
}

func (wh *WASMHandler) serveLog(w http.ResponseWriter, req *http.Request) {
	wh.mu.RLock()
	log, at := append([]byte(nil), wh.out.log.Bytes()...), wh.out.at
	wh.mu.RUnlock()
	http.ServeContent(w, req, "build.log", at, bytes.NewReader(log))
}

// buildInfo is the json form of what a WASMHandler builds.
type buildInfo struct {
	Context struct {
		GOARCH, GOOS, GOROOT, GOPATH string
		CgoEnabled, UseAllFiles      bool
		Compiler                     string
		BuildTags, ReleaseTags       []string
		InstallSuffix                string
	}
	Package *build.Package
}

func (wh *WASMHandler) serveBuildInfo(w http.ResponseWriter) {
	wh.mu.RLock()
	var info buildInfo
	ctxt := wh.target.ctxt
	info.Context.GOARCH, info.Context.GOOS = ctxt.GOARCH, ctxt.GOOS
	info.Context.GOROOT, info.Context.GOPATH = ctxt.GOROOT, ctxt.GOPATH
	info.Context.CgoEnabled, info.Context.UseAllFiles = ctxt.CgoEnabled, ctxt.UseAllFiles
	info.Context.Compiler = ctxt.Compiler
	info.Context.BuildTags, info.Context.ReleaseTags = ctxt.BuildTags, ctxt.ReleaseTags
	info.Context.InstallSuffix = ctxt.InstallSuffix
	info.Package = wh.target.pkg
	body, err := json.Marshal(info)
	wh.mu.RUnlock()

	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to marshal json: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Write(body)
}
