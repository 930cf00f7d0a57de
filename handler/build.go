package handler

import (
	"bytes"
	"errors"
	"fmt"
	"go/build"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// target is the main package a WASMHandler builds, as imported for js/wasm.
type target struct {
	ctxt   build.Context
	srcDir string
	path   string
	pkg    *build.Package
	loaded time.Time
}

func newTarget(srcDir, path string) target {
	ctxt := build.Default
	ctxt.GOOS = "js"
	ctxt.GOARCH = "wasm"
	return target{ctxt: ctxt, srcDir: srcDir, path: path}
}

// load (re)imports the package, noting when.
func (tg *target) load() error {
	if tg.path == "" {
		return errors.New("no package path set")
	}
	pkg, err := tg.ctxt.Import(tg.path, tg.srcDir, 0)
	if err != nil {
		return fmt.Errorf("failed to import %q: %v", tg.path, err)
	}
	tg.pkg, tg.loaded = pkg, time.Now()
	return nil
}

// modTime returns the latest modification time among the package directory
// and its Go files, or when it was loaded if that is later.
func (tg *target) modTime() (time.Time, error) {
	var lt latest
	lt.offer(tg.loaded)
	lt.stat(tg.pkg.Dir)
	for _, name := range tg.pkg.GoFiles {
		lt.stat(filepath.Join(tg.pkg.Dir, name))
	}
	return lt.t, lt.err
}

// environ returns base, less any entries carrying terminal escape
// sequences, followed by the target platform; later entries win.
func (tg *target) environ(base []string) []string {
	env := make([]string, 0, len(base)+4)
	for _, kv := range base {
		if !strings.ContainsRune(kv, 0x1b) {
			env = append(env, kv)
		}
	}
	for _, kv := range [][2]string{
		{"GOOS", tg.ctxt.GOOS},
		{"GOARCH", tg.ctxt.GOARCH},
		{"GOROOT", tg.ctxt.GOROOT},
		{"GOPATH", tg.ctxt.GOPATH},
	} {
		if kv[1] != "" {
			env = append(env, kv[0]+"="+kv[1])
		}
	}
	return env
}

// output is the result of the last build: a binary in a temporary
// directory, whether the build succeeded, when, and its log.
type output struct {
	dir string
	ok  bool
	at  time.Time
	log bytes.Buffer
}

func (out *output) path() string { return filepath.Join(out.dir, "main.wasm") }

func (out *output) remove() error {
	if out.dir == "" {
		return nil
	}
	err := os.RemoveAll(out.dir)
	out.dir, out.ok = "", false
	return err
}

// stale reports whether the binary is missing, failed, or older than the
// package sources.
func (wh *WASMHandler) stale() (bool, error) {
	if !wh.out.ok {
		return true, nil
	}
	if _, err := os.Stat(wh.out.path()); err != nil {
		return true, nil
	}
	mt, err := wh.target.modTime()
	if err != nil {
		// files may have come or gone since the last import
		if err = wh.target.load(); err == nil {
			mt, err = wh.target.modTime()
		}
		if err != nil {
			return false, fmt.Errorf("failed to get build package mod time: %v", err)
		}
	}
	return mt.After(wh.out.at), nil
}

// build runs go build for js/wasm. A failing compile is not an error: it
// leaves out.ok false with the compiler output in out.log.
func (wh *WASMHandler) build() error {
	out := &wh.out
	if out.dir == "" {
		dir, err := os.MkdirTemp("", "wasm-build")
		if err != nil {
			return fmt.Errorf("unable to create temporary directory: %v", err)
		}
		out.dir = dir
	}
	out.ok = false
	out.log.Reset()

	importPath := wh.target.pkg.ImportPath
	cmd := exec.Command("go", "build", "-o", out.path(), importPath)
	cmd.Env = wh.target.environ(os.Environ())
	cmd.Dir = wh.target.srcDir
	cmd.Stdout = &out.log
	cmd.Stderr = &out.log

	fmt.Fprintf(&out.log, "Building %s\n", importPath)
	t0 := time.Now()
	err := cmd.Run()
	if err != nil {
		fmt.Fprintf(&out.log, "\n%v\n", err)
	}
	fmt.Fprintf(&out.log, "\nBuild Took %v\n", time.Since(t0))

	out.at = time.Now()
	out.ok = err == nil
	return nil
}

// findWASMExec locates wasm_exec.js; newer toolchains ship it under lib/wasm,
// older ones under misc/wasm.
func findWASMExec(goroot string) string {
	for _, dir := range []string{"lib", "misc"} {
		path := filepath.Join(goroot, dir, "wasm", "wasm_exec.js")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(goroot, "misc", "wasm", "wasm_exec.js")
}

// latest tracks the latest of a set of times, stopping at the first stat
// error.
type latest struct {
	t   time.Time
	err error
}

func (lt *latest) offer(t time.Time) {
	if t.After(lt.t) {
		lt.t = t
	}
}

func (lt *latest) stat(paths ...string) {
	for _, path := range paths {
		if lt.err != nil {
			return
		}
		info, err := os.Stat(path)
		if err != nil {
			lt.err = err
			return
		}
		lt.offer(info.ModTime())
	}
}
