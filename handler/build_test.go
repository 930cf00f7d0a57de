package handler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetEnviron(t *testing.T) {
	tg := newTarget("testdata/hello", ".")
	tg.ctxt.GOROOT = "/goroot"
	tg.ctxt.GOPATH = ""
	env := tg.environ([]string{
		"HOME=/home/gopher",
		"PS1=\x1b[31mred",
		"GOOS=linux",
	})

	require.Len(t, env, 5)
	assert.Equal(t, []string{
		"HOME=/home/gopher",
		"GOOS=linux",
		// the target platform comes last, so it wins
		"GOOS=js",
		"GOARCH=wasm",
		"GOROOT=/goroot",
	}, env)
	assert.GreaterOrEqual(t, len(env), 4)
	assert.Equal(t, []string{"GOOS=js", "GOARCH=wasm"}, env[len(env)-3:len(env)-1])
}

func TestFindWASMExec(t *testing.T) {
	goroot := t.TempDir()
	assert.Equal(t, filepath.Join(goroot, "misc", "wasm", "wasm_exec.js"), findWASMExec(goroot))

	lib := filepath.Join(goroot, "lib", "wasm")
	require.NoError(t, os.MkdirAll(lib, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "wasm_exec.js"), nil, 0644))
	assert.Equal(t, filepath.Join(lib, "wasm_exec.js"), findWASMExec(goroot))
}

func TestLatest(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(name, []byte("package main\n"), 0644))
	then := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(name, then, then))

	var lt latest
	lt.offer(time.Now().Add(-time.Hour))
	lt.stat(dir, name)
	require.NoError(t, lt.err)
	assert.True(t, lt.t.Equal(then), "expected %v, got %v", then, lt.t)

	lt.stat(filepath.Join(dir, "missing.go"))
	assert.Error(t, lt.err)
	lt.offer(then.Add(time.Hour))
	assert.True(t, lt.t.Equal(then.Add(time.Hour)))
}

func TestTargetModTime(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(main, []byte("//go:build js\n\npackage main\n\nfunc main() {}\n"), 0644))

	tg := newTarget(dir, ".")
	require.NoError(t, tg.load())
	assert.Equal(t, []string{"main.go"}, tg.pkg.GoFiles)

	then := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(main, then, then))
	mt, err := tg.modTime()
	require.NoError(t, err)
	assert.True(t, mt.Equal(then), "expected %v, got %v", then, mt)

	require.NoError(t, os.Remove(main))
	_, err = tg.modTime()
	assert.Error(t, err)
}
