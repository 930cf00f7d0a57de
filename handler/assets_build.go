//go:build ignore
// +build ignore

package main

import (
	"log"
	"os"
	"os/exec"
	"text/template"
)

var tmpl = template.Must(template.New("").Parse(`// Code generated by assets_build.go; DO NOT EDIT.

package handler

import (
	"net/http"
	"strings"
	"time"
)

var staticContentModTime = time.Now()

func staticHandler(name, content string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.ServeContent(w, req, name, staticContentModTime, strings.NewReader(content))
	})
}

func init() {
	{{- range . }}
	{{ .Var }} = staticHandler("{{ .Name }}", {{ printf "%q" .Content }})
	{{- end }}
}
`))

func run() error {
	f, err := os.Create("assets_static.go")
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tmpl.Execute(f, []struct {
		Var     string
		Name    string
		Content string
	}{
		{"IndexHandler", "index.html", slurp("index.html")},
		{"RunHandler", "index.js", slurp("index.js")},
	}); err != nil {
		return err
	}

	log.Printf("wrote %s", f.Name())

	cmd := exec.Command("gofmt", "-w", "assets_static.go")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return err
	}

	log.Printf("formatted %s", f.Name())
	return nil
}

func slurp(name string) string {
	b, err := os.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}
