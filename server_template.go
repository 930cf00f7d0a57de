//go:build !js
// +build !js

package main

import "text/template"

var tmpl = template.Must(template.New("").Parse(`//go:build !js
// +build !js

//go:generate go run github.com/talklittle/servo -gen {{ .ImportPath }}

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/talklittle/servo/handler"
)

var (
	listen    = "localhost:0"
	resources = ""

	srcDir = ""
	path   = "{{ .ImportPath }}"
)

func main() {
	flag.StringVar(&listen, "listen", listen, "listen address for http server")
	flag.StringVar(&resources, "resources", resources, "directory served under /resources/")
	flag.Parse()
	log.Fatalln(serve())
}

func serve() error {
	var fs billy.Filesystem
	if resources != "" {
		fs = osfs.New(resources)
	}
	wh, err := handler.Handle("", srcDir, path, fs)
	if err != nil {
		return err
	}
	defer wh.Close()

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return fmt.Errorf("listen %q failed: %v", listen, err)
	}

	log.Printf("Serving %v on http://%s", path, ln.Addr())

	return http.Serve(ln, nil)
}
`))
