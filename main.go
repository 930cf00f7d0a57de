//go:build !js
// +build !js

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/talklittle/servo/conformance"
	"github.com/talklittle/servo/handler"
	"github.com/talklittle/servo/internal/testimage"
)

// resourcesDir names the directory under the site root holding the images
// that pages load through "../../../resources/".
const resourcesDir = "resources"

var errFailed = errors.New("conformance case failed")

func run() error {
	var (
		listenAddr = "localhost:0"
		headless   bool
		siteDir    string
		genDir     string
		gen        bool
		cfg        = conformance.DefaultConfig()
	)
	flag.StringVar(&listenAddr, "listen", listenAddr, "listen address for http server")
	flag.BoolVar(&headless, "headless", false, "run the case against the software renderer instead of serving it")
	flag.StringVar(&siteDir, "resources", "", "site directory containing a resources/ tree; generated in memory if empty")
	flag.StringVar(&cfg.ImagePath, "image", cfg.ImagePath, "page relative path of the reference image (headless)")
	flag.DurationVar(&cfg.LoadTimeout, "timeout", cfg.LoadTimeout, "image load timeout (headless)")
	flag.IntVar(&cfg.Tolerance, "tolerance", cfg.Tolerance, "per channel pixel tolerance (headless)")
	flag.StringVar(&genDir, "gen-resources", "", "write generated images under `dir`/resources and exit")
	flag.BoolVar(&gen, "gen", false, "print a standalone server main for the given package and exit")
	flag.Parse()
	args := flag.Args()

	switch {
	case gen:
		if len(args) != 1 {
			return errors.New("-gen takes exactly one package import path")
		}
		return tmpl.Execute(os.Stdout, struct{ ImportPath string }{args[0]})

	case genDir != "":
		if err := testimage.Write(osfs.New(genDir), resourcesDir); err != nil {
			return err
		}
		log.Printf("wrote resources under %v", filepath.Join(genDir, resourcesDir))
		return nil
	}

	site, err := openSite(siteDir)
	if err != nil {
		return err
	}

	if headless {
		sum, err := runHeadless(context.Background(), site, cfg, log.New(os.Stderr, "", log.LstdFlags))
		if err != nil {
			return err
		}
		if !sum.OK() {
			return errFailed
		}
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %v", err)
	}
	srcDir := wd

	path := "."
	if len(args) > 0 {
		path = args[0]
		if filepath.IsAbs(path) {
			srcDir = args[0]
			path = "."
		}
	}

	resources, err := site.Chroot(resourcesDir)
	if err != nil {
		return err
	}
	wh, err := handler.Handle("", srcDir, path, resources)
	if err != nil {
		return err
	}
	defer wh.Close()

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("listen %q failed: %v", listenAddr, err)
	}

	log.Printf("listening on http://%v", ln.Addr())

	return http.Serve(ln, nil)
}

// openSite returns the site filesystem rooted at dir, or an in-memory site
// holding the generated resources if dir is empty.
func openSite(dir string) (billy.Filesystem, error) {
	if dir != "" {
		if _, err := os.Stat(filepath.Join(dir, resourcesDir)); err != nil {
			return nil, fmt.Errorf("invalid -resources directory: %w", err)
		}
		return osfs.New(dir), nil
	}
	fs := memfs.New()
	if err := testimage.Write(fs, resourcesDir); err != nil {
		return nil, fmt.Errorf("generating resources: %w", err)
	}
	return fs, nil
}

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}
