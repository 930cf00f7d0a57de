//go:build js && wasm
// +build js,wasm

package main

import (
	"context"
	"log"
	"os"
	"syscall/js"

	"github.com/talklittle/servo/conformance"
	"github.com/talklittle/servo/gl"
	"github.com/talklittle/servo/harness"
)

func main() {
	log.Printf("env: %q", os.Environ())

	cfg := conformance.DefaultConfig()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Fatalln(err)
	}

	document := js.Global().Get("document")
	env, err := gl.NewEnv(document, cfg.Size)
	if err != nil {
		log.Fatalln(err)
	}

	h := harness.New(harness.NewDOMReporter(document, os.Getenv("results")))
	if err := conformance.Run(context.Background(), env, cfg, h); err != nil {
		log.Fatalln(err)
	}
}
