//go:build !js
// +build !js

package main

import (
	"context"
	"log"

	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/talklittle/servo/conformance"
	"github.com/talklittle/servo/harness"
	"github.com/talklittle/servo/softgl"
)

// runHeadless runs the case against the software renderer, loading images
// out of site, and logging harness events to logger.
func runHeadless(ctx context.Context, site billy.Filesystem, cfg conformance.Config, logger *log.Logger) (harness.Summary, error) {
	env := softgl.NewEnv(cfg.Size, site)
	h := harness.New(harness.LogReporter{Logger: logger})
	err := conformance.Run(ctx, env, cfg, h)
	return h.Summary(), err
}
