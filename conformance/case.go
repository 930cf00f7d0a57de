// Package conformance implements the WebGL conformance case checking that a
// canvas used as a texImage2D source stays usable for further 2D drawing and
// re-upload.
//
// The case runs in four phases, each once and in order: wait for the
// reference image, render it to the canvas and upload the canvas (twice),
// verify the texture, then signal completion to the harness.
package conformance

import (
	"context"
	"fmt"

	"github.com/talklittle/servo/glapi"
	"github.com/talklittle/servo/harness"
)

// Description is reported to the harness before anything else.
const Description = "Verifies that a canvas used as a texImage2D source can be drawn into and uploaded again."

// Run executes the case against env, reporting to h. It always finishes h,
// and returns an error if the case did not pass.
//
// A failed or slower than cfg.LoadTimeout image load is reported as a failed
// assertion rather than left waiting.
func Run(ctx context.Context, env glapi.Env, cfg Config, h *harness.Harness) (err error) {
	h.Description(Description)
	defer func() {
		if finErr := h.Finish(); err == nil {
			err = finErr
		}
		if err == nil {
			err = h.Err()
		}
	}()

	if err := cfg.Validate(); err != nil {
		h.Fail(fmt.Sprintf("invalid config: %v", err))
		return err
	}

	fix, err := NewFixture(env, cfg)
	if err != nil {
		h.Fail(fmt.Sprintf("fixture setup failed: %v", err))
		return err
	}
	defer func() {
		if cerr := fix.Close(); cerr != nil {
			h.Fail(cerr.Error())
			if err == nil {
				err = cerr
			}
		}
	}()

	if env.Loader == nil {
		h.Fail("no image loader")
		return fmt.Errorf("no image loader")
	}
	loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()
	img, err := env.Loader.Load(cfg.ImagePath).Await(loadCtx)
	if err != nil {
		h.Fail(fmt.Sprintf("image load failed: %v", err))
		return fmt.Errorf("loading %s: %w", cfg.ImagePath, err)
	}
	fix.Image = img

	for i := 0; i < cfg.Renders; i++ {
		if err := fix.Render(); err != nil {
			h.Fail(fmt.Sprintf("render %d: %v", i+1, err))
			return err
		}
	}

	fix.Verify(h)
	return nil
}
