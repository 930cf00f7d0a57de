package conformance

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/talklittle/servo/glapi"
	"github.com/talklittle/servo/harness"
)

// Fixture holds the state shared by the render and verification steps of
// one run: the canvas, the GL context, the texture and the decoded image.
type Fixture struct {
	Canvas  glapi.Canvas2D
	GL      glapi.Context
	Texture glapi.Texture
	Image   glapi.Image

	cfg     Config
	renders int
}

// NewFixture creates the fixture's texture in env.GL.
//
// The texture's minification filter is set to LINEAR: the canvas is not
// mipmapped, and WebGL samples opaque black from a texture whose filter
// needs mipmaps it does not have.
func NewFixture(env glapi.Env, cfg Config) (*Fixture, error) {
	if env.Canvas == nil || env.GL == nil {
		return nil, errors.New("environment needs a canvas and a GL context")
	}
	tex, err := env.GL.CreateTexture()
	if err != nil {
		return nil, fmt.Errorf("createTexture: %w", err)
	}
	env.GL.BindTexture(glapi.Texture2D, tex)
	env.GL.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, glapi.Linear)
	if code := env.GL.GetError(); code != glapi.NoError {
		return nil, fmt.Errorf("texture setup: %v", code)
	}
	return &Fixture{
		Canvas:  env.Canvas,
		GL:      env.GL,
		Texture: tex,
		cfg:     cfg,
	}, nil
}

// Renders returns how many render steps completed.
func (fix *Fixture) Renders() int { return fix.renders }

// Render clears the canvas, draws the image to fill it, then uploads the
// canvas into the texture.
func (fix *Fixture) Render() error {
	if fix.Image == nil {
		return errors.New("render before image loaded")
	}
	full := image.Rectangle{Max: fix.Canvas.Size()}
	fix.Canvas.ClearRect(full)
	if err := fix.Canvas.DrawImage(fix.Image, full); err != nil {
		return fmt.Errorf("drawImage: %w", err)
	}
	fix.GL.BindTexture(glapi.Texture2D, fix.Texture)
	if err := fix.GL.TexImage2D(glapi.Texture2D, 0, glapi.RGBA, glapi.RGBA, glapi.UnsignedByte, fix.Canvas); err != nil {
		return fmt.Errorf("texImage2D: %w", err)
	}
	if code := fix.GL.GetError(); code != glapi.NoError {
		return fmt.Errorf("texImage2D: %v", code)
	}
	fix.renders++
	return nil
}

// Verify draws the texture over the whole drawing buffer, reads it back, and
// checks every pixel against the expected colour, recording one assertion.
//
// The drawing buffer is first cleared to the inverse of the expected colour,
// so pixels the quad leaves untouched fail the check.
func (fix *Fixture) Verify(h *harness.Harness) bool {
	exp := fix.cfg.Expected
	fix.GL.ClearColor(color.RGBA{255 - exp.R, 255 - exp.G, 255 - exp.B, 255})
	fix.GL.Clear(glapi.ColorBufferBit)
	if err := fix.GL.DrawTexturedQuad(); err != nil {
		h.Fail(fmt.Sprintf("drawing textured quad: %v", err))
		return false
	}
	size := fix.GL.DrawingBufferSize()
	buf, err := fix.GL.ReadPixels(image.Rectangle{Max: size})
	if err != nil {
		h.Fail(fmt.Sprintf("readPixels: %v", err))
		return false
	}
	if code := fix.GL.GetError(); code != glapi.NoError {
		h.Fail(fmt.Sprintf("getError after readPixels: %v", code))
		return false
	}
	return h.CheckPixels(buf, size, fix.cfg.Expected, uint8(fix.cfg.Tolerance), "texture sampled after canvas re-upload")
}

// Close deletes the fixture's texture and releases whatever the context
// built to draw it.
func (fix *Fixture) Close() error {
	fix.GL.BindTexture(glapi.Texture2D, nil)
	fix.GL.DeleteTexture(fix.Texture)
	fix.GL.Release()
	if code := fix.GL.GetError(); code != glapi.NoError {
		return fmt.Errorf("fixture teardown: %v", code)
	}
	return nil
}
