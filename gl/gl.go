//go:build js
// +build js

package gl

import (
	"errors"
	"image"
	"image/color"
	"syscall/js"

	"github.com/talklittle/servo/glapi"
)

// GL is a webgl rendering context attached to some <canvas> element in the
// dom.
type GL struct {
	gl js.Value
	Constants

	shaders map[ShaderSource]js.Value
	progs   []Program
	quad    *quadProgram

	lastTexID int
	errs      []glapi.Enum
}

var _ glapi.Context = (*GL)(nil)

// Init acquires a webgl context from the given <canvas> element, falling back
// to experimental-webgl for older browsers.
func (gl *GL) Init(el js.Value) error {
	if !el.Truthy() {
		return errors.New("no <canvas> element given")
	}
	for _, kind := range []string{"webgl", "experimental-webgl"} {
		if ctx := el.Call("getContext", kind); ctx.Truthy() {
			gl.gl = ctx
			break
		}
	}
	if !gl.gl.Truthy() {
		return errors.New("unable to get webgl context")
	}
	gl.Constants = constantsFor(gl.gl)
	gl.shaders = make(map[ShaderSource]js.Value)
	return nil
}

// Release deletes every program built, their compiled shaders, and the
// textured quad's vertex buffer. Later draws build them again.
func (gl *GL) Release() {
	if gl.quad != nil {
		gl.DeleteBuffer(gl.quad.Verts)
		gl.quad = nil
	}
	for i := range gl.progs {
		gl.progs[i].Release()
	}
	gl.progs = gl.progs[:0]
	for src, shader := range gl.shaders {
		gl.gl.Call("deleteShader", shader)
		delete(gl.shaders, src)
	}
}

// DrawingBufferSize returns the actual size of the drawing buffer, which may
// be smaller than the <canvas> element if the browser could not allocate it.
func (gl *GL) DrawingBufferSize() image.Point {
	return image.Pt(
		gl.gl.Get("drawingBufferWidth").Int(),
		gl.gl.Get("drawingBufferHeight").Int(),
	)
}

// Viewport sets the viewport to the given rectangle in window coordinates.
func (gl *GL) Viewport(r image.Rectangle) {
	gl.gl.Call("viewport", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// GetError returns an error recorded by this binding, such as binding a
// texture from another context, before any error reported by webgl.
func (gl *GL) GetError() glapi.Enum {
	if len(gl.errs) > 0 {
		code := gl.errs[0]
		gl.errs = gl.errs[1:]
		return code
	}
	return glapi.Enum(gl.gl.Call("getError").Int())
}

func (gl *GL) setError(code glapi.Enum) {
	for _, have := range gl.errs {
		if have == code {
			return
		}
	}
	gl.errs = append(gl.errs, code)
}

// ClearColor sets the color Clear fills the color buffer with; components
// are clamped to [0, 1].
func (gl *GL) ClearColor(c color.Color) {
	const max = 0xffff
	r, g, b, a := c.RGBA()
	if a == 0 {
		gl.gl.Call("clearColor", 0, 0, 0, 0)
		return
	}
	// webgl takes straight alpha
	gl.gl.Call("clearColor",
		float32(r)/float32(a), float32(g)/float32(a), float32(b)/float32(a),
		float32(a)/max)
}

// Clear fills the buffers named by mask, a combination of
// glapi.ColorBufferBit, DepthBufferBit and StencilBufferBit.
func (gl *GL) Clear(mask glapi.Enum) {
	gl.gl.Call("clear", int(mask))
}
