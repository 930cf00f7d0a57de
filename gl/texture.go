//go:build js
// +build js

package gl

import (
	"fmt"
	"syscall/js"

	"github.com/talklittle/servo/glapi"
)

// Texture tracks a handle to a WebGLTexture.
type Texture struct {
	gl     *GL
	handle js.Value
	id     int
}

func (tex *Texture) String() string {
	return fmt.Sprintf("Texture(%d)", tex.id)
}

// CreateTexture creates and initializes a WebGLTexture.
func (gl *GL) CreateTexture() (glapi.Texture, error) {
	handle := gl.gl.Call("createTexture")
	if !handle.Truthy() {
		return nil, fmt.Errorf("createTexture failed: %v", gl.GetError())
	}
	gl.lastTexID++
	return &Texture{gl: gl, handle: handle, id: gl.lastTexID}, nil
}

// DeleteTexture deletes a given WebGLTexture. This method has no effect if the
// texture has already been deleted.
func (gl *GL) DeleteTexture(tex glapi.Texture) {
	if t, ok := gl.own(tex); ok && t != nil {
		gl.gl.Call("deleteTexture", t.handle)
	}
}

// BindTexture binds a given WebGLTexture to a target (binding point); a nil
// texture unbinds.
func (gl *GL) BindTexture(target glapi.Enum, tex glapi.Texture) {
	t, ok := gl.own(tex)
	if !ok {
		gl.setError(glapi.InvalidOperation)
		return
	}
	if t == nil {
		gl.gl.Call("bindTexture", int(target), js.Null())
		return
	}
	gl.gl.Call("bindTexture", int(target), t.handle)
}

func (gl *GL) own(tex glapi.Texture) (*Texture, bool) {
	if tex == nil {
		return nil, true
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return nil, false
	}
	return t, t.gl == gl
}

// TexParameteri sets texture parameters of the bound texture.
func (gl *GL) TexParameteri(target, pname, param glapi.Enum) {
	gl.gl.Call("texParameteri", int(target), int(pname), int(param))
}

// TexImage2D specifies a two-dimensional texture image, sourced from the
// current contents of a 2d <canvas>.
func (gl *GL) TexImage2D(target glapi.Enum, level int, internalFormat, format, typ glapi.Enum, src glapi.Canvas2D) error {
	can, ok := src.(*Canvas2D)
	if !ok || can == nil {
		return fmt.Errorf("gl.TexImage2D: %w", glapi.ErrForeignSource)
	}
	gl.gl.Call("texImage2D",
		int(target), level, int(internalFormat),
		int(format), int(typ), can.el)
	return nil
}
