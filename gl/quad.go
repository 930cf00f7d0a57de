//go:build js
// +build js

package gl

import (
	"fmt"
	"image"

	"github.com/talklittle/servo/internal/text"
)

// quadProgram draws the texture bound to unit 0 over a unit quad.
type quadProgram struct {
	Program

	Position Attrib  `glName:"vPosition"`
	TexCoord Attrib  `glName:"texCoord0"`
	Sampler  Uniform `glName:"tex"`

	Verts Buffer `glTarget:"ARRAY_BUFFER" glUsage:"STATIC_DRAW"`
}

// Two triangles covering clip space, interleaved x, y, s, t.
var quadVerts = []float32{
	1, 1, 1, 1,
	-1, 1, 0, 1,
	-1, -1, 0, 0,
	1, 1, 1, 1,
	-1, -1, 0, 0,
	1, -1, 1, 0,
}

func (quad *quadProgram) Init(gl *GL) (err error) {
	if quad.Program, err = gl.Build(
		VertexShader(text.Dedent(`
		attribute vec4 vPosition;
		attribute vec2 texCoord0;
		varying vec2 texCoord;

		void main() {
			gl_Position = vPosition;
			texCoord = texCoord0;
		}
		`)),
		FragmentShader(text.Dedent(`
		precision mediump float;

		uniform sampler2D tex;
		varying vec2 texCoord;

		void main() {
			gl_FragColor = texture2D(tex, texCoord);
		}
		`)),
	); err != nil {
		return err
	}
	if err := quad.Program.Bind(quad); err != nil {
		return err
	}
	quad.BufferData(quad.Verts, Float32Array(quadVerts))
	return nil
}

// DrawTexturedQuad draws the texture bound to TEXTURE_2D on unit 0 across
// the whole drawing buffer.
func (gl *GL) DrawTexturedQuad() error {
	if gl.quad == nil {
		var quad quadProgram
		if err := quad.Init(gl); err != nil {
			return fmt.Errorf("building textured quad program: %w", err)
		}
		gl.quad = &quad
	}
	quad := gl.quad
	quad.Use()
	gl.Viewport(image.Rectangle{Max: gl.DrawingBufferSize()})

	quad.BindBuffer(quad.Verts)
	quad.EnableAttrib(quad.Position)
	quad.AttribPointer(quad.Position, 2, 16, 0)
	quad.EnableAttrib(quad.TexCoord)
	quad.AttribPointer(quad.TexCoord, 2, 16, 8)

	gl.gl.Call("activeTexture", gl.Constant("TEXTURE0").Value)
	quad.Uniform1i(quad.Sampler, 0)
	quad.DrawArrays("TRIANGLES", 0, len(quadVerts)/4)
	return nil
}
