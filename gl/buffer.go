//go:build js
// +build js

package gl

import (
	"encoding/binary"
	"fmt"
	"math"
	"syscall/js"
)

// Buffer is a WebGLBuffer along with the binding point and usage hint it was
// created for.
type Buffer struct {
	handle js.Value
	target Constant
	usage  Constant
}

func (buf Buffer) String() string {
	return fmt.Sprintf("Buffer(%v, %v)", buf.target, buf.usage)
}

// CreateBuffer creates a WebGLBuffer for the named target (ARRAY_BUFFER or
// ELEMENT_ARRAY_BUFFER) and usage (STATIC_DRAW, DYNAMIC_DRAW or STREAM_DRAW).
// Empty names default to ARRAY_BUFFER and STATIC_DRAW.
func (gl *GL) CreateBuffer(target, usage string) (Buffer, error) {
	switch target {
	case "":
		target = "ARRAY_BUFFER"
	case "ARRAY_BUFFER", "ELEMENT_ARRAY_BUFFER":
	default:
		return Buffer{}, fmt.Errorf("invalid buffer target %q", target)
	}
	switch usage {
	case "":
		usage = "STATIC_DRAW"
	case "STATIC_DRAW", "DYNAMIC_DRAW", "STREAM_DRAW":
	default:
		return Buffer{}, fmt.Errorf("invalid buffer usage %q", usage)
	}
	return Buffer{
		handle: gl.gl.Call("createBuffer"),
		target: gl.Constant(target),
		usage:  gl.Constant(usage),
	}, nil
}

// DeleteBuffer deletes buf; deleting it twice has no effect.
func (gl *GL) DeleteBuffer(buf Buffer) {
	gl.gl.Call("deleteBuffer", buf.handle)
}

// BindBuffer binds buf to its target.
func (gl *GL) BindBuffer(buf Buffer) {
	gl.gl.Call("bindBuffer", buf.target.Value, buf.handle)
}

// BufferData binds buf and replaces its data store with a copy of data, a
// typed array such as one made by Float32Array.
func (gl *GL) BufferData(buf Buffer, data js.Value) {
	gl.BindBuffer(buf)
	gl.gl.Call("bufferData", buf.target.Value, data, buf.usage.Value)
}

// Float32Array copies data into a new javascript Float32Array.
func Float32Array(data []float32) js.Value {
	b := make([]byte, 4*len(data))
	for i, f := range data {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"))
}
