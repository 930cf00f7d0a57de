//go:build js
// +build js

package gl

import (
	"fmt"
	"image"
	"syscall/js"

	"github.com/talklittle/servo/glapi"
)

// ReadPixels reads a block of RGBA pixels from the current color
// framebuffer, bottom row first.
func (gl *GL) ReadPixels(r image.Rectangle) ([]uint8, error) {
	n := 4 * r.Dx() * r.Dy()
	arr := js.Global().Get("Uint8Array").New(n)
	gl.gl.Call("readPixels",
		r.Min.X, r.Min.Y, r.Dx(), r.Dy(),
		int(glapi.RGBA), int(glapi.UnsignedByte), arr)
	buf := make([]uint8, n)
	if copied := js.CopyBytesToGo(buf, arr); copied != n {
		return nil, fmt.Errorf("readPixels copied %d of %d bytes", copied, n)
	}
	return buf, nil
}
