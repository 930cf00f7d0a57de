//go:build js
// +build js

package gl

import (
	"fmt"
	"image"
	"syscall/js"

	"github.com/talklittle/servo/glapi"
)

// NewEnv creates two <canvas> elements in the document body: "canvas", the
// 2d source canvas, and "example", carrying the webgl context. Browsers give
// a <canvas> only one context type, so the two surfaces cannot share one
// element.
func NewEnv(document js.Value, size image.Point) (glapi.Env, error) {
	body := document.Get("body")

	srcEl := document.Call("createElement", "canvas")
	srcEl.Set("id", "canvas")
	body.Call("appendChild", srcEl)
	src, err := NewCanvas2D(srcEl, size)
	if err != nil {
		return glapi.Env{}, fmt.Errorf("source canvas: %w", err)
	}

	glEl := document.Call("createElement", "canvas")
	glEl.Set("id", "example")
	body.Call("appendChild", glEl)
	var can Canvas
	if err := can.Init(glEl); err != nil {
		return glapi.Env{}, fmt.Errorf("webgl canvas: %w", err)
	}
	can.Resize(size)

	return glapi.Env{
		Canvas: src,
		GL:     &can.GL,
		Loader: ImageLoader{},
	}, nil
}
