//go:build js
// +build js

package gl

import (
	"errors"
	"image"
	"syscall/js"
)

// Canvas is a <canvas> element with a webgl context.
type Canvas struct {
	el js.Value
	GL
}

// Init acquires the webgl context of el.
func (can *Canvas) Init(el js.Value) error {
	if !el.Truthy() {
		return errors.New("no <canvas> element given")
	}
	can.el = el
	return can.GL.Init(el)
}

// Resize sets the <canvas> element's size, and the viewport to match.
func (can *Canvas) Resize(size image.Point) {
	can.el.Set("width", size.X)
	can.el.Set("height", size.Y)
	can.Viewport(image.Rectangle{Max: size})
}
