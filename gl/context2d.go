//go:build js
// +build js

package gl

import (
	"errors"
	"fmt"
	"image"
	"syscall/js"

	"github.com/talklittle/servo/glapi"
)

// Canvas2D is a <canvas> element with a 2d context.
type Canvas2D struct {
	el  js.Value
	ctx js.Value
}

var _ glapi.Canvas2D = (*Canvas2D)(nil)

// NewCanvas2D sizes the given <canvas> element and acquires its 2d context.
func NewCanvas2D(el js.Value, size image.Point) (*Canvas2D, error) {
	if !el.Truthy() {
		return nil, errors.New("no <canvas> element given")
	}
	el.Set("width", size.X)
	el.Set("height", size.Y)
	ctx := el.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, errors.New("unable to get 2d context")
	}
	return &Canvas2D{el: el, ctx: ctx}, nil
}

// Size returns the size of the <canvas> element.
func (can *Canvas2D) Size() image.Point {
	return image.Pt(can.el.Get("width").Int(), can.el.Get("height").Int())
}

// ClearRect sets every pixel within r to transparent black.
func (can *Canvas2D) ClearRect(r image.Rectangle) {
	can.ctx.Call("clearRect", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// DrawImage draws an image loaded by ImageLoader scaled to fill dst.
func (can *Canvas2D) DrawImage(img glapi.Image, dst image.Rectangle) error {
	im, ok := img.(*Image)
	if !ok {
		return fmt.Errorf("gl.Canvas2D.DrawImage: %w", glapi.ErrForeignSource)
	}
	can.ctx.Call("drawImage", im.el, dst.Min.X, dst.Min.Y, dst.Dx(), dst.Dy())
	return nil
}
