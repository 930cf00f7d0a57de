// Package softgl models the Canvas 2D and WebGL APIs described by package
// glapi in pure Go, so conformance cases run without a browser.
//
// The model is deliberately narrow: one 2D canvas type, RGBA/UNSIGNED_BYTE
// textures at level 0, WebGL 1 texture completeness rules, and a fixed
// textured quad draw. Pixel storage follows the browser: a Canvas holds
// premultiplied colour, textures and the drawing buffer hold the raw bytes
// WebGL would.
package softgl

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/talklittle/servo/glapi"
)

// Canvas is a software 2D canvas.
type Canvas struct {
	pix     *image.RGBA
	sources int
}

var _ glapi.Canvas2D = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(size image.Point) *Canvas {
	return &Canvas{pix: image.NewRGBA(image.Rectangle{Max: size})}
}

// Size returns the canvas width and height.
func (can *Canvas) Size() image.Point { return can.pix.Rect.Size() }

// ClearRect sets every pixel within r to transparent black.
func (can *Canvas) ClearRect(r image.Rectangle) {
	draw.Draw(can.pix, r.Intersect(can.pix.Rect), image.Transparent, image.Point{}, draw.Src)
}

// DrawImage draws img scaled into dst with bilinear smoothing, as the Canvas
// 2D API does with imageSmoothingEnabled at its default.
func (can *Canvas) DrawImage(img glapi.Image, dst image.Rectangle) error {
	src, ok := img.(*Image)
	if !ok {
		return fmt.Errorf("softgl.Canvas.DrawImage: %w", glapi.ErrForeignSource)
	}
	if dst.Empty() || src.Size() == (image.Point{}) {
		return nil
	}
	draw.ApproxBiLinear.Scale(can.pix, dst, src.img, src.img.Bounds(), draw.Over, nil)
	return nil
}

// At returns the colour of the pixel at x, y, with the origin at the top
// left.
func (can *Canvas) At(x, y int) color.RGBA {
	return can.pix.RGBAAt(x, y)
}

// Snapshot returns a copy of the canvas pixels.
func (can *Canvas) Snapshot() *image.RGBA {
	cp := image.NewRGBA(can.pix.Rect)
	copy(cp.Pix, can.pix.Pix)
	return cp
}

// Sources returns how many times the canvas has been uploaded by TexImage2D.
func (can *Canvas) Sources() int { return can.sources }
