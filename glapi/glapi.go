/*
Package glapi describes the slice of the Canvas 2D and WebGL APIs that a
conformance case drives.

Two implementations exist: package gl binds the real browser APIs through
syscall/js, and package softgl models them in pure Go so that cases also run
headless.

Coordinates passed to a Canvas2D have their origin at the top left, as in the
Canvas 2D API. Coordinates passed to a Context (ReadPixels) have their origin
at the bottom left, as in WebGL.
*/
package glapi

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrForeignTexture is returned when a Texture handle is given to a
	// Context that did not create it.
	ErrForeignTexture = errors.New("texture belongs to another context")

	// ErrForeignSource is returned when a Canvas2D or Image from another
	// implementation is given as a draw or upload source.
	ErrForeignSource = errors.New("source belongs to another implementation")
)

// Image is a decoded image resource, usable as a Canvas2D draw source.
type Image interface {
	// Size returns the natural size of the image in pixels.
	Size() image.Point
}

// Texture is an opaque handle to a texture object owned by a Context.
type Texture interface {
	fmt.Stringer
}

// Canvas2D is a fixed-size pixel buffer mutated by 2D drawing calls.
type Canvas2D interface {
	// Size returns the canvas width and height.
	Size() image.Point

	// ClearRect sets every pixel within r to transparent black.
	ClearRect(r image.Rectangle)

	// DrawImage draws img scaled to fill dst, compositing source-over.
	DrawImage(img Image, dst image.Rectangle) error
}

// Context is a WebGL rendering context.
//
// Like WebGL, most calls do not return errors; invalid use records an error
// code retrieved by GetError. Returned errors are reserved for failures that
// WebGL would raise as exceptions, such as passing a source of the wrong
// type.
type Context interface {
	// DrawingBufferSize returns the size of the drawing buffer.
	DrawingBufferSize() image.Point

	CreateTexture() (Texture, error)
	DeleteTexture(tex Texture)

	// BindTexture binds tex to target; a nil tex unbinds.
	BindTexture(target Enum, tex Texture)
	TexParameteri(target, pname, param Enum)

	// TexImage2D uploads the current pixels of src into the texture bound to
	// target.
	TexImage2D(target Enum, level int, internalFormat, format, typ Enum, src Canvas2D) error

	// ClearColor sets the color Clear fills the color buffer with.
	ClearColor(c color.Color)

	// Clear fills the buffers named by mask, a combination of the
	// *BufferBit values.
	Clear(mask Enum)

	// DrawTexturedQuad draws the texture bound to Texture2D as a unit quad
	// covering the whole drawing buffer.
	DrawTexturedQuad() error

	// ReadPixels reads RGBA bytes out of the drawing buffer, row by row from
	// the bottom of r.
	ReadPixels(r image.Rectangle) ([]uint8, error)

	// GetError returns and clears the oldest recorded error code.
	GetError() Enum

	// Release frees the programs, buffers and other objects the context
	// created for its own use, such as the textured quad program.
	Release()
}

// Loader loads image resources asynchronously.
type Loader interface {
	// Load starts loading the image at path, returning a Future settled once
	// the image decodes or fails to.
	Load(path string) *Future
}

// Env bundles the collaborators one conformance case needs.
type Env struct {
	Canvas Canvas2D
	GL     Context
	Loader Loader
}
