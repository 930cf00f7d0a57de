//go:build js
// +build js

package gl

import (
	"fmt"
	"image"
	"syscall/js"

	"github.com/talklittle/servo/glapi"
)

// Image is a loaded HTMLImageElement.
type Image struct {
	el js.Value
}

// Size returns the natural size of the image.
func (im *Image) Size() image.Point {
	return image.Pt(im.el.Get("naturalWidth").Int(), im.el.Get("naturalHeight").Int())
}

// ImageLoader loads images through HTMLImageElements, resolving paths
// against the page's URL.
type ImageLoader struct{}

var _ glapi.Loader = ImageLoader{}

// Load creates an image element for path, settling the returned future from
// its load or error event.
func (ImageLoader) Load(path string) *glapi.Future {
	fut := glapi.NewFuture()
	el := js.Global().Get("Image").New()

	var onload, onerror js.Func
	release := func() {
		el.Set("onload", js.Null())
		el.Set("onerror", js.Null())
		onload.Release()
		onerror.Release()
	}
	onload = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		release()
		fut.Resolve(&Image{el})
		return nil
	})
	onerror = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		release()
		fut.Reject(fmt.Errorf("failed to load image %q", path))
		return nil
	})
	el.Set("onload", onload)
	el.Set("onerror", onerror)
	el.Set("src", path)
	return fut
}
