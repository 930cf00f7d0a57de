package softgl

import (
	"image"

	"github.com/talklittle/servo/glapi"
)

// Image adapts a decoded image.Image to glapi.Image.
type Image struct {
	img image.Image
}

var _ glapi.Image = (*Image)(nil)

// NewImage wraps img.
func NewImage(img image.Image) *Image { return &Image{img} }

// Size returns the image's bounds size.
func (im *Image) Size() image.Point { return im.img.Bounds().Size() }
