package softgl

import (
	"image"

	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/talklittle/servo/glapi"
)

// NewEnv returns an environment with a canvas and a drawing buffer of the
// given size, loading resources out of site.
func NewEnv(size image.Point, site billy.Filesystem) glapi.Env {
	return glapi.Env{
		Canvas: NewCanvas(size),
		GL:     NewContext(size),
		Loader: Loader{Filesystem: site},
	}
}
