package softgl

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path"
	"strings"

	// decoders for resource formats
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	billy "gopkg.in/src-d/go-billy.v4"

	"github.com/talklittle/servo/glapi"
)

// Loader loads images out of a site filesystem, resolving paths the way a
// page at the site root would resolve them: leading "../" segments cannot
// climb above the root.
type Loader struct {
	Filesystem billy.Filesystem
}

var _ glapi.Loader = Loader{}

// Load decodes the image at ref on a new goroutine.
func (ld Loader) Load(ref string) *glapi.Future {
	fut := glapi.NewFuture()
	go func() {
		img, err := ld.decode(ref)
		if err != nil {
			fut.Reject(err)
			return
		}
		fut.Resolve(NewImage(img))
	}()
	return fut
}

func (ld Loader) decode(ref string) (image.Image, error) {
	name := SitePath(ref)
	if ld.Filesystem == nil {
		return nil, fmt.Errorf("load %q: no filesystem", name)
	}
	f, err := ld.Filesystem.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	defer f.Close()
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return img, nil
}

// SitePath resolves a page-relative reference against the site root,
// returning a slash-separated path without a leading slash.
func SitePath(ref string) string {
	return strings.TrimPrefix(path.Clean("/"+ref), "/")
}
