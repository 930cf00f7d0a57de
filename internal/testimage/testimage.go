// Package testimage generates the image resources conformance cases load.
package testimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path"

	"github.com/hsluv/hsluv-go"
	"github.com/ojrac/opensimplex-go"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/util"
)

// Blue is the opaque blue of the blue-1x1 resources.
var Blue = color.RGBA{0, 0, 255, 255}

// Resource is a named generated image.
type Resource struct {
	Name  string
	Image image.Image
}

// Resources returns every generated resource.
func Resources() []Resource {
	return []Resource{
		{"blue-1x1.jpg", Solid(image.Pt(1, 1), Blue)},
		{"blue-1x1.png", Solid(image.Pt(1, 1), Blue)},
		{"noise-64x64.png", Noise(image.Pt(64, 64), 1, 1.0/16)},
		{"hues-64x64.png", Hues(image.Pt(64, 64))},
	}
}

// Solid returns an image of the given size filled with c.
func Solid(size image.Point, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = rgba.R
		img.Pix[i+1] = rgba.G
		img.Pix[i+2] = rgba.B
		img.Pix[i+3] = rgba.A
	}
	return img
}

// Noise returns an opaque grayscale image of opensimplex noise sampled at the
// given scale per pixel.
func Noise(size image.Point, seed int64, scale float64) *image.RGBA {
	noise := opensimplex.New(seed)
	img := image.NewRGBA(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			// Eval2 ranges over about [-1, 1].
			v := (noise.Eval2(float64(x)*scale, float64(y)*scale) + 1) / 2
			g := uint8(clamp01(v) * 255)
			img.SetRGBA(x, y, color.RGBA{g, g, g, 255})
		}
	}
	return img
}

// Hues returns an opaque image sweeping HSLuv hue across x and lightness
// across y, so that every row and column differs.
func Hues(size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		light := 20 + 60*float64(y)/float64(maxInt(1, size.Y-1))
		for x := 0; x < size.X; x++ {
			hue := 360 * float64(x) / float64(maxInt(1, size.X))
			r, g, b := hsluv.HsluvToRGB(hue, 100, light)
			img.SetRGBA(x, y, color.RGBA{
				uint8(clamp01(r) * 255),
				uint8(clamp01(g) * 255),
				uint8(clamp01(b) * 255),
				255,
			})
		}
	}
	return img
}

// Encode writes img to w in the format named by name's extension.
func Encode(w io.Writer, name string, img image.Image) error {
	switch ext := path.Ext(name); ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image extension %q", ext)
	}
}

// Write encodes every resource into dir within fs.
func Write(fs billy.Filesystem, dir string) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, res := range Resources() {
		var buf bytes.Buffer
		if err := Encode(&buf, res.Name, res.Image); err != nil {
			return fmt.Errorf("encode %s: %w", res.Name, err)
		}
		if err := util.WriteFile(fs, path.Join(dir, res.Name), buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("write %s: %w", res.Name, err)
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
