package softgl

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/talklittle/servo/glapi"
)

// Texture is a software texture object.
type Texture struct {
	ctx     *Context
	id      int
	deleted bool
	uploads int

	pix                  *image.NRGBA // level 0, first uploaded row first
	minFilter, magFilter glapi.Enum
	wrapS, wrapT         glapi.Enum
}

func (t *Texture) String() string {
	return fmt.Sprintf("Texture(%d)", t.id)
}

// Deleted reports whether DeleteTexture was called on t.
func (t *Texture) Deleted() bool { return t.deleted }

// Uploads returns how many times TexImage2D has replaced the contents.
func (t *Texture) Uploads() int { return t.uploads }

// Size returns the size of level 0, or zero if nothing was uploaded.
func (t *Texture) Size() image.Point {
	if t.pix == nil {
		return image.Point{}
	}
	return t.pix.Rect.Size()
}

// Complete reports whether sampling the texture returns its contents,
// following WebGL 1: level 0 must be defined; a mipmap minification filter
// needs every level down to 1x1 (only level 0 is modelled, so only a 1x1
// texture qualifies); non-power-of-two sizes need a non-mipmap minification
// filter and CLAMP_TO_EDGE wrapping.
func (t *Texture) Complete() bool {
	if t == nil || t.deleted || t.pix == nil {
		return false
	}
	size := t.pix.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return false
	}
	if t.minFilter.IsMipmapFilter() && (size.X != 1 || size.Y != 1) {
		return false
	}
	if !isPow2(size.X) || !isPow2(size.Y) {
		if t.minFilter.IsMipmapFilter() ||
			t.wrapS != glapi.ClampToEdge ||
			t.wrapT != glapi.ClampToEdge {
			return false
		}
	}
	return true
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// incompleteColor is what WebGL samples from an incomplete texture.
var incompleteColor = color.NRGBA{0, 0, 0, 255}

type sampler struct {
	tex    *Texture
	size   image.Point
	filter glapi.Enum
}

func newSampler(tex *Texture, target image.Point) sampler {
	if !tex.Complete() {
		return sampler{}
	}
	smp := sampler{tex: tex, size: tex.pix.Rect.Size()}
	// Texels per pixel above one minifies.
	if smp.size.X > target.X || smp.size.Y > target.Y {
		smp.filter = baseFilter(tex.minFilter)
	} else {
		smp.filter = tex.magFilter
	}
	return smp
}

// baseFilter maps a mipmap filter to the filter used within level 0.
func baseFilter(f glapi.Enum) glapi.Enum {
	switch f {
	case glapi.NearestMipmapNearest, glapi.NearestMipmapLinear:
		return glapi.Nearest
	case glapi.LinearMipmapNearest, glapi.LinearMipmapLinear:
		return glapi.Linear
	}
	return f
}

func (smp sampler) sample(s, t float32) color.NRGBA {
	if smp.tex == nil {
		return incompleteColor
	}
	if smp.filter == glapi.Nearest {
		x := wrap(int(math32.Floor(s*float32(smp.size.X))), smp.size.X, smp.tex.wrapS)
		y := wrap(int(math32.Floor(t*float32(smp.size.Y))), smp.size.Y, smp.tex.wrapT)
		return smp.tex.pix.NRGBAAt(x, y)
	}

	u := s*float32(smp.size.X) - 0.5
	v := t*float32(smp.size.Y) - 0.5
	u0, v0 := math32.Floor(u), math32.Floor(v)
	a, b := u-u0, v-v0
	x0 := wrap(int(u0), smp.size.X, smp.tex.wrapS)
	x1 := wrap(int(u0)+1, smp.size.X, smp.tex.wrapS)
	y0 := wrap(int(v0), smp.size.Y, smp.tex.wrapT)
	y1 := wrap(int(v0)+1, smp.size.Y, smp.tex.wrapT)

	c00 := smp.tex.pix.NRGBAAt(x0, y0)
	c10 := smp.tex.pix.NRGBAAt(x1, y0)
	c01 := smp.tex.pix.NRGBAAt(x0, y1)
	c11 := smp.tex.pix.NRGBAAt(x1, y1)
	lerp := func(p00, p10, p01, p11 uint8) uint8 {
		top := float32(p00)*(1-a) + float32(p10)*a
		bot := float32(p01)*(1-a) + float32(p11)*a
		return uint8(math32.Min(255, math32.Floor(top*(1-b)+bot*b+0.5)))
	}
	return color.NRGBA{
		R: lerp(c00.R, c10.R, c01.R, c11.R),
		G: lerp(c00.G, c10.G, c01.G, c11.G),
		B: lerp(c00.B, c10.B, c01.B, c11.B),
		A: lerp(c00.A, c10.A, c01.A, c11.A),
	}
}

// wrap maps texel coordinate i into [0, n) per the wrap mode.
func wrap(i, n int, mode glapi.Enum) int {
	switch mode {
	case glapi.ClampToEdge:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	case glapi.MirroredRepeat:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}
