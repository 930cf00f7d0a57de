package softgl

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/talklittle/servo/glapi"
)

// Context is a software WebGL context with a single texture unit.
//
// The drawing buffer is stored bottom row first, matching the row order of
// ReadPixels.
type Context struct {
	fb     *image.NRGBA
	clear  color.NRGBA
	bound  *Texture
	nextID int
	live   map[*Texture]struct{}
	errs   []glapi.Enum
}

var _ glapi.Context = (*Context)(nil)

// NewContext creates a context with a drawing buffer of the given size,
// cleared to transparent black.
func NewContext(size image.Point) *Context {
	return &Context{
		fb:   image.NewNRGBA(image.Rectangle{Max: size}),
		live: make(map[*Texture]struct{}),
	}
}

// DrawingBufferSize returns the size of the drawing buffer.
func (ctx *Context) DrawingBufferSize() image.Point { return ctx.fb.Rect.Size() }

// GetError returns and clears the oldest recorded error code.
func (ctx *Context) GetError() glapi.Enum {
	if len(ctx.errs) == 0 {
		return glapi.NoError
	}
	code := ctx.errs[0]
	ctx.errs = ctx.errs[1:]
	return code
}

// WebGL records at most one outstanding error per code.
func (ctx *Context) setError(code glapi.Enum) {
	for _, have := range ctx.errs {
		if have == code {
			return
		}
	}
	ctx.errs = append(ctx.errs, code)
}

// CreateTexture creates a texture with WebGL's default sampler state.
func (ctx *Context) CreateTexture() (glapi.Texture, error) {
	ctx.nextID++
	t := &Texture{
		ctx:       ctx,
		id:        ctx.nextID,
		minFilter: glapi.NearestMipmapLinear,
		magFilter: glapi.Linear,
		wrapS:     glapi.Repeat,
		wrapT:     glapi.Repeat,
	}
	ctx.live[t] = struct{}{}
	return t, nil
}

// DeleteTexture deletes tex, unbinding it if bound. Deleting a deleted
// texture has no effect.
func (ctx *Context) DeleteTexture(tex glapi.Texture) {
	t, ok := ctx.own(tex)
	if !ok || t == nil {
		return
	}
	if ctx.bound == t {
		ctx.bound = nil
	}
	t.deleted = true
	t.pix = nil
	delete(ctx.live, t)
}

// Textures returns how many textures are created and not yet deleted.
func (ctx *Context) Textures() int { return len(ctx.live) }

// Release deletes every live texture.
func (ctx *Context) Release() {
	for t := range ctx.live {
		ctx.DeleteTexture(t)
	}
}

// BindTexture binds tex to target; a nil tex unbinds.
func (ctx *Context) BindTexture(target glapi.Enum, tex glapi.Texture) {
	if target != glapi.Texture2D {
		ctx.setError(glapi.InvalidEnum)
		return
	}
	t, ok := ctx.own(tex)
	if !ok || (t != nil && t.deleted) {
		ctx.setError(glapi.InvalidOperation)
		return
	}
	ctx.bound = t
}

// Bound returns the texture bound to Texture2D, or nil.
func (ctx *Context) Bound() *Texture { return ctx.bound }

func (ctx *Context) own(tex glapi.Texture) (*Texture, bool) {
	if tex == nil {
		return nil, true
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return nil, false
	}
	return t, t.ctx == ctx
}

// TexParameteri sets a sampler parameter on the bound texture.
func (ctx *Context) TexParameteri(target, pname, param glapi.Enum) {
	if target != glapi.Texture2D {
		ctx.setError(glapi.InvalidEnum)
		return
	}
	t := ctx.bound
	if t == nil {
		ctx.setError(glapi.InvalidOperation)
		return
	}
	switch pname {
	case glapi.TextureMinFilter:
		switch param {
		case glapi.Nearest, glapi.Linear,
			glapi.NearestMipmapNearest, glapi.LinearMipmapNearest,
			glapi.NearestMipmapLinear, glapi.LinearMipmapLinear:
			t.minFilter = param
			return
		}
	case glapi.TextureMagFilter:
		switch param {
		case glapi.Nearest, glapi.Linear:
			t.magFilter = param
			return
		}
	case glapi.TextureWrapS, glapi.TextureWrapT:
		switch param {
		case glapi.Repeat, glapi.ClampToEdge, glapi.MirroredRepeat:
			if pname == glapi.TextureWrapS {
				t.wrapS = param
			} else {
				t.wrapT = param
			}
			return
		}
	}
	ctx.setError(glapi.InvalidEnum)
}

// TexImage2D replaces the bound texture's contents with the current pixels
// of src, un-premultiplying them as WebGL does by default.
//
// Only level 0 with matching RGBA formats and UNSIGNED_BYTE data is
// modelled; other levels record INVALID_VALUE.
func (ctx *Context) TexImage2D(target glapi.Enum, level int, internalFormat, format, typ glapi.Enum, src glapi.Canvas2D) error {
	can, ok := src.(*Canvas)
	if !ok || can == nil {
		return fmt.Errorf("softgl.Context.TexImage2D: %w", glapi.ErrForeignSource)
	}
	switch {
	case target != glapi.Texture2D:
		ctx.setError(glapi.InvalidEnum)
	case level != 0:
		ctx.setError(glapi.InvalidValue)
	case format != glapi.RGBA || typ != glapi.UnsignedByte:
		ctx.setError(glapi.InvalidEnum)
	case internalFormat != format:
		ctx.setError(glapi.InvalidOperation)
	case ctx.bound == nil:
		ctx.setError(glapi.InvalidOperation)
	default:
		t := ctx.bound
		pix := image.NewNRGBA(image.Rectangle{Max: can.Size()})
		draw.Draw(pix, pix.Rect, can.pix, image.Point{}, draw.Src)
		t.pix = pix
		t.uploads++
		can.sources++
	}
	return nil
}

// ClearColor sets the color Clear fills the drawing buffer with.
func (ctx *Context) ClearColor(c color.Color) {
	ctx.clear = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Clear fills the drawing buffer with the clear color if mask has
// ColorBufferBit. There is no depth or stencil buffer, so their bits are
// accepted and ignored; any other bit records INVALID_VALUE.
func (ctx *Context) Clear(mask glapi.Enum) {
	if mask&^(glapi.ColorBufferBit|glapi.DepthBufferBit|glapi.StencilBufferBit) != 0 {
		ctx.setError(glapi.InvalidValue)
		return
	}
	if mask&glapi.ColorBufferBit != 0 {
		draw.Draw(ctx.fb, ctx.fb.Rect, image.NewUniform(ctx.clear), image.Point{}, draw.Src)
	}
}

// DrawTexturedQuad fills the drawing buffer by sampling the bound texture at
// each pixel centre, with texture coordinate (0, 0) at the bottom left.
func (ctx *Context) DrawTexturedQuad() error {
	size := ctx.fb.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	smp := newSampler(ctx.bound, size)
	for y := 0; y < size.Y; y++ {
		t := (float32(y) + 0.5) / float32(size.Y)
		for x := 0; x < size.X; x++ {
			s := (float32(x) + 0.5) / float32(size.X)
			ctx.fb.SetNRGBA(x, y, smp.sample(s, t))
		}
	}
	return nil
}

// ReadPixels returns RGBA bytes for r, bottom row first. Pixels of r that lie
// outside the drawing buffer read as zero.
func (ctx *Context) ReadPixels(r image.Rectangle) ([]uint8, error) {
	if r.Dx() < 0 || r.Dy() < 0 {
		ctx.setError(glapi.InvalidValue)
		return nil, nil
	}
	buf := make([]uint8, 4*r.Dx()*r.Dy())
	in := r.Intersect(ctx.fb.Rect)
	for y := in.Min.Y; y < in.Max.Y; y++ {
		row := (y - r.Min.Y) * r.Dx() * 4
		for x := in.Min.X; x < in.Max.X; x++ {
			c := ctx.fb.NRGBAAt(x, y)
			i := row + (x-r.Min.X)*4
			buf[i], buf[i+1], buf[i+2], buf[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return buf, nil
}

// PixelAt returns the drawing buffer pixel at x, y, with the origin at the
// bottom left.
func (ctx *Context) PixelAt(x, y int) color.NRGBA { return ctx.fb.NRGBAAt(x, y) }
