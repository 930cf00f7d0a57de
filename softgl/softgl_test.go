package softgl_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"github.com/talklittle/servo/glapi"
	"github.com/talklittle/servo/internal/testimage"
	"github.com/talklittle/servo/softgl"
)

var blue = testimage.Blue

func TestCanvas_ClearAndDraw(t *testing.T) {
	can := softgl.NewCanvas(image.Pt(8, 8))
	full := image.Rect(0, 0, 8, 8)

	require.NoError(t, can.DrawImage(softgl.NewImage(testimage.Solid(image.Pt(1, 1), blue)), full))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, blue, can.At(x, y), "pixel %v,%v", x, y)
		}
	}

	can.ClearRect(image.Rect(0, 0, 4, 8))
	assert.Equal(t, color.RGBA{}, can.At(0, 0))
	assert.Equal(t, color.RGBA{}, can.At(3, 7))
	assert.Equal(t, blue, can.At(4, 0))

	// out of range clears clip to the canvas
	can.ClearRect(image.Rect(-10, -10, 100, 100))
	assert.Equal(t, color.RGBA{}, can.At(7, 7))
}

func TestCanvas_DrawForeignImage(t *testing.T) {
	can := softgl.NewCanvas(image.Pt(2, 2))
	err := can.DrawImage(foreignImage{}, image.Rect(0, 0, 2, 2))
	assert.ErrorIs(t, err, glapi.ErrForeignSource)
}

type foreignImage struct{}

func (foreignImage) Size() image.Point { return image.Pt(1, 1) }

func newTexture(t *testing.T, gl *softgl.Context) *softgl.Texture {
	tex, err := gl.CreateTexture()
	require.NoError(t, err)
	return tex.(*softgl.Texture)
}

func upload(t *testing.T, gl *softgl.Context, can *softgl.Canvas) {
	require.NoError(t, gl.TexImage2D(glapi.Texture2D, 0, glapi.RGBA, glapi.RGBA, glapi.UnsignedByte, can))
	require.Equal(t, glapi.NoError, gl.GetError())
}

func TestContext_UploadAndSample(t *testing.T) {
	size := image.Pt(16, 16)
	can := softgl.NewCanvas(size)
	gl := softgl.NewContext(size)
	tex := newTexture(t, gl)

	require.NoError(t, can.DrawImage(softgl.NewImage(testimage.Solid(image.Pt(1, 1), blue)), image.Rectangle{Max: size}))
	gl.BindTexture(glapi.Texture2D, tex)
	gl.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, glapi.Linear)
	upload(t, gl, can)
	assert.Equal(t, 1, tex.Uploads())
	assert.Equal(t, 1, can.Sources())
	assert.Equal(t, size, tex.Size())

	require.NoError(t, gl.DrawTexturedQuad())
	buf, err := gl.ReadPixels(image.Rectangle{Max: size})
	require.NoError(t, err)
	require.Len(t, buf, 4*16*16)
	for i := 0; i < len(buf); i += 4 {
		require.Equal(t, []uint8{0, 0, 255, 255}, buf[i:i+4], "pixel %d", i/4)
	}
}

func TestContext_DefaultMinFilterIsIncomplete(t *testing.T) {
	size := image.Pt(4, 4)
	can := softgl.NewCanvas(size)
	gl := softgl.NewContext(size)
	tex := newTexture(t, gl)

	require.NoError(t, can.DrawImage(softgl.NewImage(testimage.Solid(image.Pt(1, 1), blue)), image.Rectangle{Max: size}))
	gl.BindTexture(glapi.Texture2D, tex)
	upload(t, gl, can)
	assert.False(t, tex.Complete(), "NEAREST_MIPMAP_LINEAR without mipmaps")

	require.NoError(t, gl.DrawTexturedQuad())
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, gl.PixelAt(0, 0))
}

func TestTexture_Completeness(t *testing.T) {
	gl := softgl.NewContext(image.Pt(1, 1))
	tex := newTexture(t, gl)
	assert.False(t, tex.Complete(), "nothing uploaded")

	gl.BindTexture(glapi.Texture2D, tex)
	upload(t, gl, softgl.NewCanvas(image.Pt(1, 1)))
	assert.True(t, tex.Complete(), "1x1 is mipmap complete at level 0")

	npot := newTexture(t, gl)
	gl.BindTexture(glapi.Texture2D, npot)
	gl.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, glapi.Linear)
	upload(t, gl, softgl.NewCanvas(image.Pt(3, 5)))
	assert.False(t, npot.Complete(), "NPOT with REPEAT wrapping")

	gl.TexParameteri(glapi.Texture2D, glapi.TextureWrapS, glapi.ClampToEdge)
	gl.TexParameteri(glapi.Texture2D, glapi.TextureWrapT, glapi.ClampToEdge)
	assert.True(t, npot.Complete())
	assert.Equal(t, glapi.NoError, gl.GetError())
}

func TestContext_ReuploadOverwrites(t *testing.T) {
	size := image.Pt(64, 64)
	can := softgl.NewCanvas(size)
	gl := softgl.NewContext(size)
	tex := newTexture(t, gl)
	full := image.Rectangle{Max: size}

	gl.BindTexture(glapi.Texture2D, tex)
	gl.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, glapi.Linear)

	require.NoError(t, can.DrawImage(softgl.NewImage(testimage.Noise(size, 3, 1.0/8)), full))
	upload(t, gl, can)

	can.ClearRect(full)
	require.NoError(t, can.DrawImage(softgl.NewImage(testimage.Hues(size)), full))
	upload(t, gl, can)
	assert.Equal(t, 2, tex.Uploads())

	require.NoError(t, gl.DrawTexturedQuad())
	buf, err := gl.ReadPixels(full)
	require.NoError(t, err)

	// Without UNPACK_FLIP_Y the first canvas row is texture row 0, which
	// the quad draws at the bottom of the buffer, which ReadPixels returns
	// first: read-back rows line up with canvas rows.
	want := can.Snapshot()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			i := 4 * (y*size.X + x)
			c := want.RGBAAt(x, y)
			require.Equal(t, []uint8{c.R, c.G, c.B, c.A}, buf[i:i+4], "pixel %v,%v", x, y)
		}
	}
}

func TestContext_Unpremultiplies(t *testing.T) {
	can := softgl.NewCanvas(image.Pt(1, 1))
	half := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	half.SetNRGBA(0, 0, color.NRGBA{0, 0, 255, 128})
	require.NoError(t, can.DrawImage(softgl.NewImage(half), image.Rect(0, 0, 1, 1)))
	assert.Equal(t, color.RGBA{0, 0, 128, 128}, can.At(0, 0), "canvas holds premultiplied colour")

	gl := softgl.NewContext(image.Pt(1, 1))
	tex := newTexture(t, gl)
	gl.BindTexture(glapi.Texture2D, tex)
	upload(t, gl, can)
	require.NoError(t, gl.DrawTexturedQuad())
	c := gl.PixelAt(0, 0)
	assert.InDelta(t, 255, int(c.B), 1)
	assert.Equal(t, uint8(128), c.A)
}

func TestContext_Errors(t *testing.T) {
	gl := softgl.NewContext(image.Pt(2, 2))
	other := softgl.NewContext(image.Pt(2, 2))
	foreign := newTexture(t, other)

	gl.BindTexture(glapi.Texture2D, foreign)
	assert.Equal(t, glapi.InvalidOperation, gl.GetError())
	assert.Equal(t, glapi.NoError, gl.GetError(), "GetError clears")

	gl.BindTexture(glapi.Enum(0x1234), nil)
	assert.Equal(t, glapi.InvalidEnum, gl.GetError())

	can := softgl.NewCanvas(image.Pt(2, 2))
	require.NoError(t, gl.TexImage2D(glapi.Texture2D, 0, glapi.RGBA, glapi.RGBA, glapi.UnsignedByte, can))
	assert.Equal(t, glapi.InvalidOperation, gl.GetError(), "no texture bound")

	tex := newTexture(t, gl)
	gl.BindTexture(glapi.Texture2D, tex)
	require.NoError(t, gl.TexImage2D(glapi.Texture2D, 1, glapi.RGBA, glapi.RGBA, glapi.UnsignedByte, can))
	assert.Equal(t, glapi.InvalidValue, gl.GetError())
	require.NoError(t, gl.TexImage2D(glapi.Texture2D, 0, glapi.RGB, glapi.RGBA, glapi.UnsignedByte, can))
	assert.Equal(t, glapi.InvalidOperation, gl.GetError())
	gl.TexParameteri(glapi.Texture2D, glapi.TextureMagFilter, glapi.LinearMipmapLinear)
	assert.Equal(t, glapi.InvalidEnum, gl.GetError())

	err := gl.TexImage2D(glapi.Texture2D, 0, glapi.RGBA, glapi.RGBA, glapi.UnsignedByte, nil)
	assert.ErrorIs(t, err, glapi.ErrForeignSource)

	gl.DeleteTexture(tex)
	assert.Nil(t, gl.Bound())
	gl.BindTexture(glapi.Texture2D, tex)
	assert.Equal(t, glapi.InvalidOperation, gl.GetError(), "deleted texture")
	gl.DeleteTexture(tex)
	assert.Equal(t, glapi.NoError, gl.GetError())
}

func TestContext_Clear(t *testing.T) {
	gl := softgl.NewContext(image.Pt(4, 4))
	red := color.RGBA{255, 0, 0, 255}

	gl.ClearColor(red)
	gl.Clear(glapi.ColorBufferBit | glapi.DepthBufferBit)
	require.Equal(t, glapi.NoError, gl.GetError())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, color.NRGBA{255, 0, 0, 255}, gl.PixelAt(x, y), "pixel %v,%v", x, y)
		}
	}

	// depth alone leaves the color buffer alone
	gl.ClearColor(color.Transparent)
	gl.Clear(glapi.DepthBufferBit)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, gl.PixelAt(0, 0))

	gl.Clear(glapi.ColorBufferBit | 0x1)
	assert.Equal(t, glapi.InvalidValue, gl.GetError())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, gl.PixelAt(0, 0))

	gl.Clear(glapi.ColorBufferBit)
	assert.Equal(t, color.NRGBA{}, gl.PixelAt(3, 3))
}

func TestContext_Release(t *testing.T) {
	gl := softgl.NewContext(image.Pt(2, 2))
	a, b := newTexture(t, gl), newTexture(t, gl)
	gl.BindTexture(glapi.Texture2D, b)
	assert.Equal(t, 2, gl.Textures())

	gl.DeleteTexture(a)
	assert.True(t, a.Deleted())
	assert.Equal(t, 1, gl.Textures())

	gl.Release()
	assert.True(t, b.Deleted())
	assert.Nil(t, gl.Bound())
	assert.Equal(t, 0, gl.Textures())

	gl.BindTexture(glapi.Texture2D, b)
	assert.Equal(t, glapi.InvalidOperation, gl.GetError())
}

func TestContext_ReadPixelsOutside(t *testing.T) {
	gl := softgl.NewContext(image.Pt(2, 2))
	require.NoError(t, gl.DrawTexturedQuad())
	buf, err := gl.ReadPixels(image.Rect(1, 1, 3, 3))
	require.NoError(t, err)
	require.Len(t, buf, 16)
	assert.Equal(t, []uint8{0, 0, 0, 255}, buf[0:4], "inside reads the unbound black")
	assert.Equal(t, []uint8{0, 0, 0, 0}, buf[4:8], "outside reads zero")
}

func TestLoader(t *testing.T) {
	site := memfs.New()
	require.NoError(t, testimage.Write(site, "resources"))
	ld := softgl.Loader{Filesystem: site}

	img, err := ld.Load("../../../resources/blue-1x1.png").Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1, 1), img.Size())

	_, err = ld.Load("../../../resources/missing.jpg").Await(context.Background())
	assert.Error(t, err)

	require.NoError(t, util.WriteFile(site, "resources/corrupt.jpg", []byte("not a jpeg"), 0644))
	_, err = ld.Load("resources/corrupt.jpg").Await(context.Background())
	assert.Error(t, err)

	_, err = softgl.Loader{}.Load("resources/blue-1x1.png").Await(context.Background())
	assert.Error(t, err)
}

func TestSitePath(t *testing.T) {
	for _, tc := range []struct{ in, out string }{
		{"../../../resources/blue-1x1.jpg", "resources/blue-1x1.jpg"},
		{"resources/blue-1x1.jpg", "resources/blue-1x1.jpg"},
		{"/a/./b/../c.png", "a/c.png"},
	} {
		assert.Equal(t, tc.out, softgl.SitePath(tc.in), tc.in)
	}
}
