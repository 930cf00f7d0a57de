package glapi

import "fmt"

// Enum is a WebGL enumerated value. The numeric values match WebGL, so they
// pass through to a browser context unchanged.
type Enum uint32

// Error codes.
const (
	NoError          Enum = 0
	InvalidEnum      Enum = 0x0500
	InvalidValue     Enum = 0x0501
	InvalidOperation Enum = 0x0502
)

// Clear mask bits.
const (
	DepthBufferBit   Enum = 0x00000100
	StencilBufferBit Enum = 0x00000400
	ColorBufferBit   Enum = 0x00004000
)

// Texture targets, formats and types.
const (
	Texture2D    Enum = 0x0DE1
	RGBA         Enum = 0x1908
	RGB          Enum = 0x1907
	UnsignedByte Enum = 0x1401
)

// Texture parameter names.
const (
	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
)

// Texture parameter values.
const (
	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703
	Repeat               Enum = 0x2901
	ClampToEdge          Enum = 0x812F
	MirroredRepeat       Enum = 0x8370
)

var enumNames = map[Enum]string{
	NoError:              "NO_ERROR",
	InvalidEnum:          "INVALID_ENUM",
	InvalidValue:         "INVALID_VALUE",
	InvalidOperation:     "INVALID_OPERATION",
	DepthBufferBit:       "DEPTH_BUFFER_BIT",
	StencilBufferBit:     "STENCIL_BUFFER_BIT",
	ColorBufferBit:       "COLOR_BUFFER_BIT",
	Texture2D:            "TEXTURE_2D",
	RGBA:                 "RGBA",
	RGB:                  "RGB",
	UnsignedByte:         "UNSIGNED_BYTE",
	TextureMagFilter:     "TEXTURE_MAG_FILTER",
	TextureMinFilter:     "TEXTURE_MIN_FILTER",
	TextureWrapS:         "TEXTURE_WRAP_S",
	TextureWrapT:         "TEXTURE_WRAP_T",
	Nearest:              "NEAREST",
	Linear:               "LINEAR",
	NearestMipmapNearest: "NEAREST_MIPMAP_NEAREST",
	LinearMipmapNearest:  "LINEAR_MIPMAP_NEAREST",
	NearestMipmapLinear:  "NEAREST_MIPMAP_LINEAR",
	LinearMipmapLinear:   "LINEAR_MIPMAP_LINEAR",
	Repeat:               "REPEAT",
	ClampToEdge:          "CLAMP_TO_EDGE",
	MirroredRepeat:       "MIRRORED_REPEAT",
}

func (e Enum) String() string {
	if name, ok := enumNames[e]; ok {
		return "gl." + name
	}
	return fmt.Sprintf("gl.Enum(0x%04X)", uint32(e))
}

// IsMipmapFilter returns true if e is a minification filter that samples
// from mipmap levels.
func (e Enum) IsMipmapFilter() bool {
	switch e {
	case NearestMipmapNearest, LinearMipmapNearest, NearestMipmapLinear, LinearMipmapLinear:
		return true
	}
	return false
}
