/*
Package gl provides ergonomic Go idioms for using webgl, and implements the
glapi interfaces over a browser's WebGL and Canvas 2D APIs.

A GL wraps a WebGLRenderingContext; Canvas2D wraps a
CanvasRenderingContext2D; ImageLoader loads HTMLImageElements. NewEnv wires
all three into a glapi.Env for a conformance case.

Shader programs are built from ShaderSources and bound to a struct whose
Uniform, Attrib and Buffer fields are filled in by name; see Program.Bind.
*/
package gl

// TODO pixelStorei, so uploads can cover UNPACK_FLIP_Y_WEBGL and
// UNPACK_PREMULTIPLY_ALPHA_WEBGL.
