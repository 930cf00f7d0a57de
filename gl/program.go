//go:build js
// +build js

package gl

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"syscall/js"
)

// ShaderSource is GLSL source for one shader stage, named by its GL shader
// type constant (VERTEX_SHADER or FRAGMENT_SHADER).
type ShaderSource struct {
	Type   string
	Source string
}

// VertexShader returns a vertex stage ShaderSource.
func VertexShader(source string) ShaderSource { return ShaderSource{"VERTEX_SHADER", source} }

// FragmentShader returns a fragment stage ShaderSource.
func FragmentShader(source string) ShaderSource { return ShaderSource{"FRAGMENT_SHADER", source} }

// Program is a linked WebGLProgram.
type Program struct {
	*GL
	handle  js.Value
	Sources []ShaderSource
}

// Build compiles the given sources, reusing shaders compiled before, and
// links them into a new Program, which Release deletes.
func (gl *GL) Build(sources ...ShaderSource) (Program, error) {
	prog := Program{GL: gl, Sources: sources}
	shaders := make([]js.Value, 0, len(sources))
	for _, src := range sources {
		shader, err := gl.shader(src)
		if err != nil {
			return Program{}, err
		}
		shaders = append(shaders, shader)
	}

	prog.handle = gl.gl.Call("createProgram")
	for _, shader := range shaders {
		gl.gl.Call("attachShader", prog.handle, shader)
	}
	gl.gl.Call("linkProgram", prog.handle)
	if !gl.gl.Call("getProgramParameter", prog.handle, gl.Constant("LINK_STATUS").Value).Bool() {
		err := fmt.Errorf("could not link program: %v", gl.gl.Call("getProgramInfoLog", prog.handle).String())
		gl.gl.Call("deleteProgram", prog.handle)
		return Program{}, err
	}

	gl.progs = append(gl.progs, prog)
	return prog, nil
}

func (gl *GL) shader(src ShaderSource) (js.Value, error) {
	if shader, ok := gl.shaders[src]; ok {
		return shader, nil
	}
	shader := gl.gl.Call("createShader", gl.Constant(src.Type).Value)
	gl.gl.Call("shaderSource", shader, src.Source)
	gl.gl.Call("compileShader", shader)
	if !gl.gl.Call("getShaderParameter", shader, gl.Constant("COMPILE_STATUS").Value).Bool() {
		err := fmt.Errorf("could not compile %v: %v", src.Type, gl.gl.Call("getShaderInfoLog", shader).String())
		gl.gl.Call("deleteShader", shader)
		return js.Value{}, err
	}
	gl.shaders[src] = shader
	return shader, nil
}

// Release deletes the program; releasing twice has no effect.
func (prog *Program) Release() {
	if prog.handle.Truthy() {
		prog.gl.Call("deleteProgram", prog.handle)
		prog.handle = js.Null()
	}
}

// Use installs the program as part of the current rendering state.
func (prog *Program) Use() {
	prog.gl.Call("useProgram", prog.handle)
}

// DrawArrays renders count vertices starting at first from the enabled
// attribute arrays, as primitives of the named mode, e.g. TRIANGLES.
func (prog *Program) DrawArrays(mode string, first, count int) {
	prog.gl.Call("drawArrays", prog.Constant(mode).Value, first, count)
}

// activeInfo finds the WebGLActiveInfo for a named attribute or uniform by
// scanning the program's active list; count names the parameter holding the
// list's length, and get the method returning each entry.
func (prog *Program) activeInfo(count, get, name string) (js.Value, bool) {
	n := prog.gl.Call("getProgramParameter", prog.handle, prog.Constant(count).Value).Int()
	for i := 0; i < n; i++ {
		info := prog.gl.Call(get, prog.handle, i)
		if info.Truthy() && info.Get("name").String() == name {
			return info, true
		}
	}
	return js.Value{}, false
}

var (
	uniformType = reflect.TypeOf(Uniform{})
	attribType  = reflect.TypeOf(Attrib{})
	bufferType  = reflect.TypeOf(Buffer{})
)

// Bind fills in the Uniform, Attrib and Buffer fields of the struct pointed
// to by inst. Uniforms and attributes are looked up by field name, or by a
// glName tag; buffers are created for their glTarget and glUsage tags. Other
// fields are left alone.
func (prog *Program) Bind(inst interface{}) error {
	ptr := reflect.ValueOf(inst)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Struct {
		return errors.New("gl.Program binding instance must be a struct pointer")
	}
	st := ptr.Elem()

	prog.Use()
	for i := 0; i < st.NumField(); i++ {
		field := st.Type().Field(i)
		val, err := prog.bindField(field)
		if err != nil {
			return fmt.Errorf("unable to bind gl.Program field %v: %w", field.Name, err)
		}
		if !val.IsValid() {
			continue
		}
		if !st.Field(i).CanSet() {
			return fmt.Errorf("unable to bind gl.Program field %v: unexported", field.Name)
		}
		st.Field(i).Set(val)
		log.Printf("gl: bound %v => %v", field.Name, val)
	}
	return nil
}

func (prog *Program) bindField(field reflect.StructField) (reflect.Value, error) {
	name := field.Name
	if tag := field.Tag.Get("glName"); tag != "" {
		name = tag
	}
	switch field.Type {
	case uniformType:
		uni, err := prog.GetUniform(name)
		return reflect.ValueOf(uni), err
	case attribType:
		attr, err := prog.GetAttrib(name)
		return reflect.ValueOf(attr), err
	case bufferType:
		buf, err := prog.CreateBuffer(field.Tag.Get("glTarget"), field.Tag.Get("glUsage"))
		return reflect.ValueOf(buf), err
	}
	return reflect.Value{}, nil
}
