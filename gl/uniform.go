//go:build js
// +build js

package gl

import (
	"fmt"
	"syscall/js"
)

// Uniform is the location of a uniform variable in a linked Program.
type Uniform struct {
	name   string
	loc    js.Value
	size   int
	glType Constant
}

func (uni Uniform) String() string {
	return fmt.Sprintf("Uniform(%q, size:%v, type:%v)", uni.name, uni.size, uni.glType)
}

// GetUniform looks up the named uniform, failing if the linked program has
// none by that name.
func (prog *Program) GetUniform(name string) (Uniform, error) {
	uni := Uniform{name: name}
	uni.loc = prog.gl.Call("getUniformLocation", prog.handle, name)
	if !uni.loc.Truthy() {
		return uni, fmt.Errorf("no uniform location %q", name)
	}
	if info, ok := prog.activeInfo("ACTIVE_UNIFORMS", "getActiveUniform", name); ok {
		uni.size = info.Get("size").Int()
		uni.glType = prog.ConstantByVal(info.Get("type").Int())
	}
	return uni, nil
}

// Uniform1i sets an int or sampler uniform of the program in use.
func (prog *Program) Uniform1i(uni Uniform, v int) {
	prog.gl.Call("uniform1i", uni.loc, v)
}
