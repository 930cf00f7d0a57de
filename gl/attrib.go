//go:build js
// +build js

package gl

import "fmt"

// Attrib is the location of a vertex attribute in a linked Program.
type Attrib struct {
	name   string
	loc    int
	size   int
	glType Constant
}

func (attr Attrib) String() string {
	return fmt.Sprintf("Attrib(%q, size:%v, type:%v)", attr.name, attr.size, attr.glType)
}

// GetAttrib looks up the named vertex attribute, failing if the linked
// program has none by that name.
func (prog *Program) GetAttrib(name string) (Attrib, error) {
	attr := Attrib{name: name}
	attr.loc = prog.gl.Call("getAttribLocation", prog.handle, name).Int()
	if attr.loc < 0 {
		return attr, fmt.Errorf("no attrib location %q", name)
	}
	if info, ok := prog.activeInfo("ACTIVE_ATTRIBUTES", "getActiveAttrib", name); ok {
		attr.size = info.Get("size").Int()
		attr.glType = prog.ConstantByVal(info.Get("type").Int())
	}
	return attr, nil
}

// EnableAttrib enables the vertex attribute array for attr.
func (prog *Program) EnableAttrib(attr Attrib) {
	prog.gl.Call("enableVertexAttribArray", attr.loc)
}

// AttribPointer sources attr from the buffer bound to ARRAY_BUFFER: size
// float components per vertex, stride bytes apart, starting offset bytes in.
func (prog *Program) AttribPointer(attr Attrib, size, stride, offset int) {
	prog.gl.Call("vertexAttribPointer", attr.loc, size, prog.Constant("FLOAT").Value, false, stride, offset)
}
