//go:build js
// +build js

package gl

import (
	"fmt"
	"sort"
	"syscall/js"
)

// Constants resolves the numeric enum values of one kind of webgl context,
// as read off the context's prototype.
type Constants struct {
	byName map[string]int
	byVal  map[int]string
}

// Constant is a named webgl enum value.
type Constant struct {
	Name  string
	Value int
}

func (c Constant) String() string { return "gl." + c.Name }

// Constant returns the named constant; an unknown name is a programming
// error, and panics.
func (con Constants) Constant(name string) Constant {
	val, ok := con.byName[name]
	if !ok {
		panic(fmt.Sprintf("gl: no constant named %s", name))
	}
	return Constant{name, val}
}

// ConstantByVal returns the constant with the given value. Where several
// names share a value the alphabetically first wins; an unknown value is
// returned unnamed.
func (con Constants) ConstantByVal(value int) Constant {
	if name, ok := con.byVal[value]; ok {
		return Constant{name, value}
	}
	return Constant{fmt.Sprintf("Enum(0x%04X)", value), value}
}

// constants caches Constants by context constructor name, e.g.
// WebGLRenderingContext.
var constants = make(map[string]Constants)

func constantsFor(ctx js.Value) Constants {
	proto := js.Global().Get("Object").Call("getPrototypeOf", ctx)
	kind := proto.Get("constructor").Get("name").String()
	if con, ok := constants[kind]; ok {
		return con
	}

	keys := js.Global().Get("Object").Call("keys", proto)
	names := make([]string, 0, keys.Length())
	for i := 0; i < keys.Length(); i++ {
		name := keys.Index(i).String()
		if isConstantName(name) && ctx.Get(name).Type() == js.TypeNumber {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	con := Constants{
		byName: make(map[string]int, len(names)),
		byVal:  make(map[int]string, len(names)),
	}
	for _, name := range names {
		val := ctx.Get(name).Int()
		con.byName[name] = val
		if _, dup := con.byVal[val]; !dup {
			con.byVal[val] = name
		}
	}
	constants[kind] = con
	return con
}

// isConstantName matches SCREAMING_SNAKE identifiers such as TEXTURE_2D.
func isConstantName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_') {
			return false
		}
	}
	return true
}
