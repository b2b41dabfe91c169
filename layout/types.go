package layout

import (
	"strconv"
	"strings"
)

// Type describes a GLSL type for layout queries by tools that do not hold
// Go values, such as schema loaders. Types must be acyclic.
type Type struct {
	Name   string
	Elem   *Type
	Fields []Field
	Len    int
	Kind   Kind
}

// Field is a named struct member.
type Field struct {
	Type *Type
	Name string
}

var primTypes [len(primitives)]*Type

func init() {
	for k := range primitives {
		primTypes[k] = &Type{Kind: Kind(k)}
	}
}

// Prim returns the shared descriptor for a primitive kind.
func Prim(k Kind) *Type {
	if !k.IsPrimitive() {
		return &Type{Kind: k}
	}
	return primTypes[k]
}

// ArrayOf describes a fixed-length array.
func ArrayOf(elem *Type, n int) *Type {
	return &Type{Kind: KindArray, Elem: elem, Len: n}
}

// StructOf describes a struct with fields in declaration order.
func StructOf(name string, fields ...Field) *Type {
	return &Type{Kind: KindStruct, Name: name, Fields: fields}
}

// String renders t as a GLSL type name: "vec3", "float[4]", "Light".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindArray:
		var dims []string
		e := t
		for e != nil && e.Kind == KindArray {
			dims = append(dims, "["+strconv.Itoa(e.Len)+"]")
			e = e.Elem
		}
		return e.String() + strings.Join(dims, "")
	case KindStruct:
		if t.Name == "" {
			return "struct"
		}
		return t.Name
	default:
		return t.Kind.String()
	}
}
