package layout

import "strings"

// Kind identifies a GLSL type class.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindUint
	KindFloat
	KindDouble
	KindBVec2
	KindBVec3
	KindBVec4
	KindIVec2
	KindIVec3
	KindIVec4
	KindUVec2
	KindUVec3
	KindUVec4
	KindVec2
	KindVec3
	KindVec4
	KindDVec2
	KindDVec3
	KindDVec4
	KindMat2
	KindMat3
	KindMat4
	KindArray
	KindStruct
)

type primitive struct {
	name   string
	rule   Rule
	scalar Kind
	n      uint8 // components for vectors, columns for matrices
}

var primitives = [...]primitive{
	KindBool:   {"bool", Rule{4, 4}, KindBool, 1},
	KindInt:    {"int", Rule{4, 4}, KindInt, 1},
	KindUint:   {"uint", Rule{4, 4}, KindUint, 1},
	KindFloat:  {"float", Rule{4, 4}, KindFloat, 1},
	KindDouble: {"double", Rule{8, 8}, KindDouble, 1},
	KindBVec2:  {"bvec2", Rule{8, 8}, KindBool, 2},
	KindBVec3:  {"bvec3", Rule{16, 16}, KindBool, 3},
	KindBVec4:  {"bvec4", Rule{16, 16}, KindBool, 4},
	KindIVec2:  {"ivec2", Rule{8, 8}, KindInt, 2},
	KindIVec3:  {"ivec3", Rule{16, 16}, KindInt, 3},
	KindIVec4:  {"ivec4", Rule{16, 16}, KindInt, 4},
	KindUVec2:  {"uvec2", Rule{8, 8}, KindUint, 2},
	KindUVec3:  {"uvec3", Rule{16, 16}, KindUint, 3},
	KindUVec4:  {"uvec4", Rule{16, 16}, KindUint, 4},
	KindVec2:   {"vec2", Rule{8, 8}, KindFloat, 2},
	KindVec3:   {"vec3", Rule{16, 16}, KindFloat, 3},
	KindVec4:   {"vec4", Rule{16, 16}, KindFloat, 4},
	KindDVec2:  {"dvec2", Rule{16, 16}, KindDouble, 2},
	KindDVec3:  {"dvec3", Rule{32, 32}, KindDouble, 3},
	KindDVec4:  {"dvec4", Rule{32, 32}, KindDouble, 4},
	KindMat2:   {"mat2", Rule{16, 32}, KindFloat, 2},
	KindMat3:   {"mat3", Rule{16, 48}, KindFloat, 3},
	KindMat4:   {"mat4", Rule{16, 64}, KindFloat, 4},
}

func (k Kind) String() string {
	switch {
	case k.IsPrimitive():
		return primitives[k].name
	case k == KindArray:
		return "array"
	case k == KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether k has a fixed entry in the rule table.
func (k Kind) IsPrimitive() bool {
	return int(k) < len(primitives)
}

func (k Kind) IsScalar() bool {
	return k <= KindDouble
}

func (k Kind) IsVector() bool {
	return k >= KindBVec2 && k <= KindDVec4
}

func (k Kind) IsMatrix() bool {
	return k >= KindMat2 && k <= KindMat4
}

// Rule returns the table entry for a primitive kind. Composite kinds have no
// static rule and return the zero Rule.
func (k Kind) Rule() Rule {
	if !k.IsPrimitive() {
		return Rule{}
	}
	return primitives[k].rule
}

// Scalar returns the component type of a scalar, vector or matrix kind.
func (k Kind) Scalar() Kind {
	if !k.IsPrimitive() {
		return k
	}
	return primitives[k].scalar
}

// Components is the vector width, the matrix column count, or 1 for scalars.
func (k Kind) Components() int {
	if !k.IsPrimitive() {
		return 0
	}
	return int(primitives[k].n)
}

// Column returns the vector kind of one matrix column.
func (k Kind) Column() Kind {
	switch k {
	case KindMat2:
		return KindVec2
	case KindMat3:
		return KindVec3
	case KindMat4:
		return KindVec4
	default:
		return k
	}
}

// DataSize is the number of meaningful bytes in a scalar or vector; a vec3
// reports 12 while its rule size is 16. Matrices report their full size,
// column padding included.
func (k Kind) DataSize() uint32 {
	switch {
	case k.IsMatrix():
		return primitives[k].rule.Size
	case k.IsPrimitive():
		return primitives[k.Scalar()].rule.Size * uint32(primitives[k].n)
	default:
		return 0
	}
}

// VectorOf returns the vector kind with n components of scalar, if any.
func VectorOf(scalar Kind, n int) (Kind, bool) {
	if !scalar.IsScalar() || n < 2 || n > 4 {
		return 0, false
	}
	var base Kind
	switch scalar {
	case KindBool:
		base = KindBVec2
	case KindInt:
		base = KindIVec2
	case KindUint:
		base = KindUVec2
	case KindFloat:
		base = KindVec2
	case KindDouble:
		base = KindDVec2
	}
	return base + Kind(n-2), true
}

// MatrixOf returns the float matrix kind with n columns, if any.
func MatrixOf(n int) (Kind, bool) {
	if n < 2 || n > 4 {
		return 0, false
	}
	return KindMat2 + Kind(n-2), true
}

var kindAliases = map[string]Kind{
	"mat2x2": KindMat2,
	"mat3x3": KindMat3,
	"mat4x4": KindMat4,
	"i32":    KindInt,
	"u32":    KindUint,
	"f32":    KindFloat,
	"f64":    KindDouble,
}

// ParseKind resolves a GLSL primitive type name such as "vec3" or "mat4".
func ParseKind(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	for k := range primitives {
		if primitives[k].name == name {
			return Kind(k), true
		}
	}
	k, ok := kindAliases[name]
	return k, ok
}
