// Package witlayout maps WIT types onto GLSL layout descriptors, so records
// shared with WebAssembly components can be placed in GPU buffers.
//
//	f32, f64, s32, u32, bool        float, double, int, uint, bool
//	record                          struct, fields in declaration order
//	tuple of 2-4 equal scalars      vecN, dvecN, ivecN, uvecN, bvecN
//	tuple of N tuples of N f32      matN, one inner tuple per column
//	type alias                      the aliased type
//
// Every other WIT type has no fixed GLSL layout and is rejected.
package witlayout

import (
	"strconv"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/layout"
)

// Converter translates WIT types and caches one descriptor per type
// definition, so shared definitions share descriptors.
type Converter struct {
	cache    map[*wit.TypeDef]*layout.Type
	visiting map[*wit.TypeDef]bool
}

func NewConverter() *Converter {
	return &Converter{
		cache:    make(map[*wit.TypeDef]*layout.Type),
		visiting: make(map[*wit.TypeDef]bool),
	}
}

// FromWIT converts t with a fresh Converter.
func FromWIT(t wit.Type) (*layout.Type, error) {
	return NewConverter().Convert(t)
}

func (c *Converter) Convert(t wit.Type) (*layout.Type, error) {
	return c.convert(t, nil)
}

func (c *Converter) convert(t wit.Type, path []string) (*layout.Type, error) {
	if k, ok := scalarKind(t); ok {
		return layout.Prim(k), nil
	}

	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil, errors.Unsupported(errors.PhaseCompile, path, "WIT type "+witName(t)+" has no GLSL layout")
	}
	if cached, ok := c.cache[td]; ok {
		return cached, nil
	}
	if c.visiting[td] {
		return nil, errors.Cycle(errors.PhaseCompile, path)
	}
	c.visiting[td] = true
	defer delete(c.visiting, td)

	var (
		lt  *layout.Type
		err error
	)
	switch kind := td.Kind.(type) {
	case *wit.Record:
		lt, err = c.convertRecord(td, kind, path)
	case *wit.Tuple:
		lt, err = c.convertTuple(kind, path)
	case wit.Type:
		lt, err = c.convert(kind, path)
	default:
		err = errors.Unsupported(errors.PhaseCompile, path, "WIT type "+witName(td)+" has no GLSL layout")
	}
	if err != nil {
		return nil, err
	}

	c.cache[td] = lt
	return lt, nil
}

func (c *Converter) convertRecord(td *wit.TypeDef, r *wit.Record, path []string) (*layout.Type, error) {
	name := "record"
	if td.Name != nil {
		name = *td.Name
	}

	fields := make([]layout.Field, 0, len(r.Fields))
	for _, f := range r.Fields {
		fieldPath := append(append([]string{}, path...), f.Name)
		ft, err := c.convert(f.Type, fieldPath)
		if err != nil {
			return nil, err
		}
		fields = append(fields, layout.Field{Type: ft, Name: f.Name})
	}
	return layout.StructOf(name, fields...), nil
}

func (c *Converter) convertTuple(t *wit.Tuple, path []string) (*layout.Type, error) {
	n := len(t.Types)

	if scalar, ok := uniformScalar(t.Types); ok {
		k, ok := layout.VectorOf(scalar, n)
		if !ok {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				Detail("tuple of %d scalars is not a vector", n).
				Build()
		}
		return layout.Prim(k), nil
	}

	for i, col := range t.Types {
		inner, ok := tupleOf(col)
		scalar, same := uniformScalar(inner)
		if !ok || !same || scalar != layout.KindFloat || len(inner) != n {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(append(append([]string{}, path...), "["+strconv.Itoa(i)+"]")...).
				Detail("tuple must be a vector or %d columns of %d f32", n, n).
				Build()
		}
	}
	k, ok := layout.MatrixOf(n)
	if !ok {
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			Detail("matrices have 2 to 4 columns, got %d", n).
			Build()
	}
	return layout.Prim(k), nil
}

func scalarKind(t wit.Type) (layout.Kind, bool) {
	switch t.(type) {
	case wit.F32:
		return layout.KindFloat, true
	case wit.F64:
		return layout.KindDouble, true
	case wit.S32:
		return layout.KindInt, true
	case wit.U32:
		return layout.KindUint, true
	case wit.Bool:
		return layout.KindBool, true
	default:
		return 0, false
	}
}

// uniformScalar reports the shared scalar kind of types, following
// aliases.
func uniformScalar(types []wit.Type) (layout.Kind, bool) {
	if len(types) == 0 {
		return 0, false
	}
	first, ok := scalarKind(resolveAlias(types[0]))
	if !ok {
		return 0, false
	}
	for _, t := range types[1:] {
		if k, ok := scalarKind(resolveAlias(t)); !ok || k != first {
			return 0, false
		}
	}
	return first, true
}

func tupleOf(t wit.Type) ([]wit.Type, bool) {
	td, ok := resolveAlias(t).(*wit.TypeDef)
	if !ok {
		return nil, false
	}
	tup, ok := td.Kind.(*wit.Tuple)
	if !ok {
		return nil, false
	}
	return tup.Types, true
}

func resolveAlias(t wit.Type) wit.Type {
	for range 16 {
		td, ok := t.(*wit.TypeDef)
		if !ok {
			return t
		}
		switch kind := td.Kind.(type) {
		case *wit.Record, *wit.Tuple:
			return t
		case wit.Type:
			t = kind
		default:
			return t
		}
	}
	return t
}

func witName(t wit.Type) string {
	switch v := t.(type) {
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch v.Kind.(type) {
		case *wit.List:
			return "list"
		case *wit.Option:
			return "option"
		case *wit.Result:
			return "result"
		case *wit.Variant:
			return "variant"
		case *wit.Enum:
			return "enum"
		case *wit.Flags:
			return "flags"
		default:
			return "typedef"
		}
	default:
		return "unknown"
	}
}
