package layout

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/wippyai/gpu-layout/errors"
)

// Value is a layout-ready value. Its rule is a property of its type, and
// AppendPadded appends exactly Rule(std).Size bytes with every padding byte
// set to zero.
type Value interface {
	Rule(std Standard) Rule
	AppendPadded(dst []byte, std Standard) []byte
}

// Decodable restores a value from the bytes AppendPadded produced. src
// holds exactly Rule(std).Size bytes.
type Decodable interface {
	Rule(std Standard) Rule
	DecodePadded(src []byte, std Standard)
}

// AppendZeros appends n zero bytes to dst.
func AppendZeros(dst []byte, n int) []byte {
	if n <= 0 {
		return dst
	}
	return append(dst, make([]byte, n)...)
}

// padTo zero-fills dst up to length end.
func padTo(dst []byte, end int, typ string) []byte {
	n := end - len(dst)
	if n < 0 {
		panic(errors.LayoutViolation(typ, "value overran its slot by %d bytes", -n))
	}
	return AppendZeros(dst, n)
}

// Bytes returns the padded byte image of v under std.
func Bytes(std Standard, v Value) []byte {
	rule := v.Rule(std)
	rule.mustValid(typeName(v))
	out := v.AppendPadded(make([]byte, 0, rule.Size), std)
	if len(out) != int(rule.Size) {
		panic(errors.LayoutViolation(typeName(v), "padded value is %d bytes, rule says %d", len(out), rule.Size))
	}
	return out
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// StructType is the layout of a host aggregate, fixed at definition time for
// both standards. Host types implement Value by delegating to a package-level
// StructType:
//
//	var lightType = layout.NewStructType("PointLight", glsl.Vec3{}, glsl.Vec3{}, glsl.Float(0))
//
//	func (l PointLight) Rule(std layout.Standard) layout.Rule { return lightType.Rule(std) }
//
//	func (l PointLight) AppendPadded(dst []byte, std layout.Standard) []byte {
//		return lightType.Append(dst, std, l.Position, l.Color, glsl.Float(l.Brightness))
//	}
//
// Fields must be passed in declaration order.
type StructType struct {
	name  string
	rules [numStandards][]Rule
	infos [numStandards]Info
}

// NewStructType derives a struct layout from prototype field values. Only
// the prototypes' rules are used.
func NewStructType(name string, prototypes ...Value) *StructType {
	st := &StructType{name: name}
	for _, std := range Standards {
		rules := make([]Rule, len(prototypes))
		for i, p := range prototypes {
			r := p.Rule(std)
			r.mustValid(fmt.Sprintf("%s field %d", name, i))
			rules[i] = r
		}
		st.rules[std] = rules
		st.infos[std] = ComposeStruct(std, rules...)
	}
	return st
}

func (s *StructType) Name() string {
	return s.name
}

func (s *StructType) NumField() int {
	return len(s.rules[Std140])
}

func (s *StructType) Rule(std Standard) Rule {
	return s.infos[std].Rule
}

// Info returns a copy of the derived layout under std.
func (s *StructType) Info(std Standard) Info {
	info := s.infos[std]
	info.Offsets = slices.Clone(info.Offsets)
	return info
}

// FieldRule returns the rule of field i under std.
func (s *StructType) FieldRule(std Standard, i int) Rule {
	return s.rules[std][i]
}

// Append writes fields at their offsets with zeroed gaps and trailing
// padding. A field count or rule that disagrees with the definition panics.
func (s *StructType) Append(dst []byte, std Standard, fields ...Value) []byte {
	info := &s.infos[std]
	s.checkCount(len(fields))

	start := len(dst)
	for i, f := range fields {
		s.checkField(std, i, f.Rule(std))
		dst = padTo(dst, start+int(info.Offsets[i]), s.name)
		dst = f.AppendPadded(dst, std)
	}
	dst = padTo(dst, start+int(info.Size), s.name)
	return dst
}

// Decode reads fields from their offsets in src, the padded image of the
// whole struct.
func (s *StructType) Decode(src []byte, std Standard, fields ...Decodable) {
	info := &s.infos[std]
	s.checkCount(len(fields))
	if len(src) < int(info.Size) {
		panic(errors.LayoutViolation(s.name, "decode needs %d bytes, got %d", info.Size, len(src)))
	}

	for i, f := range fields {
		r := f.Rule(std)
		s.checkField(std, i, r)
		off := info.Offsets[i]
		f.DecodePadded(src[off:off+r.Size], std)
	}
}

func (s *StructType) checkCount(n int) {
	if n != s.NumField() {
		panic(errors.LayoutViolation(s.name, "got %d fields, definition has %d", n, s.NumField()))
	}
}

func (s *StructType) checkField(std Standard, i int, r Rule) {
	if want := s.rules[std][i]; r != want {
		panic(errors.LayoutViolation(s.name, "field %d has %v, definition has %v", i, r, want))
	}
}

// Array is a layout-ready array of layout-ready elements. Elements share one
// rule: it comes from the first element, or from the zero value of T when
// the array is empty, and every other element must match it.
type Array[T Value] []T

func (a Array[T]) elemRule(std Standard) Rule {
	if len(a) == 0 {
		var zero T
		if any(zero) == nil {
			panic(errors.LayoutViolation("array", "empty array of %s has no element rule", reflect.TypeFor[T]()))
		}
		return zero.Rule(std)
	}

	var elem Rule
	for i, e := range a {
		if any(e) == nil {
			panic(errors.LayoutViolation("array", "element %d is nil", i))
		}
		r := e.Rule(std)
		if i == 0 {
			elem = r
		} else if r != elem {
			panic(errors.LayoutViolation("array", "element %d has %v, element 0 has %v", i, r, elem))
		}
	}
	return elem
}

// Info returns the array layout under std.
func (a Array[T]) Info(std Standard) Info {
	return ComposeArray(std, a.elemRule(std), len(a))
}

func (a Array[T]) Rule(std Standard) Rule {
	return a.Info(std).Rule
}

func (a Array[T]) AppendPadded(dst []byte, std Standard) []byte {
	info := a.Info(std)
	start := len(dst)
	for i, e := range a {
		dst = padTo(dst, start+i*int(info.Stride), "array")
		dst = e.AppendPadded(dst, std)
	}
	return padTo(dst, start+int(info.Size), "array")
}

// DecodeArray fills dst from the padded image of an array of len(dst)
// elements.
func DecodeArray[T any, PT interface {
	*T
	Decodable
}](src []byte, std Standard, dst []T) {
	if len(dst) == 0 {
		return
	}
	elem := PT(&dst[0]).Rule(std)
	info := ComposeArray(std, elem, len(dst))
	if len(src) < int(info.Size) {
		panic(errors.LayoutViolation("array", "decode needs %d bytes, got %d", info.Size, len(src)))
	}
	for i := range dst {
		off := uint32(i) * info.Stride
		PT(&dst[i]).DecodePadded(src[off:off+elem.Size], std)
	}
}

// ArrayDecoder adapts dst as a Decodable array, for use with Reader.
func ArrayDecoder[T any, PT interface {
	*T
	Decodable
}](dst []T) Decodable {
	return arrayDecoder[T, PT]{dst: dst}
}

type arrayDecoder[T any, PT interface {
	*T
	Decodable
}] struct {
	dst []T
}

func (d arrayDecoder[T, PT]) Rule(std Standard) Rule {
	var elem Rule
	if len(d.dst) > 0 {
		elem = PT(&d.dst[0]).Rule(std)
	} else {
		var zero T
		elem = PT(&zero).Rule(std)
	}
	return ComposeArray(std, elem, len(d.dst)).Rule
}

func (d arrayDecoder[T, PT]) DecodePadded(src []byte, std Standard) {
	DecodeArray[T, PT](src, std, d.dst)
}
