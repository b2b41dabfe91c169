// Package std430 binds the layout engine to GLSL's std430 rules, used by
// shader storage blocks. Scalar arrays pack tightly and structs align to
// their largest member.
//
//	w := std430.NewWriter(buf)
//	_ = w.Write(glsl.Uint(len(lights)))
//	_ = w.Write(layout.Array[Light](lights))
package std430

import (
	"io"

	"github.com/wippyai/gpu-layout/layout"
)

const Standard = layout.Std430

func NewWriter(w io.Writer) *layout.Writer {
	return layout.NewWriter(Standard, w)
}

func NewSizer() *layout.Sizer {
	return layout.NewSizer(Standard)
}

func NewReader(r io.Reader) *layout.Reader {
	return layout.NewReader(Standard, r)
}

func NewCalculator() *layout.Calculator {
	return layout.NewCalculator(Standard)
}

// Rule reports v's alignment and size.
func Rule(v layout.Value) layout.Rule {
	return v.Rule(Standard)
}

// Bytes returns the padded image of v.
func Bytes(v layout.Value) []byte {
	return layout.Bytes(Standard, v)
}

// Size returns the buffer size needed to write values in order.
func Size(values ...layout.Value) int {
	s := NewSizer()
	for _, v := range values {
		s.Write(v)
	}
	return s.Len()
}

// Struct composes a struct layout from field rules in declaration order.
func Struct(fields ...layout.Rule) layout.Info {
	return layout.ComposeStruct(Standard, fields...)
}

// Array composes the layout of n elements of elem.
func Array(elem layout.Rule, n int) layout.Info {
	return layout.ComposeArray(Standard, elem, n)
}
