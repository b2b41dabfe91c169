// Package std140 binds the layout engine to GLSL's std140 rules, used by
// uniform blocks. Structs and arrays align to at least 16 bytes and array
// strides round up to 16.
//
//	w := std140.NewWriter(buf)
//	_ = w.Write(glsl.Uint(len(lights)))
//	_ = w.Write(layout.Array[Light](lights))
package std140

import (
	"io"

	"github.com/wippyai/gpu-layout/layout"
)

const Standard = layout.Std140

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
