package glsl

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/gpu-layout/layout"
)

var ne = binary.NativeEndian

func appendF32(dst []byte, v float32) []byte {
	return ne.AppendUint32(dst, math.Float32bits(v))
}

func appendF64(dst []byte, v float64) []byte {
	return ne.AppendUint64(dst, math.Float64bits(v))
}

func appendI32(dst []byte, v int32) []byte {
	return ne.AppendUint32(dst, uint32(v))
}

func appendU32(dst []byte, v uint32) []byte {
	return ne.AppendUint32(dst, v)
}

func appendBool(dst []byte, v bool) []byte {
	if v {
		return ne.AppendUint32(dst, 1)
	}
	return ne.AppendUint32(dst, 0)
}

func f32At(src []byte, i int) float32 {
	return math.Float32frombits(ne.Uint32(src[4*i:]))
}

func f64At(src []byte, i int) float64 {
	return math.Float64frombits(ne.Uint64(src[8*i:]))
}

func i32At(src []byte, i int) int32 {
	return int32(ne.Uint32(src[4*i:]))
}

func u32At(src []byte, i int) uint32 {
	return ne.Uint32(src[4*i:])
}

func boolAt(src []byte, i int) bool {
	return ne.Uint32(src[4*i:]) != 0
}

// finish zero-fills the tail of a value that started at start.
func finish(dst []byte, start int, k layout.Kind) []byte {
	return layout.AppendZeros(dst, start+int(k.Rule().Size)-len(dst))
}
