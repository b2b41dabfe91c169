package glsl

import "github.com/wippyai/gpu-layout/layout"

// Mat2 is a column-major 2x2 float matrix. Each column occupies 16 bytes.
type Mat2 struct {
	X, Y Vec2
}

// Mat3 is a column-major 3x3 float matrix. Each column occupies 16 bytes.
type Mat3 struct {
	X, Y, Z Vec3
}

// Mat4 is a column-major 4x4 float matrix.
type Mat4 struct {
	X, Y, Z, W Vec4
}

const columnStride = 16

func appendColumn(dst []byte, col layout.Value) []byte {
	start := len(dst)
	dst = col.AppendPadded(dst, layout.Std140)
	return layout.AppendZeros(dst, start+columnStride-len(dst))
}

func (m Mat2) Kind() layout.Kind { return layout.KindMat2 }

func (m Mat2) Rule(layout.Standard) layout.Rule { return layout.KindMat2.Rule() }

func (m Mat2) AppendPadded(dst []byte, _ layout.Standard) []byte {
	dst = appendColumn(dst, m.X)
	return appendColumn(dst, m.Y)
}

func (m *Mat2) DecodePadded(src []byte, std layout.Standard) {
	m.X.DecodePadded(src[0:], std)
	m.Y.DecodePadded(src[columnStride:], std)
}

func (m Mat3) Kind() layout.Kind { return layout.KindMat3 }

func (m Mat3) Rule(layout.Standard) layout.Rule { return layout.KindMat3.Rule() }

func (m Mat3) AppendPadded(dst []byte, _ layout.Standard) []byte {
	dst = appendColumn(dst, m.X)
	dst = appendColumn(dst, m.Y)
	return appendColumn(dst, m.Z)
}

func (m *Mat3) DecodePadded(src []byte, std layout.Standard) {
	m.X.DecodePadded(src[0:], std)
	m.Y.DecodePadded(src[columnStride:], std)
	m.Z.DecodePadded(src[2*columnStride:], std)
}

func (m Mat4) Kind() layout.Kind { return layout.KindMat4 }

func (m Mat4) Rule(layout.Standard) layout.Rule { return layout.KindMat4.Rule() }

func (m Mat4) AppendPadded(dst []byte, _ layout.Standard) []byte {
	dst = appendColumn(dst, m.X)
	dst = appendColumn(dst, m.Y)
	dst = appendColumn(dst, m.Z)
	return appendColumn(dst, m.W)
}

func (m *Mat4) DecodePadded(src []byte, std layout.Standard) {
	m.X.DecodePadded(src[0:], std)
	m.Y.DecodePadded(src[columnStride:], std)
	m.Z.DecodePadded(src[2*columnStride:], std)
	m.W.DecodePadded(src[3*columnStride:], std)
}

func Mat2Identity() Mat2 {
	return Mat2{X: Vec2{1, 0}, Y: Vec2{0, 1}}
}

func Mat3Identity() Mat3 {
	return Mat3{X: Vec3{1, 0, 0}, Y: Vec3{0, 1, 0}, Z: Vec3{0, 0, 1}}
}

func Mat4Identity() Mat4 {
	return Mat4{X: Vec4{1, 0, 0, 0}, Y: Vec4{0, 1, 0, 0}, Z: Vec4{0, 0, 1, 0}, W: Vec4{0, 0, 0, 1}}
}

// Mat4From converts a column-major [column][row] array.
func Mat4From(c [4][4]float32) Mat4 {
	return Mat4{X: Vec4From(c[0]), Y: Vec4From(c[1]), Z: Vec4From(c[2]), W: Vec4From(c[3])}
}

func Mat3From(c [3][3]float32) Mat3 {
	return Mat3{X: Vec3From(c[0]), Y: Vec3From(c[1]), Z: Vec3From(c[2])}
}

func Mat2From(c [2][2]float32) Mat2 {
	return Mat2{X: Vec2From(c[0]), Y: Vec2From(c[1])}
}

// Array returns the columns as a [column][row] array.
func (m Mat4) Array() [4][4]float32 {
	return [4][4]float32{m.X.Array(), m.Y.Array(), m.Z.Array(), m.W.Array()}
}

func (m Mat3) Array() [3][3]float32 {
	return [3][3]float32{m.X.Array(), m.Y.Array(), m.Z.Array()}
}

func (m Mat2) Array() [2][2]float32 {
	return [2][2]float32{m.X.Array(), m.Y.Array()}
}
