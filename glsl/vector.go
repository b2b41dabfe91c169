package glsl

import "github.com/wippyai/gpu-layout/layout"

type Vec2 struct {
	X, Y float32
}

func (v Vec2) Kind() layout.Kind { return layout.KindVec2 }

func (v Vec2) Rule(layout.Standard) layout.Rule { return layout.KindVec2.Rule() }

func (v Vec2) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendF32(dst, v.X)
	dst = appendF32(dst, v.Y)
	return finish(dst, start, layout.KindVec2)
}

func (v *Vec2) DecodePadded(src []byte, _ layout.Standard) {
	v.X = f32At(src, 0)
	v.Y = f32At(src, 1)
}

// Array returns the components in order.
func (v Vec2) Array() [2]float32 { return [2]float32{v.X, v.Y} }

func Vec2From(a [2]float32) Vec2 { return Vec2{a[0], a[1]} }

type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Kind() layout.Kind { return layout.KindVec3 }

func (v Vec3) Rule(layout.Standard) layout.Rule { return layout.KindVec3.Rule() }

func (v Vec3) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendF32(dst, v.X)
	dst = appendF32(dst, v.Y)
	dst = appendF32(dst, v.Z)
	return finish(dst, start, layout.KindVec3)
}

func (v *Vec3) DecodePadded(src []byte, _ layout.Standard) {
	v.X = f32At(src, 0)
	v.Y = f32At(src, 1)
	v.Z = f32At(src, 2)
}

func (v Vec3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func Vec3From(a [3]float32) Vec3 { return Vec3{a[0], a[1], a[2]} }

type Vec4 struct {
	X, Y, Z, W float32
}

func (v Vec4) Kind() layout.Kind { return layout.KindVec4 }

func (v Vec4) Rule(layout.Standard) layout.Rule { return layout.KindVec4.Rule() }

func (v Vec4) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendF32(dst, v.X)
	dst = appendF32(dst, v.Y)
	dst = appendF32(dst, v.Z)
	dst = appendF32(dst, v.W)
	return finish(dst, start, layout.KindVec4)
}

func (v *Vec4) DecodePadded(src []byte, _ layout.Standard) {
	v.X = f32At(src, 0)
	v.Y = f32At(src, 1)
	v.Z = f32At(src, 2)
	v.W = f32At(src, 3)
}

func (v Vec4) Array() [4]float32 { return [4]float32{v.X, v.Y, v.Z, v.W} }

func Vec4From(a [4]float32) Vec4 { return Vec4{a[0], a[1], a[2], a[3]} }

type DVec2 struct {
	X, Y float64
}

func (v DVec2) Kind() layout.Kind { return layout.KindDVec2 }

func (v DVec2) Rule(layout.Standard) layout.Rule { return layout.KindDVec2.Rule() }

func (v DVec2) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendF64(dst, v.X)
	dst = appendF64(dst, v.Y)
	return finish(dst, start, layout.KindDVec2)
}

func (v *DVec2) DecodePadded(src []byte, _ layout.Standard) {
	v.X = f64At(src, 0)
	v.Y = f64At(src, 1)
}

func (v DVec2) Array() [2]float64 { return [2]float64{v.X, v.Y} }

func DVec2From(a [2]float64) DVec2 { return DVec2{a[0], a[1]} }

type DVec3 struct {
	X, Y, Z float64
}

func (v DVec3) Kind() layout.Kind { return layout.KindDVec3 }

func (v DVec3) Rule(layout.Standard) layout.Rule { return layout.KindDVec3.Rule() }

func (v DVec3) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendF64(dst, v.X)
	dst = appendF64(dst, v.Y)
	dst = appendF64(dst, v.Z)
	return finish(dst, start, layout.KindDVec3)
}

func (v *DVec3) DecodePadded(src []byte, _ layout.Standard) {
	v.X = f64At(src, 0)
	v.Y = f64At(src, 1)
	v.Z = f64At(src, 2)
}

func (v DVec3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func DVec3From(a [3]float64) DVec3 { return DVec3{a[0], a[1], a[2]} }

type DVec4 struct {
	X, Y, Z, W float64
}

func (v DVec4) Kind() layout.Kind { return layout.KindDVec4 }

func (v DVec4) Rule(layout.Standard) layout.Rule { return layout.KindDVec4.Rule() }

func (v DVec4) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendF64(dst, v.X)
	dst = appendF64(dst, v.Y)
	dst = appendF64(dst, v.Z)
	dst = appendF64(dst, v.W)
	return finish(dst, start, layout.KindDVec4)
}

func (v *DVec4) DecodePadded(src []byte, _ layout.Standard) {
	v.X = f64At(src, 0)
	v.Y = f64At(src, 1)
	v.Z = f64At(src, 2)
	v.W = f64At(src, 3)
}

func (v DVec4) Array() [4]float64 { return [4]float64{v.X, v.Y, v.Z, v.W} }

func DVec4From(a [4]float64) DVec4 { return DVec4{a[0], a[1], a[2], a[3]} }

type IVec2 struct {
	X, Y int32
}

func (v IVec2) Kind() layout.Kind { return layout.KindIVec2 }

func (v IVec2) Rule(layout.Standard) layout.Rule { return layout.KindIVec2.Rule() }

func (v IVec2) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendI32(dst, v.X)
	dst = appendI32(dst, v.Y)
	return finish(dst, start, layout.KindIVec2)
}

func (v *IVec2) DecodePadded(src []byte, _ layout.Standard) {
	v.X = i32At(src, 0)
	v.Y = i32At(src, 1)
}

func (v IVec2) Array() [2]int32 { return [2]int32{v.X, v.Y} }

func IVec2From(a [2]int32) IVec2 { return IVec2{a[0], a[1]} }

type IVec3 struct {
	X, Y, Z int32
}

func (v IVec3) Kind() layout.Kind { return layout.KindIVec3 }

func (v IVec3) Rule(layout.Standard) layout.Rule { return layout.KindIVec3.Rule() }

func (v IVec3) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendI32(dst, v.X)
	dst = appendI32(dst, v.Y)
	dst = appendI32(dst, v.Z)
	return finish(dst, start, layout.KindIVec3)
}

func (v *IVec3) DecodePadded(src []byte, _ layout.Standard) {
	v.X = i32At(src, 0)
	v.Y = i32At(src, 1)
	v.Z = i32At(src, 2)
}

func (v IVec3) Array() [3]int32 { return [3]int32{v.X, v.Y, v.Z} }

func IVec3From(a [3]int32) IVec3 { return IVec3{a[0], a[1], a[2]} }

type IVec4 struct {
	X, Y, Z, W int32
}

func (v IVec4) Kind() layout.Kind { return layout.KindIVec4 }

func (v IVec4) Rule(layout.Standard) layout.Rule { return layout.KindIVec4.Rule() }

func (v IVec4) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendI32(dst, v.X)
	dst = appendI32(dst, v.Y)
	dst = appendI32(dst, v.Z)
	dst = appendI32(dst, v.W)
	return finish(dst, start, layout.KindIVec4)
}

func (v *IVec4) DecodePadded(src []byte, _ layout.Standard) {
	v.X = i32At(src, 0)
	v.Y = i32At(src, 1)
	v.Z = i32At(src, 2)
	v.W = i32At(src, 3)
}

func (v IVec4) Array() [4]int32 { return [4]int32{v.X, v.Y, v.Z, v.W} }

func IVec4From(a [4]int32) IVec4 { return IVec4{a[0], a[1], a[2], a[3]} }

type UVec2 struct {
	X, Y uint32
}

func (v UVec2) Kind() layout.Kind { return layout.KindUVec2 }

func (v UVec2) Rule(layout.Standard) layout.Rule { return layout.KindUVec2.Rule() }

func (v UVec2) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendU32(dst, v.X)
	dst = appendU32(dst, v.Y)
	return finish(dst, start, layout.KindUVec2)
}

func (v *UVec2) DecodePadded(src []byte, _ layout.Standard) {
	v.X = u32At(src, 0)
	v.Y = u32At(src, 1)
}

func (v UVec2) Array() [2]uint32 { return [2]uint32{v.X, v.Y} }

func UVec2From(a [2]uint32) UVec2 { return UVec2{a[0], a[1]} }

type UVec3 struct {
	X, Y, Z uint32
}

func (v UVec3) Kind() layout.Kind { return layout.KindUVec3 }

func (v UVec3) Rule(layout.Standard) layout.Rule { return layout.KindUVec3.Rule() }

func (v UVec3) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendU32(dst, v.X)
	dst = appendU32(dst, v.Y)
	dst = appendU32(dst, v.Z)
	return finish(dst, start, layout.KindUVec3)
}

func (v *UVec3) DecodePadded(src []byte, _ layout.Standard) {
	v.X = u32At(src, 0)
	v.Y = u32At(src, 1)
	v.Z = u32At(src, 2)
}

func (v UVec3) Array() [3]uint32 { return [3]uint32{v.X, v.Y, v.Z} }

func UVec3From(a [3]uint32) UVec3 { return UVec3{a[0], a[1], a[2]} }

type UVec4 struct {
	X, Y, Z, W uint32
}

func (v UVec4) Kind() layout.Kind { return layout.KindUVec4 }

func (v UVec4) Rule(layout.Standard) layout.Rule { return layout.KindUVec4.Rule() }

func (v UVec4) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendU32(dst, v.X)
	dst = appendU32(dst, v.Y)
	dst = appendU32(dst, v.Z)
	dst = appendU32(dst, v.W)
	return finish(dst, start, layout.KindUVec4)
}

func (v *UVec4) DecodePadded(src []byte, _ layout.Standard) {
	v.X = u32At(src, 0)
	v.Y = u32At(src, 1)
	v.Z = u32At(src, 2)
	v.W = u32At(src, 3)
}

func (v UVec4) Array() [4]uint32 { return [4]uint32{v.X, v.Y, v.Z, v.W} }

func UVec4From(a [4]uint32) UVec4 { return UVec4{a[0], a[1], a[2], a[3]} }

type BVec2 struct {
	X, Y bool
}

func (v BVec2) Kind() layout.Kind { return layout.KindBVec2 }

func (v BVec2) Rule(layout.Standard) layout.Rule { return layout.KindBVec2.Rule() }

func (v BVec2) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendBool(dst, v.X)
	dst = appendBool(dst, v.Y)
	return finish(dst, start, layout.KindBVec2)
}

func (v *BVec2) DecodePadded(src []byte, _ layout.Standard) {
	v.X = boolAt(src, 0)
	v.Y = boolAt(src, 1)
}

func (v BVec2) Array() [2]bool { return [2]bool{v.X, v.Y} }

func BVec2From(a [2]bool) BVec2 { return BVec2{a[0], a[1]} }

type BVec3 struct {
	X, Y, Z bool
}

func (v BVec3) Kind() layout.Kind { return layout.KindBVec3 }

func (v BVec3) Rule(layout.Standard) layout.Rule { return layout.KindBVec3.Rule() }

func (v BVec3) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendBool(dst, v.X)
	dst = appendBool(dst, v.Y)
	dst = appendBool(dst, v.Z)
	return finish(dst, start, layout.KindBVec3)
}

func (v *BVec3) DecodePadded(src []byte, _ layout.Standard) {
	v.X = boolAt(src, 0)
	v.Y = boolAt(src, 1)
	v.Z = boolAt(src, 2)
}

func (v BVec3) Array() [3]bool { return [3]bool{v.X, v.Y, v.Z} }

func BVec3From(a [3]bool) BVec3 { return BVec3{a[0], a[1], a[2]} }

type BVec4 struct {
	X, Y, Z, W bool
}

func (v BVec4) Kind() layout.Kind { return layout.KindBVec4 }

func (v BVec4) Rule(layout.Standard) layout.Rule { return layout.KindBVec4.Rule() }

func (v BVec4) AppendPadded(dst []byte, _ layout.Standard) []byte {
	start := len(dst)
	dst = appendBool(dst, v.X)
	dst = appendBool(dst, v.Y)
	dst = appendBool(dst, v.Z)
	dst = appendBool(dst, v.W)
	return finish(dst, start, layout.KindBVec4)
}

func (v *BVec4) DecodePadded(src []byte, _ layout.Standard) {
	v.X = boolAt(src, 0)
	v.Y = boolAt(src, 1)
	v.Z = boolAt(src, 2)
	v.W = boolAt(src, 3)
}

func (v BVec4) Array() [4]bool { return [4]bool{v.X, v.Y, v.Z, v.W} }

func BVec4From(a [4]bool) BVec4 { return BVec4{a[0], a[1], a[2], a[3]} }
