package glsl

import "github.com/wippyai/gpu-layout/layout"

type (
	Float  float32
	Double float64
	Int    int32
	Uint   uint32
	Bool   bool
)

func (Float) Kind() layout.Kind                 { return layout.KindFloat }
func (Float) Rule(layout.Standard) layout.Rule  { return layout.KindFloat.Rule() }
func (Double) Kind() layout.Kind                { return layout.KindDouble }
func (Double) Rule(layout.Standard) layout.Rule { return layout.KindDouble.Rule() }
func (Int) Kind() layout.Kind                   { return layout.KindInt }
func (Int) Rule(layout.Standard) layout.Rule    { return layout.KindInt.Rule() }
func (Uint) Kind() layout.Kind                  { return layout.KindUint }
func (Uint) Rule(layout.Standard) layout.Rule   { return layout.KindUint.Rule() }
func (Bool) Kind() layout.Kind                  { return layout.KindBool }
func (Bool) Rule(layout.Standard) layout.Rule   { return layout.KindBool.Rule() }

func (v Float) AppendPadded(dst []byte, _ layout.Standard) []byte {
	return appendF32(dst, float32(v))
}

func (v *Float) DecodePadded(src []byte, _ layout.Standard) {
	*v = Float(f32At(src, 0))
}

func (v Double) AppendPadded(dst []byte, _ layout.Standard) []byte {
	return appendF64(dst, float64(v))
}

func (v *Double) DecodePadded(src []byte, _ layout.Standard) {
	*v = Double(f64At(src, 0))
}

func (v Int) AppendPadded(dst []byte, _ layout.Standard) []byte {
	return appendI32(dst, int32(v))
}

func (v *Int) DecodePadded(src []byte, _ layout.Standard) {
	*v = Int(i32At(src, 0))
}

func (v Uint) AppendPadded(dst []byte, _ layout.Standard) []byte {
	return appendU32(dst, uint32(v))
}

func (v *Uint) DecodePadded(src []byte, _ layout.Standard) {
	*v = Uint(u32At(src, 0))
}

// AppendPadded writes 1 for true and 0 for false as a 32-bit word.
func (v Bool) AppendPadded(dst []byte, _ layout.Standard) []byte {
	return appendBool(dst, bool(v))
}

// DecodePadded treats any non-zero word as true.
func (v *Bool) DecodePadded(src []byte, _ layout.Standard) {
	*v = Bool(boolAt(src, 0))
}
