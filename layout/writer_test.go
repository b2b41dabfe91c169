package layout_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	gerrors "github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/glsl"
	"github.com/wippyai/gpu-layout/layout"
)

var vecHolderType = layout.NewStructType("VecHolder", glsl.Vec3{})

type vecHolder struct {
	V glsl.Vec3
}

func (h vecHolder) Rule(std layout.Standard) layout.Rule { return vecHolderType.Rule(std) }

func (h vecHolder) AppendPadded(dst []byte, std layout.Standard) []byte {
	return vecHolderType.Append(dst, std, h.V)
}

var pointLightType = layout.NewStructType("PointLight", glsl.Vec3{}, glsl.Vec3{}, glsl.Float(0))

type pointLight struct {
	Position   glsl.Vec3
	Color      glsl.Vec3
	Brightness float32
}

func (l pointLight) Rule(std layout.Standard) layout.Rule { return pointLightType.Rule(std) }

func (l pointLight) AppendPadded(dst []byte, std layout.Standard) []byte {
	return pointLightType.Append(dst, std, l.Position, l.Color, glsl.Float(l.Brightness))
}

func (l *pointLight) DecodePadded(src []byte, std layout.Standard) {
	b := glsl.Float(0)
	pointLightType.Decode(src, std, &l.Position, &l.Color, &b)
	l.Brightness = float32(b)
}

func f32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(buf[off:]))
}

func TestWriteUintThenVec3Struct(t *testing.T) {
	var buf bytes.Buffer
	w := layout.NewWriter(layout.Std140, &buf)

	if err := w.Write(glsl.Uint(7)); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(vecHolder{V: glsl.Vec3{X: 1, Y: 2, Z: 3}}); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if len(out) != 32 || w.Len() != 32 {
		t.Fatalf("len: got %d (writer %d), want 32", len(out), w.Len())
	}
	if got := binary.NativeEndian.Uint32(out[0:]); got != 7 {
		t.Errorf("uint: got %d, want 7", got)
	}
	if diff := cmp.Diff(make([]byte, 12), out[4:16]); diff != "" {
		t.Errorf("alignment padding not zero (-want +got):\n%s", diff)
	}
	for i, want := range []float32{1, 2, 3} {
		if got := f32(out, 16+4*i); got != want {
			t.Errorf("component %d: got %v, want %v", i, got, want)
		}
	}
	if diff := cmp.Diff(make([]byte, 4), out[28:32]); diff != "" {
		t.Errorf("trailing padding not zero (-want +got):\n%s", diff)
	}
}

func TestFloatArraySizes(t *testing.T) {
	arr := layout.Array[glsl.Float]{1, 2, 3}

	tests := []struct {
		std    layout.Standard
		size   int
		stride int
	}{
		{layout.Std140, 48, 16},
		{layout.Std430, 12, 4},
	}

	for _, tc := range tests {
		t.Run(tc.std.String(), func(t *testing.T) {
			buf := layout.Bytes(tc.std, arr)
			if len(buf) != tc.size {
				t.Fatalf("size: got %d, want %d", len(buf), tc.size)
			}
			for i := range arr {
				if got := f32(buf, i*tc.stride); got != float32(arr[i]) {
					t.Errorf("element %d: got %v, want %v", i, got, arr[i])
				}
			}
		})
	}
}

func TestVec3ThenFloatStruct(t *testing.T) {
	st := layout.NewStructType("S", glsl.Vec3{}, glsl.Float(0))
	info := st.Info(layout.Std140)
	if diff := cmp.Diff([]uint32{0, 16}, info.Offsets); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
	if info.Size != 32 {
		t.Errorf("size: got %d, want 32", info.Size)
	}

	buf := st.Append(nil, layout.Std140, glsl.Vec3{X: 1, Y: 2, Z: 3}, glsl.Float(4))
	if got := f32(buf, 16); got != 4 {
		t.Errorf("b at 16: got %v, want 4", got)
	}
	if diff := cmp.Diff(make([]byte, 12), buf[20:32]); diff != "" {
		t.Errorf("trailing padding (-want +got):\n%s", diff)
	}
}

func TestMat3SameUnderBothStandards(t *testing.T) {
	for _, std := range layout.Standards {
		var buf bytes.Buffer
		w := layout.NewWriter(std, &buf)
		if err := w.Write(glsl.Mat3Identity()); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 48 {
			t.Errorf("%s: got %d bytes, want 48", std, buf.Len())
		}
	}
}

func TestWriterPadsBetweenStructs(t *testing.T) {
	lights := []pointLight{
		{Position: glsl.Vec3{X: 0, Y: 1, Z: 0}, Color: glsl.Vec3{X: 1, Y: 0, Z: 0}, Brightness: 0.6},
		{Position: glsl.Vec3{X: 0, Y: 4, Z: 3}, Color: glsl.Vec3{X: 1, Y: 1, Z: 1}, Brightness: 1},
	}

	var buf bytes.Buffer
	w := layout.NewWriter(layout.Std140, &buf)
	if err := w.Write(glsl.Uint(len(lights))); err != nil {
		t.Fatal(err)
	}
	for _, l := range lights {
		if err := w.Write(l); err != nil {
			t.Fatal(err)
		}
	}

	// count, 12 bytes padding, then two 48-byte lights
	if w.Len() != 16+2*48 {
		t.Fatalf("len: got %d, want %d", w.Len(), 16+2*48)
	}
	if got := f32(buf.Bytes(), 16+48+32); got != 1 {
		t.Errorf("second brightness: got %v, want 1", got)
	}
}

func randomValue(r *rand.Rand) layout.Value {
	switch r.IntN(9) {
	case 0:
		return glsl.Float(r.Float32())
	case 1:
		return glsl.Double(r.Float64())
	case 2:
		return glsl.Vec3{X: r.Float32(), Y: r.Float32(), Z: r.Float32()}
	case 3:
		return glsl.Vec2{X: r.Float32(), Y: r.Float32()}
	case 4:
		return glsl.DVec3{X: 1, Y: 2, Z: 3}
	case 5:
		return glsl.Mat2Identity()
	case 6:
		return layout.Array[glsl.Float]{1, 2, 3, 4, 5}[:r.IntN(5)]
	case 7:
		return pointLight{Brightness: r.Float32()}
	default:
		return glsl.Bool(r.IntN(2) == 1)
	}
}

func TestWriterSizerEquivalence(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 50; round++ {
		values := make([]layout.Value, 1+r.IntN(20))
		for i := range values {
			values[i] = randomValue(r)
		}

		for _, std := range layout.Standards {
			var buf bytes.Buffer
			w := layout.NewWriter(std, &buf)
			s := layout.NewSizer(std)

			for _, v := range values {
				at := s.Write(v)
				if err := w.Write(v); err != nil {
					t.Fatal(err)
				}
				if rule := v.Rule(std); at%int(rule.Align) != 0 {
					t.Errorf("%s: offset %d not aligned to %d", std, at, rule.Align)
				}
			}

			if s.Len() != w.Len() || s.Len() != buf.Len() {
				t.Fatalf("round %d %s: sizer %d, writer %d, emitted %d", round, std, s.Len(), w.Len(), buf.Len())
			}
		}
	}
}

func TestSizerOffsets(t *testing.T) {
	s := layout.NewSizer(layout.Std430)
	if at := s.Write(glsl.Float(1)); at != 0 {
		t.Errorf("float at %d, want 0", at)
	}
	if at := s.Write(glsl.Vec3{}); at != 16 {
		t.Errorf("vec3 at %d, want 16", at)
	}
	if at := s.WriteRule(layout.KindDouble.Rule()); at != 32 {
		t.Errorf("double at %d, want 32", at)
	}
	if s.Len() != 40 {
		t.Errorf("len: got %d, want 40", s.Len())
	}
	if s.Standard() != layout.Std430 {
		t.Errorf("standard: got %v", s.Standard())
	}
}

// limitWriter accepts n bytes and then fails.
type limitWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (l *limitWriter) Write(p []byte) (int, error) {
	if len(p) <= l.n {
		l.n -= len(p)
		return l.buf.Write(p)
	}
	k := l.n
	l.n = 0
	l.buf.Write(p[:k])
	return k, l.err
}

func TestWriterSinkFailure(t *testing.T) {
	sinkErr := errors.New("device lost")
	lw := &limitWriter{n: 20, err: sinkErr}
	w := layout.NewWriter(layout.Std140, lw)

	if err := w.Write(glsl.Vec4{X: 1, Y: 2, Z: 3, W: 4}); err != nil {
		t.Fatal(err)
	}
	err := w.Write(glsl.Vec4{X: 5, Y: 6, Z: 7, W: 8})
	if err == nil {
		t.Fatal("expected sink failure")
	}
	if !errors.Is(err, sinkErr) {
		t.Errorf("sink error not reachable: %v", err)
	}
	if !errors.Is(err, &gerrors.Error{Phase: gerrors.PhaseWrite, Kind: gerrors.KindSinkFailure}) {
		t.Errorf("got %v, want write/sink_failure", err)
	}
	if w.Len() != 20 {
		t.Errorf("len after failure: got %d, want 20", w.Len())
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestWriterShortWrite(t *testing.T) {
	w := layout.NewWriter(layout.Std430, shortWriter{})
	err := w.Write(glsl.Vec2{X: 1, Y: 2})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("got %v, want io.ErrShortWrite", err)
	}
}

func TestWriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := layout.NewWriter(layout.Std430, &buf)
	if err := w.WriteAll(glsl.Float(1), glsl.Double(2), glsl.Int(3)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 20 {
		t.Errorf("len: got %d, want 20", buf.Len())
	}
}

type lyingValue struct{}

func (lyingValue) Rule(layout.Standard) layout.Rule { return layout.Rule{Align: 4, Size: 8} }

func (lyingValue) AppendPadded(dst []byte, _ layout.Standard) []byte { return append(dst, 1, 2, 3, 4) }

type badRuleValue struct{}

func (badRuleValue) Rule(layout.Standard) layout.Rule { return layout.Rule{Align: 16, Size: 12} }

func (badRuleValue) AppendPadded(dst []byte, _ layout.Standard) []byte {
	return append(dst, make([]byte, 12)...)
}

func TestLayoutViolationsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"size_mismatch", func() { _ = layout.NewWriter(layout.Std140, io.Discard).Write(lyingValue{}) }},
		{"rule_not_multiple", func() { _ = layout.NewWriter(layout.Std140, io.Discard).Write(badRuleValue{}) }},
		{"sizer_rule_not_multiple", func() { layout.NewSizer(layout.Std430).Write(badRuleValue{}) }},
		{"bytes_size_mismatch", func() { layout.Bytes(layout.Std430, lyingValue{}) }},
		{"struct_field_count", func() { pointLightType.Append(nil, layout.Std140, glsl.Vec3{}) }},
		{"struct_field_rule", func() {
			pointLightType.Append(nil, layout.Std140, glsl.Vec3{}, glsl.Vec3{}, glsl.Double(0))
		}},
		{"jagged_nested_array", func() {
			layout.Bytes(layout.Std430, layout.Array[layout.Array[glsl.Float]]{{1, 2, 3}, {4}})
		}},
		{"mixed_interface_array", func() {
			layout.Bytes(layout.Std140, layout.Array[layout.Value]{glsl.Vec4{X: 1, Y: 2, Z: 3, W: 4}, glsl.Float(9)})
		}},
		{"mixed_array_sizer", func() {
			layout.NewSizer(layout.Std430).Write(layout.Array[layout.Value]{glsl.Float(1), glsl.Vec2{}})
		}},
		{"empty_interface_array", func() { layout.Array[layout.Value]{}.Rule(layout.Std140) }},
		{"nil_interface_element", func() { layout.Array[layout.Value]{glsl.Float(1), nil}.Rule(layout.Std430) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected panic with error, got %v", r)
				}
				if !errors.Is(err, &gerrors.Error{Phase: gerrors.PhaseCompile, Kind: gerrors.KindLayoutViolation}) {
					t.Errorf("got %v, want layout_violation", err)
				}
			}()
			tc.fn()
		})
	}
}

func TestEmptyArrayAndStruct(t *testing.T) {
	empty := layout.NewStructType("Empty")
	if r := empty.Rule(layout.Std140); r != (layout.Rule{Align: 16, Size: 0}) {
		t.Errorf("empty std140 struct: got %v", r)
	}
	if r := empty.Rule(layout.Std430); r != (layout.Rule{Align: 1, Size: 0}) {
		t.Errorf("empty std430 struct: got %v", r)
	}

	var buf bytes.Buffer
	w := layout.NewWriter(layout.Std140, &buf)
	_ = w.Write(glsl.Float(1))
	if err := w.Write(layout.Array[glsl.Vec2]{}); err != nil {
		t.Fatal(err)
	}
	// the empty array still aligns the cursor to 16
	if w.Len() != 16 {
		t.Errorf("len: got %d, want 16", w.Len())
	}
}

func TestUniformArrayOfValues(t *testing.T) {
	arr := layout.Array[layout.Value]{glsl.Vec2{X: 1, Y: 2}, glsl.Vec2{X: 3, Y: 4}}
	if r := arr.Rule(layout.Std430); r != (layout.Rule{Align: 8, Size: 16}) {
		t.Errorf("std430: got %v", r)
	}

	nested := layout.Array[layout.Array[glsl.Float]]{{1, 2}, {3, 4}}
	buf := layout.Bytes(layout.Std430, nested)
	if len(buf) != 16 {
		t.Fatalf("len: got %d, want 16", len(buf))
	}
	if got := f32(buf, 12); got != 4 {
		t.Errorf("last element: got %v, want 4", got)
	}
}
