package derive

import (
	"io"
	"reflect"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/layout"
)

// Value is a Go value bound to its compiled plan. It implements
// layout.Value.
type Value struct {
	ct *Compiled
	v  reflect.Value
}

// Of compiles the type of v with the package compiler and binds v to it.
// Pointers are followed.
func Of(v any) (Value, error) {
	return defaultCompiler.Of(v)
}

// MustOf is like Of but panics on error, for values whose types are known to
// compile.
func MustOf(v any) Value {
	val, err := Of(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Of binds v to its plan. A Value passed in is returned unchanged.
func (c *Compiler) Of(v any) (Value, error) {
	switch dv := v.(type) {
	case Value:
		if dv.ct == nil {
			return Value{}, errors.NilPointer(errors.PhaseWrite, nil, "derive.Value")
		}
		return dv, nil
	case *Value:
		if dv == nil || dv.ct == nil {
			return Value{}, errors.NilPointer(errors.PhaseWrite, nil, "*derive.Value")
		}
		return *dv, nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Value{}, errors.NilPointer(errors.PhaseWrite, nil, "<nil>")
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Value{}, errors.NilPointer(errors.PhaseWrite, nil, rv.Type().String())
		}
		rv = rv.Elem()
	}

	ct, err := c.Compile(rv.Type())
	if err != nil {
		return Value{}, err
	}
	return Value{ct: ct, v: rv}, nil
}

// Compiled returns the plan v is bound to.
func (v Value) Compiled() *Compiled {
	return v.ct
}

func (v Value) Rule(std layout.Standard) layout.Rule {
	return v.ct.Rule(std)
}

func (v Value) AppendPadded(dst []byte, std layout.Standard) []byte {
	return v.ct.appendValue(dst, std, v.v)
}

// Decode fills the struct or array that ptr points to from src, the padded
// image written under std.
func Decode(src []byte, std layout.Standard, ptr any) error {
	return defaultCompiler.Decode(src, std, ptr)
}

func (c *Compiler) Decode(src []byte, std layout.Standard, ptr any) error {
	t, err := c.Into(ptr)
	if err != nil {
		return err
	}
	need := int(t.Rule(std).Size)
	if len(src) < need {
		return errors.ShortBuffer(errors.PhaseRead, need, len(src), io.ErrUnexpectedEOF)
	}
	t.DecodePadded(src[:need], std)
	return nil
}

// Target is a decode destination bound to its compiled plan. It implements
// layout.Decodable, so it can be passed to layout.Reader.
type Target struct {
	ct *Compiled
	v  reflect.Value
}

// Into binds the value ptr points to as a decode target.
func Into(ptr any) (Target, error) {
	return defaultCompiler.Into(ptr)
}

func (c *Compiler) Into(ptr any) (Target, error) {
	rv := reflect.ValueOf(ptr)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer {
		return Target{}, errors.New(errors.PhaseRead, errors.KindInvalidInput).
			GoType(typeString(ptr)).
			Detail("decode target must be a non-nil pointer").
			Build()
	}
	if rv.IsNil() {
		return Target{}, errors.NilPointer(errors.PhaseRead, nil, rv.Type().String())
	}

	ct, err := c.Compile(rv.Type())
	if err != nil {
		return Target{}, err
	}
	if !ct.decodable {
		return Target{}, errors.Unsupported(errors.PhaseRead, nil,
			ct.GoType.String()+" contains a value that cannot be decoded")
	}
	return Target{ct: ct, v: rv.Elem()}, nil
}

func (t Target) Rule(std layout.Standard) layout.Rule {
	return t.ct.Rule(std)
}

func (t Target) DecodePadded(src []byte, std layout.Standard) {
	t.ct.decodeValue(src, std, t.v)
}

func typeString(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
