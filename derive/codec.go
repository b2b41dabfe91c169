package derive

import (
	"reflect"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/glsl"
	"github.com/wippyai/gpu-layout/layout"
)

// appendValue appends the padded image of v. v must have ct.GoType.
func (ct *Compiled) appendValue(dst []byte, std layout.Standard, v reflect.Value) []byte {
	start := len(dst)
	info := &ct.infos[std]

	switch ct.plan {
	case planScalar:
		dst = appendScalar(dst, std, v)
	case planVector:
		for i := 0; i < v.Len(); i++ {
			dst = appendScalar(dst, std, v.Index(i))
		}
	case planMatrix:
		stride := int(info.Size) / v.Len()
		for i := 0; i < v.Len(); i++ {
			dst = layout.AppendZeros(dst, start+i*stride-len(dst))
			col := v.Index(i)
			for j := 0; j < col.Len(); j++ {
				dst = appendScalar(dst, std, col.Index(j))
			}
		}
	case planValue:
		dst = v.Interface().(layout.Value).AppendPadded(dst, std)
	case planStruct:
		for i, f := range ct.Fields {
			dst = layout.AppendZeros(dst, start+int(info.Offsets[i])-len(dst))
			dst = f.Type.appendValue(dst, std, v.Field(f.Index))
		}
	case planArray:
		for i := 0; i < ct.Len; i++ {
			dst = layout.AppendZeros(dst, start+i*int(info.Stride)-len(dst))
			dst = ct.Elem.appendValue(dst, std, v.Index(i))
		}
	}

	if n := len(dst) - start; n > int(info.Size) {
		panic(errors.LayoutViolation(ct.GLSLType(), "%s produced %d bytes, rule says %d", ct.GoType, n, info.Size))
	}
	return layout.AppendZeros(dst, start+int(info.Size)-len(dst))
}

func appendScalar(dst []byte, std layout.Standard, v reflect.Value) []byte {
	switch v.Kind() {
	case reflect.Float32:
		return glsl.Float(v.Float()).AppendPadded(dst, std)
	case reflect.Float64:
		return glsl.Double(v.Float()).AppendPadded(dst, std)
	case reflect.Int32:
		return glsl.Int(v.Int()).AppendPadded(dst, std)
	case reflect.Uint32:
		return glsl.Uint(v.Uint()).AppendPadded(dst, std)
	default:
		return glsl.Bool(v.Bool()).AppendPadded(dst, std)
	}
}

// decodeValue fills the settable v from src, the padded image of one value.
func (ct *Compiled) decodeValue(src []byte, std layout.Standard, v reflect.Value) {
	info := &ct.infos[std]

	switch ct.plan {
	case planScalar:
		decodeScalar(src, std, v)
	case planVector:
		size := int(v.Type().Elem().Size())
		if v.Type().Elem().Kind() == reflect.Bool {
			size = 4
		}
		for i := 0; i < v.Len(); i++ {
			decodeScalar(src[i*size:], std, v.Index(i))
		}
	case planMatrix:
		stride := int(info.Size) / v.Len()
		for i := 0; i < v.Len(); i++ {
			col := v.Index(i)
			for j := 0; j < col.Len(); j++ {
				decodeScalar(src[i*stride+4*j:], std, col.Index(j))
			}
		}
	case planValue:
		v.Addr().Interface().(layout.Decodable).DecodePadded(src[:info.Size], std)
	case planStruct:
		for i, f := range ct.Fields {
			off := info.Offsets[i]
			f.Type.decodeValue(src[off:off+f.Type.infos[std].Size], std, v.Field(f.Index))
		}
	case planArray:
		elemSize := ct.Elem.infos[std].Size
		for i := 0; i < ct.Len; i++ {
			off := uint32(i) * info.Stride
			ct.Elem.decodeValue(src[off:off+elemSize], std, v.Index(i))
		}
	}
}

func decodeScalar(src []byte, std layout.Standard, v reflect.Value) {
	switch v.Kind() {
	case reflect.Float32:
		var f glsl.Float
		f.DecodePadded(src, std)
		v.SetFloat(float64(f))
	case reflect.Float64:
		var d glsl.Double
		d.DecodePadded(src, std)
		v.SetFloat(float64(d))
	case reflect.Int32:
		var i glsl.Int
		i.DecodePadded(src, std)
		v.SetInt(int64(i))
	case reflect.Uint32:
		var u glsl.Uint
		u.DecodePadded(src, std)
		v.SetUint(uint64(u))
	default:
		var b glsl.Bool
		b.DecodePadded(src, std)
		v.SetBool(bool(b))
	}
}
