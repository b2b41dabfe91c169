package layout

import (
	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/internal/align"
)

// Info is a derived layout: the aggregate rule plus field offsets for
// structs or the element stride for arrays.
type Info struct {
	Rule
	Offsets []uint32 // struct fields, declaration order
	Stride  uint32   // array element stride
	Count   int      // array length
}

// ComposeStruct lays out fields in declaration order. Each field starts at
// the first multiple of its alignment past the previous field's end; the
// struct aligns to max(StructFloor, field alignments) and its size rounds
// up to that alignment. A struct without fields has size 0.
//
// It panics with a layout_violation when a field rule is invalid or the
// offsets overflow; TryComposeStruct returns the error instead.
func ComposeStruct(std Standard, fields ...Rule) Info {
	info, err := TryComposeStruct(std, fields...)
	if err != nil {
		panic(err)
	}
	return info
}

// TryComposeStruct is ComposeStruct for caller-supplied rules.
func TryComposeStruct(std Standard, fields ...Rule) (Info, error) {
	maxAlign := std.StructFloor()
	offsets := make([]uint32, len(fields))
	offset := uint32(0)

	for i, f := range fields {
		if err := f.check("struct field"); err != nil {
			return Info{}, err
		}

		offset = align.To(offset, f.Align)
		offsets[i] = offset

		if f.Align > maxAlign {
			maxAlign = f.Align
		}

		next, ok := align.SafeAddU32(offset, f.Size)
		if !ok {
			return Info{}, errors.LayoutViolation("struct", "field %d overflows 32-bit offsets", i)
		}
		offset = next
	}

	size := align.To(offset, maxAlign)
	if size < offset {
		return Info{}, errors.LayoutViolation("struct", "size %d overflows 32-bit sizes", offset)
	}

	return Info{
		Rule:    Rule{Align: maxAlign, Size: size},
		Offsets: offsets,
	}, nil
}

// ComposeArray lays out n elements of elem. Under std140 the stride rounds
// up to max(elem.Align, 16); under std430 it rounds to elem.Align. The array
// aligns to the same value. Zero-length arrays have size 0.
//
// It panics with a layout_violation on an invalid element rule, a negative
// length or a size past 32 bits; TryComposeArray returns the error instead.
func ComposeArray(std Standard, elem Rule, n int) Info {
	info, err := TryComposeArray(std, elem, n)
	if err != nil {
		panic(err)
	}
	return info
}

// TryComposeArray is ComposeArray for caller-supplied lengths.
func TryComposeArray(std Standard, elem Rule, n int) (Info, error) {
	if err := elem.check("array element"); err != nil {
		return Info{}, err
	}
	if n < 0 {
		return Info{}, errors.LayoutViolation("array", "negative length %d", n)
	}

	floor := std.arrayFloor(elem)
	stride := align.To(elem.Size, floor)
	if stride < elem.Size {
		return Info{}, errors.LayoutViolation("array", "stride of element size %d overflows 32-bit sizes", elem.Size)
	}

	size, ok := align.SafeMulU32(stride, uint32(n))
	if !ok || uint64(n) > uint64(^uint32(0)) {
		return Info{}, errors.LayoutViolation("array", "%d elements of stride %d overflow 32-bit sizes", n, stride)
	}

	return Info{
		Rule:   Rule{Align: floor, Size: size},
		Stride: stride,
		Count:  n,
	}, nil
}
