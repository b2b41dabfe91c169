// Package layout computes std140 and std430 buffer layouts and streams
// layout-ready values into byte sinks.
//
// Every layout-ready type reports a Rule (alignment and size) per Standard.
// Sizes always include trailing padding up to the type's own alignment, so
// Size%Align == 0 for every rule the package produces or accepts.
//
// # Rules
//
//	Type                     Align   Size
//	─────────────────────────────────────
//	bool/int/uint/float      4       4
//	double                   8       8
//	*vec2 (32-bit)           8       8
//	*vec3, *vec4 (32-bit)    16      16   (vec3 carries 12 data bytes)
//	dvec2                    16      16
//	dvec3, dvec4             32      32
//	mat2 / mat3 / mat4       16      32 / 48 / 64   (16-byte column stride)
//	struct                   max(floor, fields)  rounded sum
//	array                    see ComposeArray
//
// The struct floor is 16 under std140 and 1 under std430. Under std140 the
// array stride is the element size rounded up to max(element align, 16);
// under std430 it is the element size rounded up to the element alignment.
//
// # Writing
//
//	w := layout.NewWriter(layout.Std140, dst)
//	_ = w.Write(glsl.Uint(len(lights)))
//	for _, l := range lights {
//		_ = w.Write(l) // zero padding is inserted before each value
//	}
//
// A Sizer replays the same sequence without a sink and always reports the
// same Len as the Writer. A Reader consumes a buffer produced by a Writer.
//
// # Thread Safety
//
// Rules, Types, StructTypes and Calculators are safe for concurrent use.
// Writer, Sizer and Reader keep a cursor and belong to one goroutine.
package layout
