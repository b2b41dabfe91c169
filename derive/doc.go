// Package derive lays out plain Go structs without hand-written Value
// implementations.
//
// A Compiler inspects a Go type once with reflection and caches a plan
// holding the GLSL kind and per-standard layout of every field. Values are
// then encoded with Of and decoded with Decode or Into.
//
// Go to GLSL mapping:
//
//	float32, float64, int32, uint32, bool    float, double, int, uint, bool
//	[N]T with `glsl:"vec"` (N = 2..4)        vecN, dvecN, ivecN, uvecN, bvecN
//	[N][N]float32 with `glsl:"mat"`          matN, column-major
//	[N]T                                     T[N]
//	struct                                   struct, fields in declaration order
//	layout.Value implementations             the value's own rule
//
// Unexported fields and fields tagged `glsl:"-"` are skipped. Pointers,
// slices, maps, strings and interfaces are rejected at compile time.
package derive
