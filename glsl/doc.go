// Package glsl provides layout-ready GLSL scalars, vectors and matrices.
//
// Every type implements layout.Value and, through its pointer,
// layout.Decodable. Their rules are the same under std140 and std430.
// Values are written in native byte order. Vectors of three components
// carry one trailing zero component of padding; matrix columns are padded
// to a 16-byte stride. Bool and BVec components are written as 0 or 1.
//
//	buf := layout.Bytes(layout.Std140, glsl.Mat3Identity())
//	len(buf) // 48
package glsl
