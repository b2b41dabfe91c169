// Package gpulayout lays out host values in GPU buffer memory following the
// GLSL std140 and std430 standards.
//
// # Architecture Overview
//
//	gpulayout/           Root package with the Memory and Allocator interfaces
//	├── layout/          Rules, composition, Writer, Sizer and Reader
//	├── glsl/            Layout-ready GLSL scalar, vector and matrix types
//	├── std140/          Writers and queries bound to std140
//	├── std430/          Writers and queries bound to std430
//	├── derive/          Reflection-based layouts for plain Go structs
//	├── sink/            Byte sinks: fixed buffers and offset-addressed memory
//	├── schema/          YAML struct declarations for layout queries
//	├── witlayout/       GLSL layouts for WIT record and tuple types
//	├── errors/          Structured error types
//	└── cmd/glsllayout/  Offset table printer and interactive browser
//
// # Quick Start
//
// Write a count followed by an array of lights into a uniform buffer:
//
//	var lightType = layout.NewStructType("Light", glsl.Vec3{}, glsl.Vec3{}, glsl.Float(0))
//
//	func (l Light) Rule(std layout.Standard) layout.Rule { return lightType.Rule(std) }
//
//	func (l Light) AppendPadded(dst []byte, std layout.Standard) []byte {
//		return lightType.Append(dst, std, l.Position, l.Color, glsl.Float(l.Brightness))
//	}
//
//	size := std140.Size(glsl.Uint(len(lights)), layout.Array[Light](lights))
//	buf := sink.NewBuffer(size)
//	w := std140.NewWriter(buf)
//	_ = w.Write(glsl.Uint(len(lights)))
//	_ = w.Write(layout.Array[Light](lights))
//
// Plain structs can skip the hand-written methods:
//
//	type Light struct {
//		Position   [3]float32 `glsl:"vec"`
//		Color      [3]float32 `glsl:"vec"`
//		Brightness float32
//	}
//
//	_ = w.Write(derive.MustOf(lights))
//
// # Layout Rules
//
// Every type has an alignment and a size, and the size is always a multiple
// of the alignment. A value is placed at the next offset that is a multiple
// of its alignment, with the gap zero-filled. Vectors of three components
// occupy the same slot as vectors of four. Matrices are arrays of column
// vectors with a 16-byte column stride. std140 raises struct alignment and
// array stride to 16; std430 does not.
//
// # Errors
//
// The only runtime failure of a write is the sink rejecting bytes, reported
// as an *errors.Error of kind sink_failure wrapping the sink's error. A type
// whose rule or padded image is inconsistent is a programming defect and
// panics with an *errors.Error of kind layout_violation.
package gpulayout
