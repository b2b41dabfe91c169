// Package errors provides structured error types for the gpu-layout library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries context: field path, Go/GLSL type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCompile, errors.KindTypeMismatch).
//		Path("Light", "color").
//		GoType("string").
//		GlslType("vec3").
//		Detail("cannot lay out a string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseCompile, path, "string", "vec3")
//	err := errors.SinkFailure(offset, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Sink errors are kept as Cause, so errors.Is(err, io.ErrShortWrite) works
// through the wrapper.
package errors
