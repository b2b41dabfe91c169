package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile Phase = "compile" // type definition / layout derivation
	PhaseWrite   Phase = "write"   // value to buffer
	PhaseRead    Phase = "read"    // buffer to value
	PhaseSchema  Phase = "schema"  // schema loading
	PhaseSink    Phase = "sink"    // byte sink operations
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindUnsupported     Kind = "unsupported"
	KindSinkFailure     Kind = "sink_failure"
	KindShortBuffer     Kind = "short_buffer"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindLayoutViolation Kind = "layout_violation"
	KindInvalidData     Kind = "invalid_data"
	KindNilPointer      Kind = "nil_pointer"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindCycle           Kind = "cycle"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	GlslType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.GlslType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.GlslType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", GLSL type ")
			b.WriteString(e.GlslType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("GLSL type ")
			b.WriteString(e.GlslType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.GlslType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// GlslType sets the GLSL type name
func (b *Builder) GlslType(t string) *Builder {
	b.err.GlslType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, glslType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		GlslType: glslType,
	}
}

// Unsupported creates an unsupported type error
func Unsupported(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Path:   path,
		Detail: what,
	}
}

// SinkFailure wraps an error returned by the destination byte sink.
func SinkFailure(offset int, cause error) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindSinkFailure,
		Detail: fmt.Sprintf("sink rejected write at offset %d", offset),
		Value:  offset,
		Cause:  cause,
	}
}

// ShortBuffer creates an error for a destination or source that ran out of bytes
func ShortBuffer(phase Phase, need, have int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindShortBuffer,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
		Value:  need,
		Cause:  cause,
	}
}

// OutOfBounds creates an out of bounds error for offset-addressed memory
func OutOfBounds(phase Phase, offset, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, %d) out of bounds", offset, uint64(offset)+uint64(length)),
		Value:  offset,
	}
}

// LayoutViolation reports a rule whose size is not a multiple of its
// alignment, or a padded value that disagrees with its own rule. These are
// defects in a type definition and are raised with panic.
func LayoutViolation(glslType string, detail string, args ...any) *Error {
	return &Error{
		Phase:    PhaseCompile,
		Kind:     KindLayoutViolation,
		GlslType: glslType,
		Detail:   fmt.Sprintf(detail, args...),
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Cycle reports a type that contains itself
func Cycle(phase Phase, path []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCycle,
		Path:   path,
		Detail: "type contains itself",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
