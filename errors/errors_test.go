package errors

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseCompile,
				Kind:     KindTypeMismatch,
				Path:     []string{"Light", "color", "x"},
				GoType:   "string",
				GlslType: "float",
				Detail:   "cannot convert",
			},
			contains: []string{"[compile]", "type_mismatch", "Light.color.x", "string", "float", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindShortBuffer,
			},
			contains: []string{"[read]", "short_buffer"},
		},
		{
			name: "glsl type only",
			err: &Error{
				Phase:    PhaseCompile,
				Kind:     KindLayoutViolation,
				GlslType: "vec3",
				Detail:   "size 12 not a multiple of 16",
			},
			contains: []string{"GLSL type vec3", " - size 12"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseWrite,
				Kind:   KindSinkFailure,
				Detail: "buffer full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[write]", "sink_failure", "buffer full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseWrite,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseCompile,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseCompile, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseRead, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseCompile, Kind: KindUnsupported}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseCompile, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCompile, KindTypeMismatch).
		Path("Light", "color").
		GoType("string").
		GlslType("vec3").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "vec3", "string").
		Build()

	if err.Phase != PhaseCompile {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCompile)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "Light" || err.Path[1] != "color" {
		t.Errorf("Path = %v, want [Light color]", err.Path)
	}
	if err.GoType != "string" {
		t.Errorf("GoType = %v, want 'string'", err.GoType)
	}
	if err.GlslType != "vec3" {
		t.Errorf("GlslType = %v, want 'vec3'", err.GlslType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected vec3, got string" {
		t.Errorf("Detail = %v, want 'expected vec3, got string'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseCompile, []string{"field"}, "int", "float")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || err.GlslType != "float" {
			t.Errorf("GoType=%v GlslType=%v", err.GoType, err.GlslType)
		}
	})

	t.Run("SinkFailure", func(t *testing.T) {
		err := SinkFailure(48, io.ErrShortWrite)
		if err.Kind != KindSinkFailure || err.Phase != PhaseWrite {
			t.Errorf("got %v/%v, want write/sink_failure", err.Phase, err.Kind)
		}
		if !errors.Is(err, io.ErrShortWrite) {
			t.Error("errors.Is should see through to the sink error")
		}
		if err.Value != 48 {
			t.Errorf("Value = %v, want 48", err.Value)
		}
	})

	t.Run("ShortBuffer", func(t *testing.T) {
		err := ShortBuffer(PhaseRead, 16, 4, io.ErrUnexpectedEOF)
		if err.Kind != KindShortBuffer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindShortBuffer)
		}
		if !strings.Contains(err.Detail, "16") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Error("cause should be reachable")
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseSink, 65530, 16)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "65546") {
			t.Errorf("Detail = %v, should contain end offset", err.Detail)
		}
	})

	t.Run("LayoutViolation", func(t *testing.T) {
		err := LayoutViolation("vec3", "size %d not a multiple of %d", 12, 16)
		if err.Kind != KindLayoutViolation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLayoutViolation)
		}
		if err.Detail != "size 12 not a multiple of 16" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseCompile, []string{"f"}, "map types")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseWrite, []string{"ptr"}, "*Light")
		if err.Kind != KindNilPointer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilPointer)
		}
		if err.GoType != "*Light" {
			t.Errorf("GoType = %v, want '*Light'", err.GoType)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseSchema, "type", "Light")
		if !strings.Contains(err.Error(), `type "Light" not found`) {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("Cycle", func(t *testing.T) {
		err := Cycle(PhaseSchema, []string{"A", "b", "B", "a"})
		if err.Kind != KindCycle {
			t.Errorf("Kind = %v, want %v", err.Kind, KindCycle)
		}
		if !strings.Contains(err.Error(), "A.b.B.a") {
			t.Errorf("path missing from %q", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("yaml: bad indent")
		err := Wrap(PhaseSchema, KindInvalidData, cause, "parse schema")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause")
		}
	})
}
