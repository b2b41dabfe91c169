package witlayout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.bytecodealliance.org/wit"

	gerrors "github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/layout"
)

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func tuple(types ...wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}
}

func TestScalars(t *testing.T) {
	tests := []struct {
		in   wit.Type
		want layout.Kind
	}{
		{wit.F32{}, layout.KindFloat},
		{wit.F64{}, layout.KindDouble},
		{wit.S32{}, layout.KindInt},
		{wit.U32{}, layout.KindUint},
		{wit.Bool{}, layout.KindBool},
	}
	for _, tt := range tests {
		got, err := FromWIT(tt.in)
		if err != nil {
			t.Errorf("%T: %v", tt.in, err)
			continue
		}
		if got.Kind != tt.want {
			t.Errorf("%T: got %v, want %v", tt.in, got.Kind, tt.want)
		}
	}
}

func TestTuples(t *testing.T) {
	col3 := tuple(wit.F32{}, wit.F32{}, wit.F32{})
	tests := []struct {
		name string
		in   wit.Type
		want layout.Kind
	}{
		{"vec2", tuple(wit.F32{}, wit.F32{}), layout.KindVec2},
		{"dvec3", tuple(wit.F64{}, wit.F64{}, wit.F64{}), layout.KindDVec3},
		{"ivec4", tuple(wit.S32{}, wit.S32{}, wit.S32{}, wit.S32{}), layout.KindIVec4},
		{"uvec2", tuple(wit.U32{}, wit.U32{}), layout.KindUVec2},
		{"bvec3", tuple(wit.Bool{}, wit.Bool{}, wit.Bool{}), layout.KindBVec3},
		{"mat3", tuple(col3, col3, col3), layout.KindMat3},
		{"mat2", tuple(tuple(wit.F32{}, wit.F32{}), tuple(wit.F32{}, wit.F32{})), layout.KindMat2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromWIT(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got.Kind != tt.want {
				t.Errorf("got %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestRecordLayout(t *testing.T) {
	vec3 := named("vec3f", tuple(wit.F32{}, wit.F32{}, wit.F32{}))
	light := named("point-light", &wit.Record{Fields: []wit.Field{
		{Name: "position", Type: vec3},
		{Name: "color", Type: vec3},
		{Name: "brightness", Type: wit.F32{}},
	}})
	scene := named("scene", &wit.Record{Fields: []wit.Field{
		{Name: "count", Type: wit.U32{}},
		{Name: "sun", Type: light},
		{Name: "fill", Type: light},
	}})

	c := NewConverter()
	got, err := c.Convert(scene)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "scene" || got.Fields[1].Type.Name != "point-light" {
		t.Errorf("names: got %q, %q", got.Name, got.Fields[1].Type.Name)
	}
	if got.Fields[1].Type != got.Fields[2].Type {
		t.Error("shared definitions should share descriptors")
	}
	if again, _ := c.Convert(scene); again != got {
		t.Error("repeated conversion should hit the cache")
	}

	fields := layout.NewCalculator(layout.Std140).Fields(got)
	offsets := make([]uint32, len(fields))
	for i, f := range fields {
		offsets[i] = f.Offset
	}
	if diff := cmp.Diff([]uint32{0, 16, 64}, offsets); diff != "" {
		t.Errorf("std140 offsets (-want +got):\n%s", diff)
	}
}

func TestAlias(t *testing.T) {
	alias := named("radius", wit.F32{})
	got, err := FromWIT(alias)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != layout.KindFloat {
		t.Errorf("got %v, want float", got.Kind)
	}

	aliasedVec := tuple(alias, wit.F32{})
	got, err = FromWIT(aliasedVec)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != layout.KindVec2 {
		t.Errorf("got %v, want vec2", got.Kind)
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   wit.Type
		path []string
	}{
		{"string", wit.String{}, nil},
		{"u64", wit.U64{}, nil},
		{"list", &wit.TypeDef{Kind: &wit.List{Type: wit.F32{}}}, nil},
		{"mixed tuple", tuple(wit.F32{}, wit.U32{}), []string{"[0]"}},
		{"five-wide vector", tuple(wit.F32{}, wit.F32{}, wit.F32{}, wit.F32{}, wit.F32{}), nil},
		{"single scalar tuple", tuple(wit.F32{}), nil},
		{"non-square matrix", tuple(tuple(wit.F32{}, wit.F32{}, wit.F32{}), tuple(wit.F32{}, wit.F32{}, wit.F32{})), []string{"[0]"}},
		{"record with string", named("tag", &wit.Record{Fields: []wit.Field{
			{Name: "id", Type: wit.U32{}},
			{Name: "label", Type: wit.String{}},
		}}), []string{"label"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromWIT(tt.in)
			var e *gerrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("got %v, want *errors.Error", err)
			}
			if e.Kind != gerrors.KindUnsupported {
				t.Errorf("kind: got %s, want unsupported", e.Kind)
			}
			if diff := cmp.Diff(tt.path, e.Path); diff != "" {
				t.Errorf("path (-want +got):\n%s", diff)
			}
		})
	}
}
