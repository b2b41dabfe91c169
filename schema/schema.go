// Package schema loads GLSL struct declarations from YAML so layouts can be
// queried without Go types:
//
//	structs:
//	  - name: Light
//	    fields:
//	      - {name: position, type: vec3}
//	      - {name: color, type: vec3}
//	      - {name: brightness, type: float}
//	  - name: Scene
//	    fields:
//	      - {name: count, type: uint}
//	      - {name: lights, type: Light, count: 8}
//
// Field types are GLSL primitive names or names of other structs in the
// same document, in any order. A type may carry array suffixes such as
// "float[4][2]"; count wraps the field in one more outer dimension.
package schema

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/layout"
)

// Document is the YAML form of a schema.
type Document struct {
	Structs []StructDecl `yaml:"structs"`
}

type StructDecl struct {
	Name   string      `yaml:"name"`
	Fields []FieldDecl `yaml:"fields"`
}

type FieldDecl struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Count int    `yaml:"count,omitempty"`
}

// Schema is a resolved set of struct types.
type Schema struct {
	structs []*layout.Type
	byName  map[string]*layout.Type
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidInput, err, "read "+path)
	}
	return Parse(data)
}

// Parse decodes a YAML schema and resolves every type reference.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidInput, err, "malformed schema")
	}
	return Resolve(doc)
}

// Resolve builds types from declarations. Struct references may point
// forward; cycles are rejected.
func Resolve(doc Document) (*Schema, error) {
	s := &Schema{byName: make(map[string]*layout.Type, len(doc.Structs))}

	for _, decl := range doc.Structs {
		if decl.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseSchema, "struct without a name")
		}
		if _, isPrim := layout.ParseKind(decl.Name); isPrim {
			return nil, errors.InvalidInput(errors.PhaseSchema, "struct name "+strconv.Quote(decl.Name)+" shadows a GLSL type")
		}
		if _, dup := s.byName[decl.Name]; dup {
			return nil, errors.InvalidInput(errors.PhaseSchema, "duplicate struct "+strconv.Quote(decl.Name))
		}
		t := layout.StructOf(decl.Name)
		s.byName[decl.Name] = t
		s.structs = append(s.structs, t)
	}

	for i, decl := range doc.Structs {
		t := s.structs[i]
		seen := make(map[string]bool, len(decl.Fields))
		for _, fd := range decl.Fields {
			path := []string{decl.Name, fd.Name}
			if fd.Name == "" {
				return nil, errors.InvalidData(errors.PhaseSchema, []string{decl.Name}, "field without a name")
			}
			if seen[fd.Name] {
				return nil, errors.InvalidData(errors.PhaseSchema, path, "duplicate field")
			}
			seen[fd.Name] = true

			ft, err := s.resolveType(fd, path)
			if err != nil {
				return nil, err
			}
			t.Fields = append(t.Fields, layout.Field{Type: ft, Name: fd.Name})
		}
	}

	if err := s.checkCycles(); err != nil {
		return nil, err
	}
	if err := s.checkSizes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) resolveType(fd FieldDecl, path []string) (*layout.Type, error) {
	base, dims, problem := splitDims(fd.Type)
	if problem != "" {
		return nil, errors.InvalidData(errors.PhaseSchema, path, problem)
	}
	if fd.Count < 0 {
		return nil, errors.InvalidData(errors.PhaseSchema, path, "negative count "+strconv.Itoa(fd.Count))
	}

	var t *layout.Type
	if k, ok := layout.ParseKind(base); ok {
		t = layout.Prim(k)
	} else if st, ok := s.byName[base]; ok {
		t = st
	} else {
		e := errors.NotFound(errors.PhaseSchema, "type", base)
		e.Path = path
		return nil, e
	}

	// "float[4][2]" is an array of 4 arrays of 2 floats, so the innermost
	// dimension is the last one.
	for i := len(dims) - 1; i >= 0; i-- {
		t = layout.ArrayOf(t, dims[i])
	}
	if fd.Count > 0 {
		t = layout.ArrayOf(t, fd.Count)
	}
	return t, nil
}

// splitDims separates "vec4[3][2]" into "vec4" and [3 2]. A non-empty
// problem describes a malformed type.
func splitDims(typ string) (base string, dims []int, problem string) {
	typ = strings.TrimSpace(typ)
	i := strings.IndexByte(typ, '[')
	if i < 0 {
		i = len(typ)
	}

	base, rest := strings.TrimSpace(typ[:i]), typ[i:]
	if base == "" {
		return "", nil, "empty type"
	}
	for rest != "" {
		end := strings.IndexByte(rest, ']')
		if rest[0] != '[' || end < 0 {
			return "", nil, "malformed array type " + strconv.Quote(typ)
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest[1:end]))
		if err != nil || n < 0 {
			return "", nil, "bad array length in " + strconv.Quote(typ)
		}
		dims = append(dims, n)
		rest = rest[end+1:]
	}
	return base, dims, ""
}

const (
	unvisited = iota
	visiting
	done
)

func (s *Schema) checkCycles() error {
	state := make(map[*layout.Type]int, len(s.structs))
	var stack []string

	var visit func(t *layout.Type) error
	visit = func(t *layout.Type) error {
		for t.Kind == layout.KindArray {
			t = t.Elem
		}
		if t.Kind != layout.KindStruct {
			return nil
		}
		switch state[t] {
		case visiting:
			return errors.Cycle(errors.PhaseSchema, append(append([]string{}, stack...), t.Name))
		case done:
			return nil
		}

		state[t] = visiting
		stack = append(stack, t.Name)
		for _, f := range t.Fields {
			if err := visit(f.Type); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		state[t] = done
		return nil
	}

	for _, t := range s.structs {
		if err := visit(t); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the struct declared under name.
func (s *Schema) Lookup(name string) (*layout.Type, error) {
	if t, ok := s.byName[name]; ok {
		return t, nil
	}
	return nil, errors.NotFound(errors.PhaseSchema, "struct", name)
}

// Structs returns the declared structs in document order.
func (s *Schema) Structs() []*layout.Type {
	return append([]*layout.Type(nil), s.structs...)
}

// Document converts the schema back to its declarative form. Array fields
// are written with type suffixes.
func (s *Schema) Document() Document {
	doc := Document{Structs: make([]StructDecl, len(s.structs))}
	for i, t := range s.structs {
		decl := StructDecl{Name: t.Name, Fields: make([]FieldDecl, len(t.Fields))}
		for j, f := range t.Fields {
			decl.Fields[j] = FieldDecl{Name: f.Name, Type: f.Type.String()}
		}
		doc.Structs[i] = decl
	}
	return doc
}

// Marshal encodes the schema as YAML.
func (s *Schema) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.Document()); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err, "encode schema")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err, "encode schema")
	}
	return buf.Bytes(), nil
}

// checkSizes lays out every struct under both standards so that counts past
// 32-bit sizes fail here rather than in a Calculator.
func (s *Schema) checkSizes() error {
	for _, std := range layout.Standards {
		calc := layout.NewCalculator(std)
		for _, t := range s.structs {
			for _, f := range t.Fields {
				if _, err := calc.Check(f.Type); err != nil {
					return tooLarge([]string{t.Name, f.Name}, std, err)
				}
			}
			if _, err := calc.Check(t); err != nil {
				return tooLarge([]string{t.Name}, std, err)
			}
		}
	}
	return nil
}

func tooLarge(path []string, std layout.Standard, cause error) error {
	return errors.New(errors.PhaseSchema, errors.KindInvalidData).
		Path(path...).
		Cause(cause).
		Detail("too large under %v", std).
		Build()
}
