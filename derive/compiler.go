package derive

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/layout"
)

type planKind uint8

const (
	planScalar planKind = iota
	planVector
	planMatrix
	planValue
	planStruct
	planArray
)

var (
	valueType      = reflect.TypeFor[layout.Value]()
	decodableType  = reflect.TypeFor[layout.Decodable]()
	boundValueType = reflect.TypeFor[Value]()
)

// Compiled is the layout plan for one Go type. It is immutable and safe to
// share.
type Compiled struct {
	GoType reflect.Type
	Elem   *Compiled // arrays
	Fields []Field   // structs
	Len    int       // arrays

	// Kind is the GLSL kind for scalars, vectors, matrices, arrays and
	// structs. Value fields report the kind the value declares, or
	// KindStruct when it declares none.
	Kind layout.Kind

	infos     [len(layout.Standards)]layout.Info
	plan      planKind
	decodable bool
}

// Field is one laid-out member of a compiled struct.
type Field struct {
	Type  *Compiled
	Name  string
	Index int // Go field index
}

// Rule returns the layout rule under std.
func (ct *Compiled) Rule(std layout.Standard) layout.Rule {
	return ct.infos[std].Rule
}

// Info returns member offsets for structs and the stride for arrays.
func (ct *Compiled) Info(std layout.Standard) layout.Info {
	info := ct.infos[std]
	info.Offsets = append([]uint32(nil), info.Offsets...)
	return info
}

// Decodable reports whether values of this type can be restored by Decode.
func (ct *Compiled) Decodable() bool {
	return ct.decodable
}

// GLSLType renders the GLSL type name: "vec3", "float[4]", "Light".
func (ct *Compiled) GLSLType() string {
	switch ct.plan {
	case planArray:
		return ct.Elem.GLSLType() + "[" + strconv.Itoa(ct.Len) + "]"
	case planStruct, planValue:
		if ct.Kind.IsPrimitive() {
			return ct.Kind.String()
		}
		if name := ct.GoType.Name(); name != "" {
			return name
		}
		return "struct"
	default:
		return ct.Kind.String()
	}
}

// Compiler builds and caches plans. It is safe for concurrent use.
type Compiler struct {
	cache sync.Map // reflect.Type -> *Compiled
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

var defaultCompiler = NewCompiler()

// Compile returns the plan for goType using the package compiler. Pointer
// types are dereferenced.
func Compile(goType reflect.Type) (*Compiled, error) {
	return defaultCompiler.Compile(goType)
}

func (c *Compiler) Compile(goType reflect.Type) (*Compiled, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("Go type cannot be nil").
			Build()
	}
	if goType.Kind() == reflect.Pointer {
		goType = goType.Elem()
	}

	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*Compiled), nil
	}

	ct, err := c.compile(goType, "", nil)
	if err != nil {
		return nil, err
	}

	actual, loaded := c.cache.LoadOrStore(goType, ct)
	if !loaded {
		Logger().Debug("compiled type",
			zap.Stringer("go_type", goType),
			zap.String("glsl_type", ct.GLSLType()),
			zap.Stringer("std140", ct.Rule(layout.Std140)),
			zap.Stringer("std430", ct.Rule(layout.Std430)),
		)
	}
	return actual.(*Compiled), nil
}

// compile dispatches on the Go type. tag is the field's glsl tag option,
// which selects vector or matrix treatment for arrays.
func (c *Compiler) compile(goType reflect.Type, tag string, path []string) (*Compiled, error) {
	if goType.Implements(valueType) {
		return c.compileValue(goType, path)
	}

	switch tag {
	case "vec":
		return c.compileVector(goType, path)
	case "mat":
		return c.compileMatrix(goType, path)
	case "":
	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindInvalidInput).
			Path(path...).
			GoType(goType.String()).
			Detail("unknown glsl tag option %q", tag).
			Build()
	}

	switch goType.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int32, reflect.Uint32, reflect.Bool:
		k, _ := scalarKind(goType)
		return newLeaf(goType, k, planScalar), nil
	case reflect.Struct:
		return c.compileStruct(goType, path)
	case reflect.Array:
		return c.compileArray(goType, path)
	default:
		return nil, errors.Unsupported(errors.PhaseCompile, path,
			"Go type "+goType.String()+" has no GLSL layout")
	}
}

func scalarKind(goType reflect.Type) (layout.Kind, bool) {
	switch goType.Kind() {
	case reflect.Float32:
		return layout.KindFloat, true
	case reflect.Float64:
		return layout.KindDouble, true
	case reflect.Int32:
		return layout.KindInt, true
	case reflect.Uint32:
		return layout.KindUint, true
	case reflect.Bool:
		return layout.KindBool, true
	default:
		return 0, false
	}
}

func newLeaf(goType reflect.Type, k layout.Kind, plan planKind) *Compiled {
	ct := &Compiled{GoType: goType, Kind: k, plan: plan, decodable: true}
	for _, std := range layout.Standards {
		ct.infos[std] = layout.Info{Rule: k.Rule()}
	}
	return ct
}

type kinded interface {
	Kind() layout.Kind
}

func (c *Compiler) compileValue(goType reflect.Type, path []string) (*Compiled, error) {
	switch goType.Kind() {
	case reflect.Slice, reflect.Map:
		// Slice-backed values such as layout.Array change size with their length.
		return nil, errors.Unsupported(errors.PhaseCompile, path,
			"variable-length value "+goType.String()+" cannot be a fixed member")
	case reflect.Interface, reflect.Pointer:
		return nil, errors.Unsupported(errors.PhaseCompile, path,
			"value "+goType.String()+" has no layout until it is set")
	}
	if goType == boundValueType {
		return nil, errors.Unsupported(errors.PhaseCompile, path,
			"derive.Value has no layout until it is bound; use the underlying type")
	}

	zero := reflect.Zero(goType).Interface().(layout.Value)
	ct := &Compiled{
		GoType:    goType,
		Kind:      layout.KindStruct,
		plan:      planValue,
		decodable: reflect.PointerTo(goType).Implements(decodableType),
	}
	if k, ok := zero.(kinded); ok {
		ct.Kind = k.Kind()
	}
	for _, std := range layout.Standards {
		r, err := zeroRule(zero, std, path)
		if err != nil {
			return nil, err
		}
		if !r.Valid() {
			return nil, errors.New(errors.PhaseCompile, errors.KindLayoutViolation).
				Path(path...).
				GoType(goType.String()).
				Detail("invalid rule %v under %v", r, std).
				Build()
		}
		ct.infos[std] = layout.Info{Rule: r}
	}
	return ct, nil
}

// zeroRule asks the zero value of a Value type for its rule. A type whose
// zero value cannot answer fails compilation instead of crashing it.
func zeroRule(zero layout.Value, std layout.Standard, path []string) (r layout.Rule, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.New(errors.PhaseCompile, errors.KindLayoutViolation).
				Path(path...).
				GoType(reflect.TypeOf(zero).String()).
				Detail("zero value has no rule under %v: %v", std, p).
				Build()
		}
	}()
	return zero.Rule(std), nil
}

func (c *Compiler) compileVector(goType reflect.Type, path []string) (*Compiled, error) {
	if goType.Kind() != reflect.Array {
		return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "vector")
	}
	scalar, ok := scalarKind(goType.Elem())
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "vector of scalars")
	}
	k, ok := layout.VectorOf(scalar, goType.Len())
	if !ok {
		return nil, errors.New(errors.PhaseCompile, errors.KindTypeMismatch).
			Path(path...).
			GoType(goType.String()).
			Detail("vectors have 2 to 4 components, got %d", goType.Len()).
			Build()
	}
	return newLeaf(goType, k, planVector), nil
}

func (c *Compiler) compileMatrix(goType reflect.Type, path []string) (*Compiled, error) {
	if goType.Kind() != reflect.Array || goType.Elem().Kind() != reflect.Array ||
		goType.Elem().Elem().Kind() != reflect.Float32 || goType.Len() != goType.Elem().Len() {
		return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "[N][N]float32")
	}
	k, ok := layout.MatrixOf(goType.Len())
	if !ok {
		return nil, errors.New(errors.PhaseCompile, errors.KindTypeMismatch).
			Path(path...).
			GoType(goType.String()).
			Detail("matrices have 2 to 4 columns, got %d", goType.Len()).
			Build()
	}
	return newLeaf(goType, k, planMatrix), nil
}

func (c *Compiler) compileArray(goType reflect.Type, path []string) (*Compiled, error) {
	elemPath := append(append([]string{}, path...), "[elem]")
	elem, err := c.compile(goType.Elem(), "", elemPath)
	if err != nil {
		return nil, err
	}

	ct := &Compiled{
		GoType:    goType,
		Elem:      elem,
		Len:       goType.Len(),
		Kind:      layout.KindArray,
		plan:      planArray,
		decodable: elem.decodable,
	}
	for _, std := range layout.Standards {
		info, err := layout.TryComposeArray(std, elem.Rule(std), ct.Len)
		if err != nil {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				GoType(goType.String()).
				Cause(err).
				Detail("array of %d elements is too large under %v", ct.Len, std).
				Build()
		}
		ct.infos[std] = info
	}
	return ct, nil
}

func (c *Compiler) compileStruct(goType reflect.Type, path []string) (*Compiled, error) {
	ct := &Compiled{
		GoType:    goType,
		Kind:      layout.KindStruct,
		plan:      planStruct,
		decodable: true,
	}

	for i := 0; i < goType.NumField(); i++ {
		f := goType.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opt, skip := parseTag(f)
		if skip {
			continue
		}

		fieldPath := append(append([]string{}, path...), name)
		ft, err := c.compile(f.Type, opt, fieldPath)
		if err != nil {
			return nil, err
		}

		ct.Fields = append(ct.Fields, Field{Type: ft, Name: name, Index: i})
		ct.decodable = ct.decodable && ft.decodable
	}

	for _, std := range layout.Standards {
		rules := make([]layout.Rule, len(ct.Fields))
		for i, f := range ct.Fields {
			rules[i] = f.Type.Rule(std)
		}
		info, err := layout.TryComposeStruct(std, rules...)
		if err != nil {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				GoType(goType.String()).
				Cause(err).
				Detail("struct is too large under %v", std).
				Build()
		}
		ct.infos[std] = info
	}
	return ct, nil
}

// parseTag reads `glsl:"[name][,vec|,mat]"` or `glsl:"-"`. A bare "vec" or
// "mat" is an option, not a name.
func parseTag(f reflect.StructField) (name, opt string, skip bool) {
	tag := f.Tag.Get("glsl")
	if tag == "-" {
		return "", "", true
	}

	name = f.Name
	parts := strings.Split(tag, ",")
	switch {
	case len(parts) == 1 && (parts[0] == "vec" || parts[0] == "mat"):
		opt = parts[0]
	case len(parts) >= 1:
		if parts[0] != "" {
			name = parts[0]
		}
		if len(parts) > 1 {
			opt = parts[1]
		}
	}
	return name, opt, false
}
