package layout

import "sync"

// Calculator derives layouts for Type descriptors under one standard and
// caches them per descriptor.
type Calculator struct {
	cache map[*Type]Info
	mu    sync.Mutex
	std   Standard
}

func NewCalculator(std Standard) *Calculator {
	return &Calculator{
		cache: make(map[*Type]Info),
		std:   std,
	}
}

func (c *Calculator) Standard() Standard {
	return c.std
}

// Calculate returns the layout of t. It panics with a layout_violation when
// t does not fit 32-bit sizes; use Check for descriptors built from input.
func (c *Calculator) Calculate(t *Type) Info {
	info, err := c.Check(t)
	if err != nil {
		panic(err)
	}
	return info
}

// Check is Calculate returning composition failures as errors.
func (c *Calculator) Check(t *Type) (Info, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculate(t)
}

func (c *Calculator) calculate(t *Type) (Info, error) {
	if cached, ok := c.cache[t]; ok {
		return cached, nil
	}

	var (
		info Info
		err  error
	)

	switch t.Kind {
	case KindArray:
		elem, err := c.calculate(t.Elem)
		if err != nil {
			return Info{}, err
		}
		info, err = TryComposeArray(c.std, elem.Rule, t.Len)
		if err != nil {
			return Info{}, err
		}
	case KindStruct:
		rules := make([]Rule, len(t.Fields))
		for i, f := range t.Fields {
			fi, err := c.calculate(f.Type)
			if err != nil {
				return Info{}, err
			}
			rules[i] = fi.Rule
		}
		info, err = TryComposeStruct(c.std, rules...)
		if err != nil {
			return Info{}, err
		}
	default:
		info = Info{Rule: t.Kind.Rule()}
	}

	c.cache[t] = info
	return info, nil
}

// FieldInfo is the placement of one struct member.
type FieldInfo struct {
	Type   *Type
	Name   string
	Rule   Rule
	Offset uint32
	Stride uint32 // non-zero for array members
}

// Fields returns the placement of each member of a struct type, or nil for
// any other kind.
func (c *Calculator) Fields(t *Type) []FieldInfo {
	if t.Kind != KindStruct {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := c.calculate(t)
	if err != nil {
		panic(err)
	}
	fields := make([]FieldInfo, len(t.Fields))
	for i, f := range t.Fields {
		fi, _ := c.calculate(f.Type)
		fields[i] = FieldInfo{
			Type:   f.Type,
			Name:   f.Name,
			Rule:   fi.Rule,
			Offset: info.Offsets[i],
			Stride: fi.Stride,
		}
	}
	return fields
}
