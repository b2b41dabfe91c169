package layout

import "strings"

// Standard selects a GLSL buffer layout standard.
type Standard uint8

const (
	Std140 Standard = iota // uniform blocks
	Std430                 // storage blocks

	numStandards = 2
)

// Standards lists every supported standard in declaration order.
var Standards = [numStandards]Standard{Std140, Std430}

func (s Standard) String() string {
	switch s {
	case Std140:
		return "std140"
	case Std430:
		return "std430"
	default:
		return "unknown"
	}
}

// ParseStandard accepts "std140" or "std430", case-insensitively.
func ParseStandard(name string) (Standard, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "std140":
		return Std140, true
	case "std430":
		return Std430, true
	default:
		return 0, false
	}
}

// StructFloor is the minimum alignment of a struct under s.
func (s Standard) StructFloor() uint32 {
	if s == Std140 {
		return 16
	}
	return 1
}

// arrayFloor is the minimum element stride alignment for arrays of elem.
func (s Standard) arrayFloor(elem Rule) uint32 {
	if s == Std140 && elem.Align < 16 {
		return 16
	}
	return elem.Align
}

// Primitive returns the rule for a primitive kind. Primitive rules do not
// depend on the standard.
func (s Standard) Primitive(k Kind) Rule {
	return k.Rule()
}
