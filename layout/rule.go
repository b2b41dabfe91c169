package layout

import (
	"fmt"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/internal/align"
)

// Rule is the alignment and padded size of a type under one standard.
type Rule struct {
	Align uint32
	Size  uint32
}

// Valid reports whether Align is a power of two and Size is a multiple of it.
func (r Rule) Valid() bool {
	return align.IsPow2(r.Align) && r.Size%r.Align == 0
}

func (r Rule) String() string {
	return fmt.Sprintf("align=%d size=%d", r.Align, r.Size)
}

// check reports why r breaks the size/alignment invariant, or nil.
func (r Rule) check(typ string) error {
	if !align.IsPow2(r.Align) {
		return errors.LayoutViolation(typ, "alignment %d is not a power of two", r.Align)
	}
	if r.Size%r.Align != 0 {
		return errors.LayoutViolation(typ, "size %d is not a multiple of alignment %d", r.Size, r.Align)
	}
	return nil
}

// mustValid panics when r breaks the size/alignment invariant. Writers and
// composition depend on it, so a bad rule is a defect in the type definition.
func (r Rule) mustValid(typ string) {
	if err := r.check(typ); err != nil {
		panic(err)
	}
}
