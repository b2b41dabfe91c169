package layout

import "github.com/wippyai/gpu-layout/internal/align"

// Sizer replays a write sequence without a sink. After the same sequence,
// Sizer.Len equals Writer.Len.
type Sizer struct {
	offset int
	std    Standard
}

func NewSizer(std Standard) *Sizer {
	return &Sizer{std: std}
}

func (s *Sizer) Standard() Standard {
	return s.std
}

// Write accounts for v and returns the offset v would be written at.
func (s *Sizer) Write(v Value) int {
	return s.WriteRule(v.Rule(s.std))
}

// WriteRule accounts for a value with rule r and returns its offset.
func (s *Sizer) WriteRule(r Rule) int {
	r.mustValid("value")
	s.offset += align.Padding(s.offset, r.Align)
	at := s.offset
	s.offset += int(r.Size)
	return at
}

func (s *Sizer) Len() int {
	return s.offset
}
