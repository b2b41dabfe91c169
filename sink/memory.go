package sink

import (
	"io"

	gpulayout "github.com/wippyai/gpu-layout"
	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/internal/align"
)

// MemoryWriter streams writes into a Memory starting at a base offset.
type MemoryWriter struct {
	mem     gpulayout.Memory
	base    uint32
	off     uint32
	limit   uint32
	bounded bool
}

// NewMemoryWriter writes to mem from base onward. When mem is a
// gpulayout.MemorySizer, writes past its current size fail before reaching
// mem; otherwise bounds are enforced by mem itself.
func NewMemoryWriter(mem gpulayout.Memory, base uint32) *MemoryWriter {
	return &MemoryWriter{mem: mem, base: base}
}

// Alloc reserves size bytes at the given alignment and returns a writer
// confined to that region.
func Alloc(mem gpulayout.Memory, alloc gpulayout.Allocator, size, alignment uint32) (*MemoryWriter, error) {
	if !align.IsPow2(alignment) {
		return nil, errors.New(errors.PhaseSink, errors.KindInvalidInput).
			Detail("alignment %d is not a power of two", alignment).
			Build()
	}
	ptr, err := alloc.Alloc(size, alignment)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSink, errors.KindSinkFailure, err, "allocation failed")
	}
	if ptr%alignment != 0 {
		return nil, errors.New(errors.PhaseSink, errors.KindInvalidData).
			Value(ptr).
			Detail("allocator returned %d, not aligned to %d", ptr, alignment).
			Build()
	}
	return &MemoryWriter{mem: mem, base: ptr, limit: size, bounded: true}, nil
}

func (w *MemoryWriter) Write(p []byte) (int, error) {
	n := uint32(len(p))
	end, ok := align.SafeAddU32(w.off, n)
	if !ok || (w.bounded && end > w.limit) {
		return 0, errors.OutOfBounds(errors.PhaseSink, w.base+w.off, n)
	}
	addr, ok := align.SafeAddU32(w.base, w.off)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseSink, w.base, w.off)
	}
	if err := checkSize(w.mem, addr, n); err != nil {
		return 0, err
	}
	if err := w.mem.Write(addr, p); err != nil {
		return 0, err
	}
	w.off = end
	return len(p), nil
}

// Base returns the offset of the first byte written.
func (w *MemoryWriter) Base() uint32 {
	return w.base
}

// Offset returns the memory offset of the next byte to be written.
func (w *MemoryWriter) Offset() uint32 {
	return w.base + w.off
}

func (w *MemoryWriter) Len() int {
	return int(w.off)
}

// checkSize rejects [addr, addr+n) when mem reports a smaller size. Sizes are
// read per call since linear memory can grow.
func checkSize(mem gpulayout.Memory, addr, n uint32) error {
	sized, ok := mem.(gpulayout.MemorySizer)
	if !ok {
		return nil
	}
	end, ok := align.SafeAddU32(addr, n)
	if !ok || end > sized.Size() {
		return errors.OutOfBounds(errors.PhaseSink, addr, n)
	}
	return nil
}

// MemoryReader streams reads from a Memory starting at a base offset, up to
// a fixed length.
type MemoryReader struct {
	mem  gpulayout.Memory
	base uint32
	off  uint32
	size uint32
}

func NewMemoryReader(mem gpulayout.Memory, base, size uint32) *MemoryReader {
	return &MemoryReader{mem: mem, base: base, size: size}
}

func (r *MemoryReader) Read(p []byte) (int, error) {
	if r.off >= r.size {
		return 0, io.EOF
	}
	n := min(uint32(len(p)), r.size-r.off)
	if err := checkSize(r.mem, r.base+r.off, n); err != nil {
		return 0, err
	}
	data, err := r.mem.Read(r.base+r.off, n)
	if err != nil {
		return 0, err
	}
	copy(p, data)
	r.off += n
	return int(n), nil
}
