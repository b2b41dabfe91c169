package sink

import (
	"io"

	"github.com/wippyai/gpu-layout/errors"
)

// Buffer is a fixed-capacity io.Writer. Writes past capacity copy what fits
// and fail with a short_buffer error wrapping io.ErrShortWrite.
type Buffer struct {
	buf []byte
	n   int
}

// NewBuffer allocates a zeroed buffer of the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, capacity)}
}

// NewBufferOver writes into b, starting at its first byte. b is not
// resized.
func NewBufferOver(b []byte) *Buffer {
	return &Buffer{buf: b}
}

func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.buf[b.n:], p)
	b.n += n
	if n < len(p) {
		return n, errors.ShortBuffer(errors.PhaseWrite, len(p), n, io.ErrShortWrite)
	}
	return n, nil
}

// Bytes returns the written prefix. It aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

func (b *Buffer) Len() int {
	return b.n
}

func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Available returns the number of bytes that still fit.
func (b *Buffer) Available() int {
	return len(b.buf) - b.n
}

// Reset rewinds the buffer without clearing it.
func (b *Buffer) Reset() {
	b.n = 0
}
