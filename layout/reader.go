package layout

import (
	"fmt"
	"io"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/internal/align"
)

// Reader consumes a buffer produced by a Writer, skipping the same
// alignment padding. It is not safe for concurrent use.
type Reader struct {
	r      io.Reader
	buf    []byte
	offset int
	std    Standard
}

func NewReader(std Standard, r io.Reader) *Reader {
	return &Reader{r: r, std: std}
}

func (r *Reader) Standard() Standard {
	return r.std
}

// Read skips padding up to v's alignment and decodes its padded bytes.
func (r *Reader) Read(v Decodable) error {
	rule := v.Rule(r.std)
	rule.mustValid(typeName(v))

	pad := align.Padding(r.offset, rule.Align)
	need := pad + int(rule.Size)
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	buf := r.buf[:need]

	n, err := io.ReadFull(r.r, buf)
	r.offset += n
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return errors.ShortBuffer(errors.PhaseRead, need, n, io.ErrUnexpectedEOF)
	case err != nil:
		return errors.Wrap(errors.PhaseRead, errors.KindSinkFailure, err,
			fmt.Sprintf("source failed after %d of %d bytes at offset %d", n, need, r.offset))
	}

	v.DecodePadded(buf[pad:], r.std)
	return nil
}

// Len returns the number of bytes consumed so far.
func (r *Reader) Len() int {
	return r.offset
}
