package layout

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/gpu-layout/errors"
	"github.com/wippyai/gpu-layout/internal/align"
)

// Writer streams layout-ready values into a byte sink, inserting zero bytes
// before each value so it starts on its alignment boundary.
//
// A Writer is not safe for concurrent use. After Write returns an error the
// Writer must be discarded; Len still reports the bytes the sink accepted.
type Writer struct {
	w      io.Writer
	buf    []byte
	offset int
	std    Standard
}

func NewWriter(std Standard, w io.Writer) *Writer {
	return &Writer{w: w, std: std}
}

func (w *Writer) Standard() Standard {
	return w.std
}

// Write emits alignment padding followed by the padded bytes of v in a
// single call to the sink. Sink errors are returned with the sink error as
// Cause; a short write without an error is reported as io.ErrShortWrite.
func (w *Writer) Write(v Value) error {
	rule := v.Rule(w.std)
	rule.mustValid(typeName(v))

	pad := align.Padding(w.offset, rule.Align)
	w.buf = AppendZeros(w.buf[:0], pad)
	w.buf = v.AppendPadded(w.buf, w.std)
	if got := len(w.buf) - pad; got != int(rule.Size) {
		panic(errors.LayoutViolation(typeName(v), "padded value is %d bytes, rule says %d", got, rule.Size))
	}

	start := w.offset
	n, err := w.w.Write(w.buf)
	w.offset += n
	if err == nil && n < len(w.buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		Logger().Warn("sink write failed",
			zap.Stringer("std", w.std),
			zap.Int("offset", start),
			zap.Int("written", n),
			zap.Int("want", len(w.buf)),
			zap.Error(err))
		return errors.SinkFailure(start, err)
	}

	if ce := Logger().Check(zap.DebugLevel, "wrote value"); ce != nil {
		ce.Write(
			zap.Stringer("std", w.std),
			zap.String("type", typeName(v)),
			zap.Int("offset", start+pad),
			zap.Int("padding", pad),
			zap.Uint32("size", rule.Size))
	}
	return nil
}

// WriteAll writes values in order and stops at the first error.
func (w *Writer) WriteAll(values ...Value) error {
	for _, v := range values {
		if err := w.Write(v); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of bytes emitted so far.
func (w *Writer) Len() int {
	return w.offset
}
