package bitio

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// BitWriter accumulates bits MSB-first and emits each completed byte to the
// underlying writer.
//
// Writing straight into an io.ByteWriter (such as pool.ByteBuffer or bytes.Buffer)
// avoids an intermediate bufio layer; any other io.Writer is buffered and only
// guaranteed to receive its bytes after Flush.
type BitWriter struct {
	w       *bitio.Writer
	written uint64
}

// NewBitWriter creates a BitWriter that emits bytes to out.
func NewBitWriter(out io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(out)}
}

// WriteBit appends a single bit. Only the lowest bit of bit is used.
func (w *BitWriter) WriteBit(bit uint8) error {
	if err := w.w.WriteBool(bit&1 == 1); err != nil {
		return fmt.Errorf("write bit: %w", err)
	}
	w.written++

	return nil
}

// WriteBits appends the lowest n bits of bits, most significant first.
//
// n must not exceed 64.
func (w *BitWriter) WriteBits(bits uint64, n uint8) error {
	if n == 0 {
		return nil
	}

	if err := w.w.WriteBits(bits, n); err != nil {
		return fmt.Errorf("write %d bits: %w", n, err)
	}
	w.written += uint64(n)

	return nil
}

// Flush emits any pending partial byte, zero-padded in its low bits, and returns the
// number of padding bits added. It is a no-op when the writer is byte aligned.
func (w *BitWriter) Flush() (uint8, error) {
	padding := w.Pending()
	if padding != 0 {
		padding = 8 - padding
	}

	// Close aligns the cached byte and flushes the internal buffer, if any. The
	// writer stays usable afterwards.
	if err := w.w.Close(); err != nil {
		return 0, fmt.Errorf("flush bits: %w", err)
	}
	w.written += uint64(padding)

	return padding, nil
}

// BitsWritten returns the number of bits written so far, including flush padding.
func (w *BitWriter) BitsWritten() uint64 {
	return w.written
}

// Pending returns the number of bits waiting in the partial-byte accumulator.
func (w *BitWriter) Pending() uint8 {
	return uint8(w.written % 8)
}
