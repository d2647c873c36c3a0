package bitio

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/icza/bitio"
)

// BitReader unpacks bytes into bits, MSB-first.
//
// The sequence is finite: it ends when the underlying reader is exhausted. It can only
// be restarted by creating a new BitReader over a fresh reader.
type BitReader struct {
	r    *bitio.Reader
	read uint64
	err  error
}

// NewBitReader creates a BitReader over in.
func NewBitReader(in io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(in)}
}

// ReadBit returns the next bit as 0 or 1.
//
// It returns io.EOF once every input byte has been consumed.
func (r *BitReader) ReadBit() (uint8, error) {
	b, err := r.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}

		return 0, fmt.Errorf("read bit: %w", err)
	}
	r.read++

	if b {
		return 1, nil
	}

	return 0, nil
}

// All returns the remaining bits as a lazy sequence.
//
// Bits are pulled from the input only as the consumer iterates, so breaking out of
// the loop leaves the rest of the input unread. A read failure other than io.EOF
// ends the sequence and is reported by Err.
func (r *BitReader) All() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for {
			bit, err := r.ReadBit()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					r.err = err
				}

				return
			}

			if !yield(bit) {
				return
			}
		}
	}
}

// Err returns the first non-EOF error that terminated All, if any.
func (r *BitReader) Err() error {
	return r.err
}

// BitsRead returns the number of bits consumed so far.
func (r *BitReader) BitsRead() uint64 {
	return r.read
}
