package section

import (
	"fmt"
	"math"

	"github.com/arloliu/huffpack/endian"
	"github.com/arloliu/huffpack/errs"
)

// Header is the fixed-size prefix of a huffpack container.
//
// It carries everything a decoder needs to rebuild the code tree used by the encoder:
// the number of symbols in the original input and the frequency of every byte value.
//
// Layout (1028 bytes):
//   - TotalSymbols: 4 bytes, offset 0-3
//   - Frequencies: 256 x 4 bytes, offset 4-1027, indexed by byte value
type Header struct {
	// TotalSymbols is the number of bytes in the original input.
	TotalSymbols uint32

	// Frequencies holds the occurrence count of every byte value, zero meaning absent.
	Frequencies [SymbolCount]uint32
}

// NewHeader creates a header for the given frequency table.
//
// TotalSymbols is derived from the table. It returns errs.ErrInputTooLarge if the
// frequencies sum past the range of the 32-bit count field.
func NewHeader(frequencies [SymbolCount]uint32) (*Header, error) {
	var total uint64
	for _, f := range frequencies {
		total += uint64(f)
	}

	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d symbols exceed the header limit", errs.ErrInputTooLarge, total)
	}

	return &Header{
		TotalSymbols: uint32(total),
		Frequencies:  frequencies,
	}, nil
}

// Parse parses the header from the beginning of data using the given engine.
//
// Bytes past HeaderSize are ignored; they belong to the bitstream.
// It returns errs.ErrTruncatedInput if data is shorter than HeaderSize.
func (h *Header) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrTruncatedInput, HeaderSize, len(data))
	}

	h.TotalSymbols = engine.Uint32(data[TotalSymbolsOffset:FrequenciesOffset])

	off := FrequenciesOffset
	for i := range h.Frequencies {
		h.Frequencies[i] = engine.Uint32(data[off : off+FrequencyFieldSize])
		off += FrequencyFieldSize
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes(engine endian.EndianEngine) []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize), engine)
}

// AppendTo appends the serialized header to dst and returns the extended slice.
func (h *Header) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, h.TotalSymbols)
	for _, f := range h.Frequencies {
		dst = engine.AppendUint32(dst, f)
	}

	return dst
}

// Validate checks that the frequencies sum to TotalSymbols.
func (h *Header) Validate() error {
	var sum uint64
	for _, f := range h.Frequencies {
		sum += uint64(f)
	}

	if sum != uint64(h.TotalSymbols) {
		return fmt.Errorf("%w: frequencies sum to %d, header declares %d",
			errs.ErrInconsistentHeader, sum, h.TotalSymbols)
	}

	return nil
}

// DistinctSymbols returns the number of byte values with a nonzero frequency.
func (h *Header) DistinctSymbols() int {
	n := 0
	for _, f := range h.Frequencies {
		if f != 0 {
			n++
		}
	}

	return n
}
