package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/huffpack/errs"
	"github.com/arloliu/huffpack/internal/bitio"
	"github.com/arloliu/huffpack/internal/pool"
	"github.com/arloliu/huffpack/section"
)

// Summary describes one encoded container.
type Summary struct {
	// TotalSymbols is the number of input bytes.
	TotalSymbols uint32

	// DistinctSymbols is the number of byte values present in the input.
	DistinctSymbols int

	// BodyBits is the number of code bits in the bitstream, excluding padding.
	BodyBits uint64

	// PaddingBits is the number of zero bits appended to reach a byte boundary.
	PaddingBits uint8

	// ContainerSize is the size of the container in bytes, header included.
	ContainerSize int

	// AverageCodeLength is the frequency-weighted mean code length in bits.
	AverageCodeLength float64
}

// Encoder turns raw bytes into huffpack containers.
//
// An Encoder holds only its configuration; every call builds its own tree, code table
// and bit writer, so one Encoder may be used from several goroutines.
type Encoder struct {
	cfg Config
}

// NewEncoder creates an Encoder. Without options, header fields are little-endian.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure encoder: %w", err)
	}

	return &Encoder{cfg: cfg}, nil
}

// Encode compresses input into a new container.
//
// Empty input produces a header-only container with TotalSymbols = 0.
// It returns errs.ErrInputTooLarge if input is longer than math.MaxUint32 bytes.
func (e *Encoder) Encode(input []byte) ([]byte, error) {
	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)

	if _, err := e.encode(buf, input); err != nil {
		return nil, err
	}

	return bytes.Clone(buf.Bytes()), nil
}

// EncodeTo compresses input and writes the container to w.
//
// A failed write is reported as errs.ErrIO.
func (e *Encoder) EncodeTo(w io.Writer, input []byte) (Summary, error) {
	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)

	summary, err := e.encode(buf, input)
	if err != nil {
		return Summary{}, err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return Summary{}, fmt.Errorf("%w: write container: %w", errs.ErrIO, err)
	}

	return summary, nil
}

func (e *Encoder) encode(buf *pool.ByteBuffer, input []byte) (Summary, error) {
	if uint64(len(input)) > math.MaxUint32 {
		return Summary{}, fmt.Errorf("%w: %d bytes exceed the 32-bit symbol count", errs.ErrInputTooLarge, len(input))
	}

	freq := FrequencyOf(input)

	header, err := section.NewHeader(freq)
	if err != nil {
		return Summary{}, err
	}

	buf.Grow(section.HeaderSize)
	buf.B = header.AppendTo(buf.B, e.cfg.engine)

	summary := Summary{
		TotalSymbols:    header.TotalSymbols,
		DistinctSymbols: freq.Distinct(),
	}

	if header.TotalSymbols == 0 {
		summary.ContainerSize = buf.Len()
		return summary, nil
	}

	tree, err := BuildTree(freq)
	if err != nil {
		return Summary{}, err
	}
	codes := DeriveCodes(tree)

	summary.BodyBits = codes.EncodedBits(freq)
	summary.AverageCodeLength = codes.AverageLength(freq)
	buf.Grow(int((summary.BodyBits + 7) / 8)) //nolint: gosec

	bw := bitio.NewBitWriter(buf)
	for _, sym := range input {
		c := codes.codes[sym]
		if err := bw.WriteBits(c.Bits, c.Len); err != nil {
			return Summary{}, fmt.Errorf("encode symbol %#02x: %w", sym, err)
		}
	}

	summary.PaddingBits, err = bw.Flush()
	if err != nil {
		return Summary{}, err
	}
	summary.ContainerSize = buf.Len()

	return summary, nil
}
