// Package huffpack is a lossless byte compressor based on static Huffman coding.
//
// Compression counts how often each byte value occurs, builds a prefix-free code from
// those counts and writes a self-describing container: the 32-bit symbol count, the
// full 256-entry frequency table and the packed code bits. Decompression rebuilds the
// identical tree from the stored table and walks it bit by bit until every symbol is
// restored.
//
// # Basic Usage
//
//	container, err := huffpack.Compress(data)
//	if err != nil {
//	    return err
//	}
//
//	restored, err := huffpack.Decompress(container)
//	if err != nil {
//	    return err
//	}
//
// # Container Layout
//
//	offset 0     total symbol count   uint32
//	offset 4     frequency table      256 x uint32
//	offset 1028  bitstream            MSB-first, zero-padded to a byte
//
// Header fields are little-endian unless the encoder and decoder are both created
// with huffman.WithBigEndian. The container does not record its byte order.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the huffman package,
// simplifying the most common use cases. For stream helpers, encode summaries and
// access to the tree and code table, use the huffman package directly.
//
// Errors from compressing and decompressing wrap one of the sentinels in package errs.
package huffpack

import (
	"github.com/arloliu/huffpack/huffman"
)

var (
	defaultEncoder = mustEncoder()
	defaultDecoder = mustDecoder()
)

// Compress compresses input into a new container with little-endian header fields.
//
// Empty input produces a 1028-byte header-only container.
// It returns errs.ErrInputTooLarge if input is longer than math.MaxUint32 bytes.
func Compress(input []byte) ([]byte, error) {
	return defaultEncoder.Encode(input)
}

// Decompress restores the bytes held by a container produced by Compress.
//
// It returns errs.ErrTruncatedInput for containers cut short and
// errs.ErrInconsistentHeader for a frequency table that disagrees with its symbol count.
func Decompress(container []byte) ([]byte, error) {
	return defaultDecoder.Decode(container)
}

// FrequencyOf counts the occurrences of every byte value in input.
func FrequencyOf(input []byte) huffman.FrequencyTable {
	return huffman.FrequencyOf(input)
}

// NewEncoder creates a configured encoder.
//
// Example:
//
//	enc, err := huffpack.NewEncoder(huffman.WithBigEndian())
func NewEncoder(opts ...huffman.Option) (*huffman.Encoder, error) {
	return huffman.NewEncoder(opts...)
}

// NewDecoder creates a configured decoder. Its endianness must match the encoder's.
func NewDecoder(opts ...huffman.Option) (*huffman.Decoder, error) {
	return huffman.NewDecoder(opts...)
}

func mustEncoder() *huffman.Encoder {
	enc, err := huffman.NewEncoder()
	if err != nil {
		panic(err)
	}

	return enc
}

func mustDecoder() *huffman.Decoder {
	dec, err := huffman.NewDecoder()
	if err != nil {
		panic(err)
	}

	return dec
}
