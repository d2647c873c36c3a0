package compress

import (
	"github.com/arloliu/huffpack/huffman"
)

// HuffmanCompressor adapts the huffman package to the Codec interface.
//
// Unlike huffman.Encoder, which always emits at least a header, it follows the Codec
// convention of mapping empty input to nil in both directions. Containers use the
// default little-endian header.
type HuffmanCompressor struct {
	enc *huffman.Encoder
	dec *huffman.Decoder
}

var _ Codec = (*HuffmanCompressor)(nil)

// NewHuffmanCompressor creates a new static Huffman codec.
func NewHuffmanCompressor() HuffmanCompressor {
	// default options cannot fail
	enc, _ := huffman.NewEncoder()
	dec, _ := huffman.NewDecoder()

	return HuffmanCompressor{enc: enc, dec: dec}
}

// Compress encodes data into a huffpack container.
func (c HuffmanCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.enc.Encode(data)
}

// Decompress restores the original data from a huffpack container.
func (c HuffmanCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.dec.Decode(data)
}
