// Package huffman implements the static Huffman codec behind the huffpack container.
//
// # Encoding
//
// Encoder counts the byte frequencies of its input, builds a Huffman tree from them,
// derives one prefix-free code per present byte and writes
//
//	header (symbol count + 256 frequencies) | codes of every input byte, MSB-first
//
// The final byte of the bitstream is zero-padded; the decoder never reads padding as
// data because it stops after the declared number of symbols.
//
// # Decoding
//
// Decoder rebuilds the same tree from the stored frequencies and walks it one bit at a
// time: 0 moves left, 1 moves right, a leaf emits its symbol and restarts at the root.
//
//	enc, _ := huffman.NewEncoder()
//	container, err := enc.Encode(data)
//
//	dec, _ := huffman.NewDecoder()
//	restored, err := dec.Decode(container)
//
// # Building blocks
//
// FrequencyOf, BuildTree and DeriveCodes are exported for callers that want to report
// on a code without producing a container, for example the average code length:
//
//	freq := huffman.FrequencyOf(data)
//	tree, err := huffman.BuildTree(freq)
//	codes := huffman.DeriveCodes(tree)
//	fmt.Printf("%.3f bits/symbol\n", codes.AverageLength(freq))
//
// An input made of a single repeated byte is encoded with a one-bit code, so it still
// round-trips; an all-zero frequency table is rejected with errs.ErrEmptyAlphabet.
package huffman
