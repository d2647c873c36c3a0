// Package bitio packs single bits into bytes and unpacks them again.
//
// Bits are ordered most-significant-bit first within each byte. A BitWriter owns its
// partial-byte accumulator, so independent encodes never share state. A BitReader
// exposes the bits of its input as a lazy, finite sequence.
//
// Both types are thin wrappers around github.com/icza/bitio that add bit accounting
// and the 0/1 value interface used by the Huffman coder.
package bitio
