// Package section defines the binary header of a huffpack container.
//
// A container is a fixed 1028-byte header followed by the Huffman-coded bitstream:
//
//	| Offset | Field        | Type            |
//	|--------|--------------|-----------------|
//	| 0      | TotalSymbols | uint32          |
//	| 4      | Frequencies  | 256 x uint32    |
//	| 1028   | bitstream    | MSB-first bits  |
//
// The header is written and read with an endian.EndianEngine chosen by the caller;
// the container itself does not record which one was used.
package section
