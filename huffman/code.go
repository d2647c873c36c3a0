package huffman

import (
	"iter"
	"strings"

	"github.com/arloliu/huffpack/section"
)

// Code is the root-to-leaf path of a symbol: 0 for a left step, 1 for a right step.
//
// The path occupies the low Len bits of Bits, the step taken at the root being the
// most significant of them.
type Code struct {
	Bits uint64
	Len  uint8
}

// Bit returns step i of the path, counting from the root.
func (c Code) Bit(i int) uint8 {
	return uint8(c.Bits>>(int(c.Len)-1-i)) & 1
}

// IsPrefixOf reports whether c is a prefix of other. A code is a prefix of itself.
func (c Code) IsPrefixOf(other Code) bool {
	if c.Len > other.Len {
		return false
	}

	return other.Bits>>(other.Len-c.Len) == c.Bits
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := range int(c.Len) {
		sb.WriteByte('0' + c.Bit(i))
	}

	return sb.String()
}

// CodeTable maps symbols to their codes. Only symbols present in the tree it was
// derived from have a code.
type CodeTable struct {
	codes [section.SymbolCount]Code
}

// DeriveCodes walks t depth-first and records the path to every leaf.
//
// When the root is itself a leaf the path is empty, which would make every occurrence
// of the symbol invisible in the bitstream; that symbol gets the one-bit code "0"
// instead, so N repetitions encode to N bits.
func DeriveCodes(t *Tree) CodeTable {
	var table CodeTable

	if sym, ok := t.SingleSymbol(); ok {
		table.codes[sym] = Code{Bits: 0, Len: 1}
		return table
	}

	type frame struct {
		idx  int32
		code Code
	}

	stack := make([]frame, 0, maxTreeDepth+1)
	stack = append(stack, frame{idx: t.root})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.idx]
		if n.isLeaf() {
			table.codes[n.symbol] = f.code
			continue
		}

		stack = append(stack,
			frame{idx: n.right, code: Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}},
			frame{idx: n.left, code: Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}},
		)
	}

	return table
}

// Lookup returns the code for sym and whether sym has one.
func (ct *CodeTable) Lookup(sym byte) (Code, bool) {
	c := ct.codes[sym]
	return c, c.Len != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	n := 0
	for _, c := range ct.codes {
		if c.Len != 0 {
			n++
		}
	}

	return n
}

// All yields every symbol that has a code, in ascending byte order.
func (ct *CodeTable) All() iter.Seq2[byte, Code] {
	return func(yield func(byte, Code) bool) {
		for i, c := range ct.codes {
			if c.Len == 0 {
				continue
			}
			if !yield(byte(i), c) {
				return
			}
		}
	}
}

// EncodedBits returns the bitstream length, before padding, of an input with the
// given frequencies.
func (ct *CodeTable) EncodedBits(freq FrequencyTable) uint64 {
	var total uint64
	for sym, f := range freq.Symbols() {
		total += uint64(f) * uint64(ct.codes[sym].Len)
	}

	return total
}

// AverageLength returns the frequency-weighted mean code length in bits per symbol.
func (ct *CodeTable) AverageLength(freq FrequencyTable) float64 {
	total := freq.Total()
	if total == 0 {
		return 0
	}

	return float64(ct.EncodedBits(freq)) / float64(total)
}
