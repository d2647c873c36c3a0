package huffman

import (
	"iter"

	"github.com/arloliu/huffpack/section"
)

// FrequencyTable maps every byte value to its occurrence count, zero meaning absent.
type FrequencyTable [section.SymbolCount]uint32

// FrequencyOf counts the occurrences of every byte value in data.
//
// Counts wrap past math.MaxUint32; Encoder rejects such inputs with
// errs.ErrInputTooLarge before counting.
func FrequencyOf(data []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range data {
		freq[b]++
	}

	return freq
}

// Total returns the sum of all frequencies.
func (f *FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range f {
		total += uint64(n)
	}

	return total
}

// Distinct returns the number of symbols with a nonzero frequency.
func (f *FrequencyTable) Distinct() int {
	n := 0
	for _, c := range f {
		if c != 0 {
			n++
		}
	}

	return n
}

// Symbols yields every symbol with a nonzero frequency in ascending byte order.
func (f *FrequencyTable) Symbols() iter.Seq2[byte, uint32] {
	return func(yield func(byte, uint32) bool) {
		for i, c := range f {
			if c == 0 {
				continue
			}
			if !yield(byte(i), c) {
				return
			}
		}
	}
}
