package huffman

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func deriveFor(t *testing.T, input []byte) (CodeTable, FrequencyTable) {
	t.Helper()

	freq := FrequencyOf(input)
	tree, err := BuildTree(freq)
	require.NoError(t, err)

	return DeriveCodes(tree), freq
}

func TestCode_String(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{code: Code{}, expected: ""},
		{code: Code{Bits: 0, Len: 1}, expected: "0"},
		{code: Code{Bits: 1, Len: 1}, expected: "1"},
		{code: Code{Bits: 0b0110, Len: 4}, expected: "0110"},
		{code: Code{Bits: 0b1, Len: 3}, expected: "001"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.code.String())
		})
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	c01 := Code{Bits: 0b01, Len: 2}
	c011 := Code{Bits: 0b011, Len: 3}
	c10 := Code{Bits: 0b10, Len: 2}

	require.True(t, c01.IsPrefixOf(c011))
	require.True(t, c01.IsPrefixOf(c01))
	require.False(t, c011.IsPrefixOf(c01))
	require.False(t, c10.IsPrefixOf(c011))
}

func TestDeriveCodes_AAABB(t *testing.T) {
	codes, freq := deriveFor(t, []byte("aaabb"))

	a, ok := codes.Lookup('a')
	require.True(t, ok)
	b, ok := codes.Lookup('b')
	require.True(t, ok)

	require.Equal(t, "1", a.String())
	require.Equal(t, "0", b.String())
	require.Equal(t, 2, codes.Len())
	require.Equal(t, uint64(5), codes.EncodedBits(freq))
	require.InDelta(t, 1.0, codes.AverageLength(freq), 1e-9)

	_, ok = codes.Lookup('c')
	require.False(t, ok, "absent symbols have no code")
}

func TestDeriveCodes_SingleSymbol(t *testing.T) {
	codes, freq := deriveFor(t, []byte("AAAA"))

	c, ok := codes.Lookup('A')
	require.True(t, ok)
	require.Equal(t, "0", c.String(), "a lone symbol still needs a one-bit code")
	require.Equal(t, uint64(4), codes.EncodedBits(freq))
}

func TestDeriveCodes_PrefixFree(t *testing.T) {
	for name, input := range sampleInputs() {
		if len(input) == 0 {
			continue
		}

		t.Run(name, func(t *testing.T) {
			codes, freq := deriveFor(t, input)

			require.Equal(t, freq.Distinct(), codes.Len())

			for a, ca := range codes.All() {
				require.NotZero(t, ca.Len)
				for b, cb := range codes.All() {
					if a == b {
						continue
					}
					require.False(t, ca.IsPrefixOf(cb), "%s (%#02x) is a prefix of %s (%#02x)", ca, a, cb, b)
				}
			}
		})
	}
}

func TestDeriveCodes_KraftEquality(t *testing.T) {
	// A strict binary tree uses its code space completely: sum of 2^-len is exactly 1.
	for name, input := range sampleInputs() {
		freq := FrequencyOf(input)
		if freq.Distinct() < 2 {
			continue
		}

		t.Run(name, func(t *testing.T) {
			codes, _ := deriveFor(t, input)

			sum := 0.0
			for _, c := range codes.All() {
				sum += math.Ldexp(1, -int(c.Len))
			}
			require.InDelta(t, 1.0, sum, 1e-12)
		})
	}
}

func TestDeriveCodes_Compactness(t *testing.T) {
	for name, input := range sampleInputs() {
		freq := FrequencyOf(input)
		if freq.Distinct() < 2 {
			continue
		}

		t.Run(name, func(t *testing.T) {
			codes, freq := deriveFor(t, input)
			require.LessOrEqual(t, codes.EncodedBits(freq), uint64(len(input))*8)
		})
	}
}

func TestDeriveCodes_AllByteValuesUseEightBits(t *testing.T) {
	input := make([]byte, 0, 256)
	for i := range 256 {
		input = append(input, byte(i))
	}

	codes, freq := deriveFor(t, input)

	for sym, c := range codes.All() {
		require.Equal(t, uint8(8), c.Len, "symbol %#02x", sym)
	}
	require.InDelta(t, 8.0, codes.AverageLength(freq), 1e-9)
}

func TestCodeTable_AverageLengthEmpty(t *testing.T) {
	var codes CodeTable
	require.Zero(t, codes.AverageLength(FrequencyTable{}))
}
