package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		expected string
	}{
		{name: "none compression", cType: CompressionNone, expected: "None"},
		{name: "zstd compression", cType: CompressionZstd, expected: "Zstd"},
		{name: "s2 compression", cType: CompressionS2, expected: "S2"},
		{name: "lz4 compression", cType: CompressionLZ4, expected: "LZ4"},
		{name: "huffman compression", cType: CompressionHuffman, expected: "Huffman"},
		{name: "unknown compression", cType: CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCompressionTypes(t *testing.T) {
	types := CompressionTypes()

	require.Len(t, types, 5)
	require.Equal(t, CompressionHuffman, types[0], "huffman leads the report")

	seen := make(map[CompressionType]bool)
	for _, ct := range types {
		require.NotEqual(t, "Unknown", ct.String())
		require.False(t, seen[ct], "duplicate type %s", ct)
		seen[ct] = true
	}
}
