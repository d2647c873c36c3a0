package format

type CompressionType uint8

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionHuffman CompressionType = 0x5 // CompressionHuffman represents the static Huffman container.
)

// CompressionTypes lists every supported compression type in report order.
func CompressionTypes() []CompressionType {
	return []CompressionType{
		CompressionHuffman,
		CompressionNone,
		CompressionZstd,
		CompressionS2,
		CompressionLZ4,
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionHuffman:
		return "Huffman"
	default:
		return "Unknown"
	}
}
