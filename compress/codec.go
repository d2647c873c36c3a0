package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/huffpack/format"
)

// Compressor compresses a complete in-memory payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller, except for the
//     no-op codec which returns its input
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by another algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression run.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values below 1.0 mean the data shrank. It returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Negative values mean the output is larger than the input.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the codec registered for compressionType, decompresses
// the result and reports sizes and timings.
//
// It returns an error if either direction fails or the round trip does not
// reproduce data.
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}
	compressTime := time.Since(start)

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s decompression failed: %w", compressionType, err)
	}
	decompressTime := time.Since(start)

	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%s round trip did not reproduce the input (%d bytes restored, want %d)",
			compressionType, len(restored), len(data))
	}

	return CompressionStats{
		Algorithm:           compressionType,
		OriginalSize:        int64(len(data)),
		CompressedSize:      int64(len(compressed)),
		CompressionTimeNs:   compressTime.Nanoseconds(),
		DecompressionTimeNs: decompressTime.Nanoseconds(),
	}, nil
}

// CreateCodec creates a new Codec for compressionType. target names the caller's use of
// the codec in the error returned for an unknown type.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionHuffman:
		return NewHuffmanCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:    NewNoOpCompressor(),
	format.CompressionZstd:    NewZstdCompressor(),
	format.CompressionS2:      NewS2Compressor(),
	format.CompressionLZ4:     NewLZ4Compressor(),
	format.CompressionHuffman: NewHuffmanCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
