// Package compress puts the huffpack container behind a common Codec interface,
// next to the general-purpose codecs it is compared against.
//
// # Supported Algorithms
//
//   - Huffman (format.CompressionHuffman): the static Huffman container of package huffman
//   - None: returns data unchanged, the baseline of every comparison
//   - Zstd: github.com/klauspost/compress/zstd
//   - S2: github.com/klauspost/compress/s2
//   - LZ4: github.com/pierrec/lz4/v4 block format
//
// All codecs map empty input to nil.
//
// # Comparing codecs
//
// Measure runs a full round trip and reports sizes and timings:
//
//	for _, ct := range format.CompressionTypes() {
//	    stats, err := compress.Measure(ct, data)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%-8s %8d bytes %6.2f%% saved\n", ct, stats.CompressedSize, stats.SpaceSavings())
//	}
//
// # Thread Safety
//
// All codec implementations are stateless or pool their internal state and can be
// shared across goroutines.
package compress
