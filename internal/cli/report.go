package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/arloliu/huffpack/compress"
	"github.com/arloliu/huffpack/format"
	"github.com/arloliu/huffpack/huffman"
	"github.com/arloliu/huffpack/internal/hash"
)

const rule = "-----------------------------------"

type compressReport struct {
	input    string
	output   string
	summary  huffman.Summary
	digest   uint64
	duration time.Duration
}

func (r compressReport) stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:         format.CompressionHuffman,
		OriginalSize:      int64(r.summary.TotalSymbols),
		CompressedSize:    int64(r.summary.ContainerSize),
		CompressionTimeNs: r.duration.Nanoseconds(),
	}
}

func (r compressReport) write(w io.Writer) {
	stats := r.stats()

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Compressed %s -> %s\n", r.input, r.output)
	fmt.Fprintf(w, "Original Size:    %d bytes\n", stats.OriginalSize)
	fmt.Fprintf(w, "Compressed Size:  %d bytes\n", stats.CompressedSize)
	if stats.OriginalSize > 0 {
		fmt.Fprintf(w, "Space Saved:      %.2f%%\n", stats.SpaceSavings())
	} else {
		fmt.Fprintln(w, "Space Saved:      n/a (empty input)")
	}
	fmt.Fprintf(w, "Distinct Symbols: %d\n", r.summary.DistinctSymbols)
	fmt.Fprintf(w, "Average Code:     %.3f bits/symbol\n", r.summary.AverageCodeLength)
	fmt.Fprintf(w, "Body:             %d bits + %d padding\n", r.summary.BodyBits, r.summary.PaddingBits)
	fmt.Fprintf(w, "Input Digest:     %s\n", hash.Format(r.digest))
	fmt.Fprintln(w, rule)
}

func writeDecompressReport(w io.Writer, input, output string, size int, digest uint64) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Decompressed %s -> %s\n", input, output)
	fmt.Fprintf(w, "Restored Size:    %d bytes\n", size)
	fmt.Fprintf(w, "Output Digest:    %s\n", hash.Format(digest))
	fmt.Fprintln(w, rule)
}

// writeComparison compresses data with every registered codec and prints one row each.
func writeComparison(w io.Writer, data []byte) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Codec\tSize\tRatio\tSaved\tCompress\tDecompress\t")

	for _, ct := range format.CompressionTypes() {
		stats, err := compress.Measure(ct, data)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.2f%%\t%s\t%s\t\n",
			ct,
			stats.CompressedSize,
			stats.CompressionRatio(),
			stats.SpaceSavings(),
			time.Duration(stats.CompressionTimeNs).Round(time.Microsecond),
			time.Duration(stats.DecompressionTimeNs).Round(time.Microsecond),
		)
	}

	return tw.Flush()
}
