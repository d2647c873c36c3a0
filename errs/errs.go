// Package errs defines the sentinel errors reported by huffpack.
//
// Every failure surfaced by the codec wraps exactly one of these values, so callers
// can branch on the kind of failure with errors.Is:
//
//	out, err := huffpack.Decompress(data)
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    // container was cut short
//	}
package errs

import "errors"

var (
	// ErrIO indicates that an input could not be read or an output could not be written.
	ErrIO = errors.New("i/o error")

	// ErrTruncatedInput indicates a container shorter than its header, or a bitstream
	// that ran out before the declared number of symbols was decoded.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrEmptyAlphabet indicates a frequency table in which every entry is zero.
	ErrEmptyAlphabet = errors.New("empty alphabet: all symbol frequencies are zero")

	// ErrInputTooLarge indicates an input whose length does not fit the 32-bit symbol count.
	ErrInputTooLarge = errors.New("input too large")

	// ErrInconsistentHeader indicates a header whose frequencies do not sum to its symbol count.
	ErrInconsistentHeader = errors.New("inconsistent container header")
)
