package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/arloliu/huffpack/huffman"
)

// Mode selects the direction of a run.
type Mode uint8

const (
	ModeCompress Mode = iota + 1
	ModeDecompress
)

func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "compress"
	case ModeDecompress:
		return "decompress"
	default:
		return "unknown"
	}
}

// Config is the validated command line of one huffpack invocation.
type Config struct {
	Mode   Mode
	Input  string
	Output string

	// Compare adds a size table of every registered codec to the compress report.
	Compare bool

	// Quiet suppresses informational log lines; the report and errors are still written.
	Quiet bool

	// BigEndian writes or expects big-endian header fields.
	BigEndian bool
}

// ErrUsage reports a command line that does not name exactly one mode and two files.
var ErrUsage = errors.New("invalid arguments")

const usageText = `Usage:
  Compress:   huffpack [flags] -c input.txt output.huff
  Decompress: huffpack [flags] -d output.huff restored.txt

Flags:
`

type flagValues struct {
	cfg        Config
	compress   bool
	decompress bool
}

func newFlagSet(v *flagValues, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprint(errOut, usageText)
		fs.PrintDefaults()
	}
	fs.BoolVar(&v.compress, "c", false, "compress input into output")
	fs.BoolVar(&v.decompress, "d", false, "decompress input into output")
	fs.BoolVar(&v.cfg.Compare, "compare", false, "after compressing, compare against zstd, s2 and lz4")
	fs.BoolVar(&v.cfg.Quiet, "quiet", false, "suppress informational messages")
	fs.BoolVar(&v.cfg.BigEndian, "big-endian", false, "use big-endian container header fields")

	return fs
}

// Usage writes the command synopsis and flag list to w.
func Usage(w io.Writer) {
	newFlagSet(&flagValues{}, w).Usage()
}

// ParseArgs parses args (without the program name) into a Config. Flag parsing
// diagnostics go to errOut.
func ParseArgs(args []string, errOut io.Writer) (Config, error) {
	var v flagValues

	fs := newFlagSet(&v, errOut)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := v.cfg
	switch {
	case v.compress && v.decompress:
		return Config{}, fmt.Errorf("%w: -c and -d are mutually exclusive", ErrUsage)
	case v.compress:
		cfg.Mode = ModeCompress
	case v.decompress:
		cfg.Mode = ModeDecompress
	default:
		return Config{}, fmt.Errorf("%w: one of -c or -d is required", ErrUsage)
	}

	if fs.NArg() != 2 {
		return Config{}, fmt.Errorf("%w: expected input and output paths, got %d arguments", ErrUsage, fs.NArg())
	}
	cfg.Input, cfg.Output = fs.Arg(0), fs.Arg(1)

	if cfg.Compare && cfg.Mode != ModeCompress {
		return Config{}, fmt.Errorf("%w: -compare only applies to -c", ErrUsage)
	}

	return cfg, nil
}

func (c Config) endianOption() huffman.Option {
	if c.BigEndian {
		return huffman.WithBigEndian()
	}

	return huffman.WithLittleEndian()
}
