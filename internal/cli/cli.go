// Package cli implements the huffpack command: argument parsing, file handling and
// the statistics report printed after each run.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arloliu/huffpack/errs"
	"github.com/arloliu/huffpack/huffman"
	"github.com/arloliu/huffpack/internal/hash"
	"github.com/arloliu/huffpack/internal/logger"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run executes one huffpack invocation and returns the process exit code.
//
// The report goes to stdout; log lines, usage and errors go to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseArgs(args, stderr)
	if err != nil {
		// flag.ErrHelp and flag parse errors have already printed usage
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(stderr, "huffpack: %v\n\n", err)
			Usage(stderr)
		}

		return ExitUsage
	}

	r := &runner{cfg: cfg, out: stdout, log: logger.New(stderr, cfg.Quiet)}
	if err := r.run(); err != nil {
		r.log.Errorf("%s %s: %v", cfg.Mode, cfg.Input, err)
		return ExitError
	}

	return ExitOK
}

type runner struct {
	cfg Config
	out io.Writer
	log logger.Logger
}

func (r *runner) run() error {
	switch r.cfg.Mode {
	case ModeCompress:
		return r.compress()
	case ModeDecompress:
		return r.decompress()
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrUsage, r.cfg.Mode)
	}
}

func (r *runner) compress() error {
	input, err := readFile(r.cfg.Input)
	if err != nil {
		return err
	}
	r.log.Infof("compressing %s (%d bytes)", r.cfg.Input, len(input))

	enc, err := huffman.NewEncoder(r.cfg.endianOption())
	if err != nil {
		return err
	}

	var summary huffman.Summary
	start := time.Now()
	err = writeFile(r.cfg.Output, func(w io.Writer) error {
		var encErr error
		summary, encErr = enc.EncodeTo(w, input)

		return encErr
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	r.log.Infof("wrote %s", r.cfg.Output)
	report := compressReport{
		input:    r.cfg.Input,
		output:   r.cfg.Output,
		summary:  summary,
		digest:   hash.Digest(input),
		duration: elapsed,
	}
	report.write(r.out)

	if r.cfg.Compare {
		r.log.Infof("comparing codecs on %s", r.cfg.Input)
		return writeComparison(r.out, input)
	}

	return nil
}

func (r *runner) decompress() error {
	f, err := os.Open(r.cfg.Input)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer f.Close()

	dec, err := huffman.NewDecoder(r.cfg.endianOption())
	if err != nil {
		return err
	}

	r.log.Infof("decompressing %s", r.cfg.Input)
	out, err := dec.DecodeFrom(f)
	if err != nil {
		return err
	}

	if err := writeFile(r.cfg.Output, func(w io.Writer) error {
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrIO, err)
		}

		return nil
	}); err != nil {
		return err
	}

	digest, err := digestFile(r.cfg.Output)
	if err != nil {
		return err
	}
	writeDecompressReport(r.out, r.cfg.Input, r.cfg.Output, len(out), digest)

	return nil
}

// digestFile hashes a file as it was written to disk.
func digestFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer f.Close()

	sum, err := hash.DigestReader(f)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	return sum, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	return data, nil
}

// writeFile creates path and hands it to write. The file is closed on every path and
// removed again if write or close fails, so no partial output is left behind.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", errs.ErrIO, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return write(f)
}
