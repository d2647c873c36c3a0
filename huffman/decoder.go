package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/huffpack/endian"
	"github.com/arloliu/huffpack/errs"
	"github.com/arloliu/huffpack/internal/bitio"
	"github.com/arloliu/huffpack/section"
)

// decodeState is a step of the container decode state machine.
type decodeState uint8

const (
	stateAwaitHeader decodeState = iota
	stateAwaitTree
	stateDecoding
	stateDone
)

func (s decodeState) String() string {
	switch s {
	case stateAwaitHeader:
		return "AwaitHeader"
	case stateAwaitTree:
		return "AwaitTree"
	case stateDecoding:
		return "Decoding"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Decoder restores the original bytes from huffpack containers.
//
// Like Encoder, a Decoder holds only configuration and is safe for concurrent use.
type Decoder struct {
	cfg Config
}

// NewDecoder creates a Decoder. The endianness option must match the one the
// container was encoded with.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure decoder: %w", err)
	}

	return &Decoder{cfg: cfg}, nil
}

// Decode restores the original input from container.
//
// It returns errs.ErrTruncatedInput if the container is shorter than its header or
// the bitstream ends before every declared symbol is decoded, and
// errs.ErrInconsistentHeader if the frequencies do not sum to the symbol count.
// Padding and any bytes after the last symbol are ignored.
func (d *Decoder) Decode(container []byte) ([]byte, error) {
	run := decodeRun{engine: d.cfg.engine, data: container}

	for run.state != stateDone {
		var err error
		switch run.state {
		case stateAwaitHeader:
			err = run.readHeader()
		case stateAwaitTree:
			err = run.rebuildTree()
		case stateDecoding:
			err = run.decodeBody()
		case stateDone:
		}

		if err != nil {
			return nil, err
		}
	}

	return run.out, nil
}

// DecodeFrom reads a whole container from r and decodes it.
//
// A failed read is reported as errs.ErrIO.
func (d *Decoder) DecodeFrom(r io.Reader) ([]byte, error) {
	container, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read container: %w", errs.ErrIO, err)
	}

	return d.Decode(container)
}

// decodeRun carries the state of a single Decode call.
type decodeRun struct {
	engine endian.EndianEngine
	data   []byte
	state  decodeState

	header  section.Header
	tree    *Tree
	cursor  int32
	decoded uint32
	out     []byte
}

func (r *decodeRun) readHeader() error {
	if err := r.header.Parse(r.data, r.engine); err != nil {
		return fmt.Errorf("decode header: %w", err)
	}

	if err := r.header.Validate(); err != nil {
		return fmt.Errorf("decode header: %w", err)
	}

	r.state = stateAwaitTree

	return nil
}

func (r *decodeRun) rebuildTree() error {
	total := r.header.TotalSymbols
	if total == 0 {
		r.out = []byte{}
		r.state = stateDone

		return nil
	}

	tree, err := BuildTree(FrequencyTable(r.header.Frequencies))
	if err != nil {
		return err
	}

	r.tree = tree
	r.cursor = tree.root
	r.decoded = 0

	// every symbol takes at least one bit, which caps what a corrupt count can allocate
	bodyBits := uint64(len(r.data)-section.BitstreamOffset) * 8
	r.out = make([]byte, 0, min(uint64(total), bodyBits))

	r.state = stateDecoding

	return nil
}

func (r *decodeRun) decodeBody() error {
	nodes := r.tree.nodes
	root := r.tree.root
	total := r.header.TotalSymbols
	leafRoot := nodes[root].isLeaf()

	bits := bitio.NewBitReader(bytes.NewReader(r.data[section.BitstreamOffset:]))

	for bit := range bits.All() {
		// a lone leaf root has the one-bit code "0": each bit is one symbol
		if !leafRoot {
			n := &nodes[r.cursor]
			if bit == 0 {
				r.cursor = n.left
			} else {
				r.cursor = n.right
			}

			if !nodes[r.cursor].isLeaf() {
				continue
			}
		}

		r.out = append(r.out, nodes[r.cursor].symbol)
		r.decoded++
		r.cursor = root

		if r.decoded == total {
			r.state = stateDone
			return nil
		}
	}

	if err := bits.Err(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	return fmt.Errorf("%w: bitstream ended after %d of %d symbols",
		errs.ErrTruncatedInput, r.decoded, total)
}
