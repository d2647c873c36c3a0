package huffman

import (
	"fmt"

	"github.com/arloliu/huffpack/errs"
	"github.com/arloliu/huffpack/internal/heap"
)

// noChild marks the absent children of a leaf.
const noChild int32 = -1

// node is an arena entry. Leaves have both children set to noChild; internal nodes
// have both set, and their symbol is unused.
type node struct {
	freq   uint64
	left   int32
	right  int32
	symbol byte
}

func (n *node) isLeaf() bool {
	return n.left == noChild
}

// Tree is a strict binary Huffman tree stored as an arena of nodes.
//
// Children are referenced by arena index, so the tree owns every node exclusively and
// is released as a single slice. A tree for k distinct symbols holds 2k-1 nodes.
type Tree struct {
	nodes []node
	root  int32
}

// BuildTree builds the Huffman tree for freq.
//
// One leaf is created per nonzero symbol, in ascending byte order. The two
// lowest-frequency nodes are then merged repeatedly, the first one extracted becoming
// the left child, until a single root remains. Encoder and Decoder both call
// BuildTree on the same table and therefore derive the same tree.
//
// A table with a single nonzero symbol produces a tree whose root is that leaf.
// It returns errs.ErrEmptyAlphabet if every frequency is zero.
func BuildTree(freq FrequencyTable) (*Tree, error) {
	distinct := freq.Distinct()
	if distinct == 0 {
		return nil, fmt.Errorf("build tree: %w", errs.ErrEmptyAlphabet)
	}

	t := &Tree{nodes: make([]node, 0, 2*distinct-1)}

	pq := heap.New(distinct, func(a, b int32) bool {
		return t.nodes[a].freq < t.nodes[b].freq
	})

	for sym, f := range freq.Symbols() {
		pq.Push(t.add(node{freq: uint64(f), left: noChild, right: noChild, symbol: sym}))
	}

	for pq.Len() > 1 {
		a := pq.Pop()
		b := pq.Pop()
		pq.Push(t.add(node{freq: t.nodes[a].freq + t.nodes[b].freq, left: a, right: b}))
	}

	t.root = pq.Pop()

	return t, nil
}

func (t *Tree) add(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1) //nolint: gosec
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaves, which equals the number of distinct symbols.
func (t *Tree) Leaves() int {
	return (len(t.nodes) + 1) / 2
}

// RootFrequency returns the frequency of the root, the total of all leaf frequencies.
func (t *Tree) RootFrequency() uint64 {
	return t.nodes[t.root].freq
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	var walk func(idx int32) int
	walk = func(idx int32) int {
		n := &t.nodes[idx]
		if n.isLeaf() {
			return 0
		}

		return 1 + max(walk(n.left), walk(n.right))
	}

	return walk(t.root)
}

// SingleSymbol reports whether the root is itself a leaf, and returns its symbol.
func (t *Tree) SingleSymbol() (byte, bool) {
	n := &t.nodes[t.root]
	return n.symbol, n.isLeaf()
}

// String renders the tree in a compact nested form, e.g. "(61:3 62:2)".
func (t *Tree) String() string {
	var render func(idx int32) string
	render = func(idx int32) string {
		n := &t.nodes[idx]
		if n.isLeaf() {
			return fmt.Sprintf("%02x:%d", n.symbol, n.freq)
		}

		return "(" + render(n.left) + " " + render(n.right) + ")"
	}

	return render(t.root)
}

// maxTreeDepth bounds the path length of any tree built from a FrequencyTable.
//
// A Huffman leaf at depth d requires a total frequency of at least Fib(d+2). The
// largest table total, 256*MaxUint32, is below Fib(60), so no path exceeds 57 and
// every code fits in a uint64.
const maxTreeDepth = 57
