package huffman

import (
	"container/heap"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a prefix-code tree.
//
// A leaf has no children and carries a Symbol.  An internal node carries the
// summed frequency of its two children; its Symbol is meaningless.  The one
// exception is the synthetic root built for an input with a single distinct
// symbol, which has a Left child and no Right child, so that the lone symbol
// still gets a 1-bit code.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// NumLeaves returns the number of leaves below (and including) this node.
func (n *Node) NumLeaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.NumLeaves() + n.Right.NumLeaves()
}

// Depth returns the number of edges on the longest path from this node to a
// leaf.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	l, r := -1, -1
	if n.Left != nil {
		l = n.Left.Depth()
	}
	if n.Right != nil {
		r = n.Right.Depth()
	}
	if l > r {
		return l + 1
	}
	return r + 1
}

// String returns an indented rendering of the subtree, one node per line.
func (n *Node) String() string {
	if n == nil {
		return "<nil>\n"
	}
	var sb strings.Builder
	n.render(&sb, 0)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	if n.IsLeaf() {
		sb.WriteString(strconv.QuoteRune(rune(n.Symbol)))
	} else {
		sb.WriteString("*")
	}
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatUint(n.Freq, 10))
	sb.WriteByte('\n')
	if n.Left != nil {
		n.Left.render(sb, depth+1)
	}
	if n.Right != nil {
		n.Right.render(sb, depth+1)
	}
}

// BuildTree constructs a Huffman tree from the given frequencies.  It
// returns nil if freqs is empty.
//
// Ties between equal frequencies are broken by insertion order: leaves are
// inserted in ascending symbol order, and each merged node is inserted after
// everything before it.  The tree is therefore a deterministic function of
// freqs, although other tie-break rules would yield trees that are equally
// optimal.
//
func BuildTree(freqs Frequencies) *Node {
	symbols := freqs.Symbols()
	if len(symbols) == 0 {
		return nil
	}

	// Step 1: build a minheap with one leaf per symbol.

	items := make([]nodeAndSeq, 0, len(symbols))
	for _, symbol := range symbols {
		freq := freqs[symbol]
		assert.Assertf(freq != 0, "frequency of symbol %d is 0", symbol)
		leaf := &Node{Symbol: symbol, Freq: freq}
		items = append(items, nodeAndSeq{leaf, uint32(len(items))})
	}
	nextSeq := uint32(len(items))

	h := nodeHeap{items}
	h.Init()

	// A single symbol still needs one edge above it.

	if h.Len() == 1 {
		leaf := heap.Pop(&h).(nodeAndSeq).node
		return &Node{Freq: leaf.Freq, Left: leaf}
	}

	// Step 2: repeatedly merge the two least frequent subtrees.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		parent := &Node{
			Freq:  addSaturating(a.node.Freq, b.node.Freq),
			Left:  a.node,
			Right: b.node,
		}
		heap.Push(&h, nodeAndSeq{parent, nextSeq})
		nextSeq++
	}

	return heap.Pop(&h).(nodeAndSeq).node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
