package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// ErrCodeTooLong is returned by NewCodeTable when a leaf lies deeper than the
// 64 bits a Code can hold.  Reaching that depth takes an input of more than
// 10^13 symbols with a Fibonacci-like frequency distribution.
var ErrCodeTooLong = errors.New("huffman: code exceeds 64 bits")

// CodeTable maps each symbol of a tree to its code, the path from the root
// with 0 for each left edge and 1 for each right edge.
type CodeTable map[Symbol]Code

// NewCodeTable walks the tree rooted at root and records the code of every
// leaf.  It returns a nil table for a nil tree.
func NewCodeTable(root *Node) (CodeTable, error) {
	if root == nil {
		return nil, nil
	}
	assert.Assertf(!root.IsLeaf(), "root of a Huffman tree must not be a leaf")

	// Walk the tree with an explicit stack.  Only internal nodes are
	// pushed; the stack depth equals the size of the code accumulated so
	// far.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	table := make(CodeTable)
	stack := make([]stackItem, 0, log2int(root.NumLeaves())+1)
	stack = append(stack, stackItem{node: root})

	processChild := func(parent *Node, child *Node, code Code) error {
		if child == nil {
			assert.Assertf(parent == root && root.Left != nil, "internal node is missing a child")
			return nil
		}
		if child.IsLeaf() {
			table[child.Symbol] = code
			return nil
		}
		if code.Size >= maxBitsPerCode {
			return fmt.Errorf("%w: subtree at depth %d", ErrCodeTooLong, code.Size)
		}
		stack = append(stack, stackItem{node: child, code: code})
		return nil
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		var err error
		switch x {
		case 0:
			err = processChild(top.node, top.node.Left, top.code.Append(false))
		case 1:
			err = processChild(top.node, top.node.Right, top.code.Append(true))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
		if err != nil {
			return nil, err
		}
	}

	return table, nil
}

// Lengths returns the code length of each symbol in the table.
func (table CodeTable) Lengths() map[Symbol]byte {
	out := make(map[Symbol]byte, len(table))
	for symbol, hc := range table {
		out[symbol] = hc.Size
	}
	return out
}

// EncodedBits returns the number of bits needed to encode an input with the
// given frequencies.  Symbols absent from the table contribute nothing.
func (table CodeTable) EncodedBits(freqs Frequencies) uint64 {
	var total uint64
	for symbol, count := range freqs {
		if hc, found := table[symbol]; found {
			total += count * uint64(hc.Size)
		}
	}
	return total
}

// Dump writes a programmer-readable listing of the table to the given
// writer, one symbol per line in ascending order.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc, found := table[Symbol(symbol)]; found {
			fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(symbol), hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
