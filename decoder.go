package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Decoder decodes bit streams produced by an Encoder whose table was
// derived from the same tree.
type Decoder struct {
	root *Node
}

// NewDecoder returns a Decoder for the given tree.  A nil tree decodes every
// stream to nothing.
func NewDecoder(root *Node) *Decoder {
	return &Decoder{root: root}
}

// Tree returns the tree this Decoder was built with.
func (d *Decoder) Tree() *Node {
	return d.root
}

// Decode reads bits from src, walking the tree one edge per bit and writing
// a symbol to dst each time a leaf is reached.  It returns the number of
// symbols written.
//
// Decoding stops when the stream is exhausted or when the root's frequency
// worth of symbols has been written, whichever comes first.  The root's
// frequency is the length of the input the tree was built from, so the pad
// bits in the final byte of a stream from the matching Encoder are never
// decoded.
//
// Streams that were not produced against this tree are not rejected.  A
// code left incomplete at the end of the stream is dropped, and a bit
// leading off the synthetic root of a single-symbol tree is skipped.
//
func (d *Decoder) Decode(dst io.Writer, src io.Reader) (int64, error) {
	if d.root == nil {
		return 0, nil
	}
	n, err := d.decode(dst, src, d.root.Freq)
	return int64(n), err
}

// DecodeN is like Decode, but stops after exactly n symbols, ignoring any
// bits that follow.  It returns io.ErrUnexpectedEOF if the stream ends
// before n symbols have been decoded.
func (d *Decoder) DecodeN(dst io.Writer, src io.Reader, n uint64) (int64, error) {
	if n != 0 && d.root == nil {
		return 0, fmt.Errorf("huffman: decoding %d symbols without a tree: %w", n, io.ErrUnexpectedEOF)
	}
	count, err := d.decode(dst, src, n)
	if err == nil && count < n {
		err = fmt.Errorf("huffman: stream ended after %d of %d symbols: %w", count, n, io.ErrUnexpectedEOF)
	}
	return int64(count), err
}

func (d *Decoder) decode(dst io.Writer, src io.Reader, limit uint64) (uint64, error) {
	if d.root == nil || limit == 0 {
		return 0, nil
	}

	br := bitio.NewReader(src)
	bw := bufio.NewWriter(dst)

	var count uint64
	var readErr error
	cursor := d.root
	for count < limit {
		bit, err := br.ReadBool()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("huffman: reading input: %w", err)
			break
		}

		next := cursor.Left
		if bit {
			next = cursor.Right
		}
		if next == nil {
			cursor = d.root
			continue
		}
		cursor = next

		if cursor.IsLeaf() {
			if err := bw.WriteByte(byte(cursor.Symbol)); err != nil {
				return count, fmt.Errorf("huffman: writing output: %w", err)
			}
			count++
			cursor = d.root
		}
	}

	if err := bw.Flush(); err != nil && readErr == nil {
		readErr = fmt.Errorf("huffman: writing output: %w", err)
	}
	return count, readErr
}
