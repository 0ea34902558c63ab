package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Result holds everything one Compress call derived from its input.  Each
// call builds a fresh Result; nothing is cached between calls.
type Result struct {
	Frequencies Frequencies
	Tree        *Node
	Table       CodeTable
	Stats       Stats
}

// Compress reads src once to count symbol frequencies, builds the tree and
// code table, rewinds src, and writes the raw encoded bit stream to dst.
//
// The stream has no header.  Decoding it requires the returned Result's Tree.
//
func Compress(dst io.Writer, src io.ReadSeeker) (*Result, error) {
	res, err := analyze(src)
	if err != nil {
		return nil, err
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("huffman: rewinding input: %w", err)
	}

	res.Stats, err = NewEncoder(res.Table).Encode(dst, src)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CompressBytes is the in-memory counterpart of Compress.
func CompressBytes(data []byte) ([]byte, *Result, error) {
	var buf bytes.Buffer
	res, err := Compress(&buf, bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), res, nil
}

// Decompress decodes the raw bit stream in src against root, writing the
// recovered symbols to dst.  See Decoder.Decode for how trailing pad bits
// are treated.
func Decompress(dst io.Writer, src io.Reader, root *Node) (int64, error) {
	return NewDecoder(root).Decode(dst, src)
}

// DecompressBytes is the in-memory counterpart of Decompress.
func DecompressBytes(data []byte, root *Node) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(data), root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func analyze(src io.Reader) (*Result, error) {
	freqs, err := CountFrequencies(src)
	if err != nil {
		return nil, err
	}
	return newResult(freqs)
}

func newResult(freqs Frequencies) (*Result, error) {
	root := BuildTree(freqs)
	table, err := NewCodeTable(root)
	if err != nil {
		return nil, err
	}
	return &Result{Frequencies: freqs, Tree: root, Table: table}, nil
}
