package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrLookup is matched by every *LookupError.
var ErrLookup = errors.New("huffman: symbol has no code")

// LookupError is returned by Encoder when the input contains a symbol that
// the code table has no entry for.  With a table built from the same input
// this indicates an internal inconsistency.
type LookupError struct {
	Symbol Symbol
	Offset uint64
}

// Error fulfills the error interface.
func (err *LookupError) Error() string {
	return fmt.Sprintf("huffman: symbol %q at offset %d has no code", rune(err.Symbol), err.Offset)
}

// Unwrap returns ErrLookup.
func (err *LookupError) Unwrap() error {
	return ErrLookup
}

var _ error = (*LookupError)(nil)

// Stats describes the work done by one Encode call.
type Stats struct {
	// Symbols is the number of input symbols consumed.
	Symbols uint64

	// Bits is the number of code bits written, excluding padding.
	Bits uint64
}

// Bytes returns the number of bytes the encoded bits occupy once the final
// partial byte is padded.
func (s Stats) Bytes() uint64 {
	return (s.Bits + 7) / 8
}

// Encoder encodes byte streams with a fixed CodeTable.
type Encoder struct {
	table CodeTable
}

// NewEncoder returns an Encoder for the given table.  A nil table encodes
// only the empty input.
func NewEncoder(table CodeTable) *Encoder {
	return &Encoder{table: table}
}

// Table returns the table this Encoder was built with.
func (e *Encoder) Table() CodeTable {
	return e.table
}

// Encode reads src to the end and writes the code of each byte to dst, most
// significant bit first, packed 8 bits per byte.  The final byte is padded
// with zero bits.
//
// A byte with no entry in the table aborts the encoding with a
// *LookupError.  Bits already produced may have been written to dst.
//
func (e *Encoder) Encode(dst io.Writer, src io.Reader) (Stats, error) {
	var stats Stats

	br := bufio.NewReader(src)
	bw := bitio.NewWriter(dst)

	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = bw.Close()
			return stats, fmt.Errorf("huffman: reading input: %w", err)
		}

		hc, found := e.table[Symbol(ch)]
		if !found {
			_ = bw.Close()
			return stats, &LookupError{Symbol: Symbol(ch), Offset: stats.Symbols}
		}

		if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
			return stats, fmt.Errorf("huffman: writing output: %w", err)
		}
		stats.Symbols++
		stats.Bits += uint64(hc.Size)
	}

	if err := bw.Close(); err != nil {
		return stats, fmt.Errorf("huffman: writing output: %w", err)
	}
	return stats, nil
}
