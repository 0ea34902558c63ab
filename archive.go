package huffman

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ArchiveMagic opens every archive written by WriteArchive.
const ArchiveMagic = "HUF1"

var (
	// ErrBadMagic is returned by ReadArchive when the input does not
	// start with ArchiveMagic.
	ErrBadMagic = errors.New("huffman: not an archive")

	// ErrCorruptHeader is returned by ReadArchive when the frequency
	// table is inconsistent.
	ErrCorruptHeader = errors.New("huffman: corrupt archive header")
)

// WriteArchive compresses src like Compress, but precedes the bit stream
// with the symbol count and the frequency table, so that ReadArchive can
// rebuild the tree and stop before the pad bits.
//
// Header layout:
//
//     "HUF1"
//     uvarint   total number of symbols
//     uvarint   number of distinct symbols
//     repeated, ascending by symbol:
//         byte     symbol
//         uvarint  frequency
//
func WriteArchive(dst io.Writer, src io.ReadSeeker) (*Result, error) {
	res, err := analyze(src)
	if err != nil {
		return nil, err
	}

	header := appendHeader(make([]byte, 0, 16+3*res.Frequencies.Len()), res.Frequencies)
	if _, err := dst.Write(header); err != nil {
		return nil, fmt.Errorf("huffman: writing archive header: %w", err)
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

// ReadArchive decodes an archive written by WriteArchive, writing the
// recovered symbols to dst.
func ReadArchive(dst io.Writer, src io.Reader) (*Result, error) {
	br := bufio.NewReader(src)

	freqs, total, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	res, err := newResult(freqs)
	if err != nil {
		return nil, err
	}

	n, err := NewDecoder(res.Tree).DecodeN(dst, br, total)
	res.Stats = Stats{Symbols: uint64(n), Bits: res.Table.EncodedBits(freqs)}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func appendHeader(out []byte, freqs Frequencies) []byte {
	out = append(out, ArchiveMagic...)
	out = binary.AppendUvarint(out, freqs.Total())
	out = binary.AppendUvarint(out, uint64(freqs.Len()))
	for _, symbol := range freqs.Symbols() {
		out = append(out, byte(symbol))
		out = binary.AppendUvarint(out, freqs[symbol])
	}
	return out
}

func readHeader(br *bufio.Reader) (Frequencies, uint64, error) {
	var magic [len(ArchiveMagic)]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, 0, ErrBadMagic
		}
		return nil, 0, fmt.Errorf("huffman: reading archive header: %w", err)
	}
	if string(magic[:]) != ArchiveMagic {
		return nil, 0, ErrBadMagic
	}

	total, err := readUvarint(br, "symbol count")
	if err != nil {
		return nil, 0, err
	}
	distinct, err := readUvarint(br, "distinct symbol count")
	if err != nil {
		return nil, 0, err
	}
	if distinct > uint64(NumSymbols) {
		return nil, 0, fmt.Errorf("%w: %d distinct symbols", ErrCorruptHeader, distinct)
	}

	freqs := make(Frequencies, distinct)
	var sum uint64
	prev := -1
	for i := uint64(0); i < distinct; i++ {
		ch, err := br.ReadByte()
		if err != nil {
			return nil, 0, headerReadError("symbol", err)
		}
		if int(ch) <= prev {
			return nil, 0, fmt.Errorf("%w: symbol %d out of order", ErrCorruptHeader, ch)
		}
		prev = int(ch)

		freq, err := readUvarint(br, "frequency")
		if err != nil {
			return nil, 0, err
		}
		if freq == 0 {
			return nil, 0, fmt.Errorf("%w: symbol %d has frequency 0", ErrCorruptHeader, ch)
		}
		freqs[Symbol(ch)] = freq
		sum = addSaturating(sum, freq)
	}

	if sum != total {
		return nil, 0, fmt.Errorf("%w: frequencies sum to %d, expected %d", ErrCorruptHeader, sum, total)
	}
	return freqs, total, nil
}

func readUvarint(br *bufio.Reader, what string) (uint64, error) {
	v, err := binary.ReadUvarint(br)
	if err != nil {
		return 0, headerReadError(what, err)
	}
	return v, nil
}

func headerReadError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", ErrCorruptHeader, what)
	}
	return fmt.Errorf("huffman: reading archive %s: %w", what, err)
}
