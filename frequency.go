package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Frequencies maps each Symbol that occurs in an input to its number of
// occurrences.  Symbols that never occur are absent; a Frequencies value
// never holds a zero count.
type Frequencies map[Symbol]uint64

// CountFrequencies reads r to the end and counts each byte.  The input is
// consumed incrementally, so r may be arbitrarily long.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	var counts [NumSymbols]uint64

	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("huffman: counting frequencies: %w", err)
		}
		counts[ch]++
	}

	return fromCounts(&counts), nil
}

// CountBytes is the in-memory counterpart of CountFrequencies.
func CountBytes(data []byte) Frequencies {
	var counts [NumSymbols]uint64
	for _, ch := range data {
		counts[ch]++
	}
	return fromCounts(&counts)
}

func fromCounts(counts *[NumSymbols]uint64) Frequencies {
	freqs := make(Frequencies)
	for symbol, count := range counts {
		if count != 0 {
			freqs[Symbol(symbol)] = count
		}
	}
	return freqs
}

// Len returns the number of distinct symbols.
func (freqs Frequencies) Len() int {
	return len(freqs)
}

// Total returns the number of symbols counted, i.e. the input length.
func (freqs Frequencies) Total() uint64 {
	var total uint64
	for _, count := range freqs {
		total = addSaturating(total, count)
	}
	return total
}

// Symbols returns the distinct symbols in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable listing of the counts to the given
// writer, one symbol per line in ascending order.
func (freqs Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for _, symbol := range freqs.Symbols() {
		fmt.Fprintf(&buf, "\t%q: %d\n", rune(symbol), freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
