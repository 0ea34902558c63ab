package huffman

import (
	"strings"
	"testing"
)

func TestNewCodeTable_Dump(t *testing.T) {
	table := makeTestTable()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tEncode('a') = \"1100\"\n",
		"\tEncode('b') = \"1101\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectSizes := map[Symbol]byte{'a': 4, 'b': 4, 'c': 3, 'd': 3, 'e': 3, 'f': 1}
	actualSizes := table.Lengths()
	for symbol, size := range expectSizes {
		if actualSizes[symbol] != size {
			t.Errorf("symbol %q: expected size %d, got %d", rune(symbol), size, actualSizes[symbol])
		}
	}
}

func TestNewCodeTable_Nil(t *testing.T) {
	table, err := NewCodeTable(nil)
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if table != nil {
		t.Errorf("expected nil table, got %v", table)
	}
}

func TestNewCodeTable_SingleSymbol(t *testing.T) {
	table, err := NewCodeTable(BuildTree(Frequencies{'a': 4}))
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(table))
	}
	if hc := table['a']; hc != MakeCode(1, 0) {
		t.Errorf("expected code \"0\", got %s", hc)
	}
}

func TestCodeTable_EncodedBits(t *testing.T) {
	freqs := Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
	table := makeTestTable()

	// 4*5 + 4*9 + 3*12 + 3*13 + 3*16 + 1*45
	if bits := table.EncodedBits(freqs); bits != 224 {
		t.Errorf("expected 224 bits, got %d", bits)
	}
}
