// Package huffman implements static Huffman compression of byte streams.
// One prefix-code tree is built per input from its symbol frequencies, the
// input is encoded against the derived code table, and the tree is needed
// again to decode.
//
// The raw stream produced by Compress carries no header, so only a caller
// holding the same tree can decode it.  WriteArchive and ReadArchive wrap
// the stream with the frequency table and symbol count needed to rebuild
// that tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
