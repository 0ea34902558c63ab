package huffman

// Symbol represents one byte of input.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(0xff)

// NumSymbols is the size of the Symbol alphabet.
const NumSymbols = int(MaxSymbol) + 1

// maxBitsPerCode is the longest code a Code can hold.
const maxBitsPerCode = 64
