// Package huffman implements a static Huffman codec whose tree travels with
// the compressed stream as a bit-level preorder header.
//
// A compressed stream is the serialized tree followed by the code of every
// input byte and, last, the code of an out-of-band end-of-stream marker. No
// length field is stored; the decoder stops when it reaches the marker leaf.
package huffman

// Symbol is an 8-bit literal (0..255) or the end-of-stream Marker.
type Symbol uint16

const (
	BitsPerWord = 8
	// BitsPerSymbol is the width of a leaf's symbol field in a tree header,
	// one bit wider than a word so that Marker fits.
	BitsPerSymbol = BitsPerWord + 1

	AlphabetSize = 1 << BitsPerWord
	Marker       = Symbol(AlphabetSize)

	// SymbolCount is the size of every symbol-indexed table: the literals
	// plus Marker.
	SymbolCount = AlphabetSize + 1

	// maxDepth bounds any tree built from SymbolCount leaves.
	maxDepth = SymbolCount - 1
)

// Source yields bits from the input. Once the input is exhausted ReadBits
// returns io.EOF or io.ErrUnexpectedEOF; callers treat both as the end.
type Source interface {
	ReadBits(width uint) (uint32, error)
}

// Rewinder is a Source that can be read again from the start.
type Rewinder interface {
	Source
	Reset() error
}

// Sink accepts bits, taking the low-order width bits of value, most
// significant first.
type Sink interface {
	WriteBits(width uint, value uint32) error
}
