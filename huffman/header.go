package huffman

import (
	"math"

	"github.com/pkg/errors"
)

// WriteHeader serializes root in preorder. An internal node is a 0 bit
// followed by its left then right subtree; a leaf is a 1 bit followed by its
// symbol in BitsPerSymbol bits.
func WriteHeader(root Node, dst Sink) error {
	switch n := root.(type) {
	case *Leaf:
		if err := dst.WriteBits(1, 1); err != nil {
			return err
		}
		return dst.WriteBits(BitsPerSymbol, uint32(n.Symbol))
	case *Internal:
		if err := dst.WriteBits(1, 0); err != nil {
			return err
		}
		if err := WriteHeader(n.Left, dst); err != nil {
			return err
		}
		return WriteHeader(n.Right, dst)
	}
	return errors.Errorf("huffman: unexpected node %T", root)
}

type headerReader struct {
	src  Source
	seen [SymbolCount]bool
}

// ReadHeader rebuilds the tree written by WriteHeader. Running out of input
// is ErrTruncatedHeader; a tree no encoder could have produced is
// ErrMalformedHeader.
func ReadHeader(src Source) (Node, error) {
	hr := headerReader{src: src}
	root, err := hr.read(0)
	if err != nil {
		return nil, err
	}
	if !hr.seen[Marker] {
		return nil, errors.Wrap(ErrMalformedHeader, "no end-of-stream leaf")
	}
	if leaf, ok := root.(*Leaf); ok && leaf.Symbol != Marker {
		return nil, errors.Wrapf(ErrMalformedHeader, "lone leaf %d", leaf.Symbol)
	}
	return root, nil
}

func (hr *headerReader) read(depth int) (Node, error) {
	bit, err := hr.src.ReadBits(1)
	if err != nil {
		return nil, truncated(err, ErrTruncatedHeader)
	}

	if bit == 0 {
		if depth >= maxDepth {
			return nil, errors.Wrapf(ErrMalformedHeader, "nesting deeper than %d", maxDepth)
		}
		left, err := hr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := hr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Internal{Left: left, Right: right}, nil
	}

	value, err := hr.src.ReadBits(BitsPerSymbol)
	if err != nil {
		return nil, truncated(err, ErrTruncatedHeader)
	}
	if value > uint32(Marker) {
		return nil, errors.Wrapf(ErrMalformedHeader, "leaf symbol %d out of range", value)
	}
	if hr.seen[value] {
		return nil, errors.Wrapf(ErrMalformedHeader, "leaf symbol %d repeated", value)
	}
	hr.seen[value] = true
	return &Leaf{Symbol: Symbol(value)}, nil
}

// WriteCounts writes the literal counts of freq as AlphabetSize 32-bit words.
// The Marker count is implied.
func WriteCounts(freq *Frequencies, dst Sink) error {
	for sym := 0; sym < AlphabetSize; sym++ {
		if freq[sym] > math.MaxUint32 {
			return errors.Wrapf(ErrCountOverflow, "symbol %d occurs %d times", sym, freq[sym])
		}
	}
	for sym := 0; sym < AlphabetSize; sym++ {
		if err := dst.WriteBits(32, uint32(freq[sym])); err != nil {
			return err
		}
	}
	return nil
}

// ReadCounts reads a table written by WriteCounts and restores the Marker
// count.
func ReadCounts(src Source) (*Frequencies, error) {
	var freq Frequencies
	for sym := 0; sym < AlphabetSize; sym++ {
		count, err := src.ReadBits(32)
		if err != nil {
			return nil, truncated(err, ErrTruncatedHeader)
		}
		freq[sym] = uint64(count)
	}
	freq[Marker] = 1
	return &freq, nil
}
