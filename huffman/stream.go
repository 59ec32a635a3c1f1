package huffman

import "github.com/pkg/errors"

// Encode replaces every 8-bit word read from src with its code and finishes
// with the code for Marker.
func Encode(codes CodeTable, src Source, dst Sink) error {
	for {
		word, err := src.ReadBits(BitsPerWord)
		if isEndOfInput(err) {
			break
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if err := writeCode(codes, Symbol(word), dst); err != nil {
			return err
		}
	}
	return writeCode(codes, Marker, dst)
}

func writeCode(codes CodeTable, sym Symbol, dst Sink) error {
	code, ok := codes[sym]
	if !ok {
		return errors.Wrapf(ErrUnknownSymbol, "symbol %d", sym)
	}
	for i := 0; i < len(code); i++ {
		if err := dst.WriteBits(1, uint32(code[i]-'0')); err != nil {
			return err
		}
	}
	return nil
}

// Decode walks root one bit at a time, 0 left and 1 right, writing each
// literal leaf it reaches as an 8-bit word and restarting from the root. It
// returns when it reaches the Marker leaf.
func Decode(root Node, src Source, dst Sink) error {
	if leaf, ok := root.(*Leaf); ok {
		if leaf.Symbol != Marker {
			return errors.Wrapf(ErrMalformedHeader, "lone leaf %d", leaf.Symbol)
		}
		return nil
	}

	current := root
	for {
		bit, err := src.ReadBits(1)
		if err != nil {
			return truncated(err, ErrTruncatedStream)
		}

		in := current.(*Internal)
		if bit == 0 {
			current = in.Left
		} else {
			current = in.Right
		}

		leaf, ok := current.(*Leaf)
		if !ok {
			continue
		}
		if leaf.Symbol == Marker {
			return nil
		}
		if err := dst.WriteBits(BitsPerWord, uint32(leaf.Symbol)); err != nil {
			return err
		}
		current = root
	}
}
