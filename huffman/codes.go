package huffman

// CodeTable maps each symbol in a tree to its root-to-leaf path, written as
// '0' (left) and '1' (right) characters, leftmost edge first.
//
// A tree that is a single leaf maps that symbol to the empty path. Only a
// marker-only tree, built from empty input, can have that shape; encoding it
// writes no payload bits and decoding it reads none.
type CodeTable map[Symbol]string

// MakeCodes walks the tree depth first, left before right.
func MakeCodes(root Node) CodeTable {
	codes := make(CodeTable)
	var walk func(n Node, path string)
	walk = func(n Node, path string) {
		switch n := n.(type) {
		case *Leaf:
			codes[n.Symbol] = path
		case *Internal:
			walk(n.Left, path+"0")
			walk(n.Right, path+"1")
		}
	}
	walk(root, "")
	return codes
}

// Bits returns the number of payload bits needed to encode freq with the
// table, Marker included. Symbols missing from the table are ignored.
func (c CodeTable) Bits(freq *Frequencies) (n uint64) {
	for sym, count := range freq {
		n += count * uint64(len(c[Symbol(sym)]))
	}
	return n
}
