package format

import "github.com/32bitkid/huff/huffman"

// Tracer observes a codec as it runs. Events arrive in the order listed;
// Frequencies is skipped by DecompressTree, which never sees counts.
type Tracer interface {
	Tag(Tag)
	Frequencies(*huffman.Frequencies)
	Tree(huffman.Node)
	Codes(huffman.CodeTable)
	HeaderDone()
}

type nopTracer struct{}

func (nopTracer) Tag(Tag)                          {}
func (nopTracer) Frequencies(*huffman.Frequencies) {}
func (nopTracer) Tree(huffman.Node)                {}
func (nopTracer) Codes(huffman.CodeTable)          {}
func (nopTracer) HeaderDone()                      {}

func orNop(t Tracer) Tracer {
	if t == nil {
		return nopTracer{}
	}
	return t
}
