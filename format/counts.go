package format

import (
	"github.com/32bitkid/huff/huffman"
)

// CompressCounts stores the literal counts instead of the tree. The
// decompressor rebuilds an identical tree because BuildTree breaks ties by
// insertion order.
func CompressCounts(src huffman.Rewinder, dst huffman.Sink, trace Tracer) error {
	trace = orNop(trace)
	freq, err := huffman.CountFrequencies(src)
	if err != nil {
		return err
	}
	trace.Frequencies(freq)

	root := huffman.BuildTree(freq)
	trace.Tree(root)
	codes := huffman.MakeCodes(root)
	trace.Codes(codes)

	if err := huffman.WriteCounts(freq, dst); err != nil {
		return err
	}
	trace.HeaderDone()

	if err := src.Reset(); err != nil {
		return err
	}
	return huffman.Encode(codes, src, dst)
}

func DecompressCounts(src huffman.Source, dst huffman.Sink, trace Tracer) error {
	trace = orNop(trace)
	freq, err := huffman.ReadCounts(src)
	if err != nil {
		return err
	}
	trace.Frequencies(freq)

	root := huffman.BuildTree(freq)
	trace.Tree(root)
	trace.Codes(huffman.MakeCodes(root))
	trace.HeaderDone()

	return huffman.Decode(root, src, dst)
}
