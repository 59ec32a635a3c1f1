// Package format frames a Huffman-coded stream with a 32-bit tag naming the
// header layout, and dispatches to the codec registered for that tag.
package format

import (
	"io"

	"github.com/32bitkid/huff/huffman"
	"github.com/pkg/errors"
)

type Tag uint32

const (
	Magic Tag = 0xface8200
	// CountHeader streams carry the 256 literal counts; the decoder rebuilds
	// the tree from them.
	CountHeader = Magic
	// TreeHeader streams carry the tree itself in preorder.
	TreeHeader = Magic | 1

	TagBits = 32
)

func (t Tag) String() string {
	switch t {
	case TreeHeader:
		return "Tag(TreeHeader)"
	case CountHeader:
		return "Tag(CountHeader)"
	}
	return "Tag(UNKNOWN)"
}

var ErrFormat = errors.New("format: illegal header")

// Compressor reads src twice, once to count and once to encode.
type Compressor = func(src huffman.Rewinder, dst huffman.Sink, trace Tracer) error

// Decompressor reads what the matching Compressor wrote after the tag.
type Decompressor = func(src huffman.Source, dst huffman.Sink, trace Tracer) error

type Codec struct {
	Compress   Compressor
	Decompress Decompressor
}

type LUT map[Tag]Codec

var Codecs = LUT{
	TreeHeader:  {Compress: CompressTree, Decompress: DecompressTree},
	CountHeader: {Compress: CompressCounts, Decompress: DecompressCounts},
}

// Compress writes tag and then the stream produced by its codec.
func (lut LUT) Compress(tag Tag, src huffman.Rewinder, dst huffman.Sink, trace Tracer) error {
	codec, ok := lut[tag]
	if !ok {
		return errors.Errorf("format: unhandled tag %#08x", uint32(tag))
	}
	if err := dst.WriteBits(TagBits, uint32(tag)); err != nil {
		return err
	}
	trace = orNop(trace)
	trace.Tag(tag)
	return codec.Compress(src, dst, trace)
}

// Decompress reads the tag and hands the rest of src to its codec. An unknown
// or missing tag fails with ErrFormat before anything is written to dst.
func (lut LUT) Decompress(src huffman.Source, dst huffman.Sink, trace Tracer) error {
	bits, err := src.ReadBits(TagBits)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrapf(ErrFormat, "reading tag: %v", err)
	}
	if err != nil {
		return errors.WithStack(err)
	}
	tag := Tag(bits)
	codec, ok := lut[tag]
	if !ok {
		return errors.Wrapf(ErrFormat, "starts with %#08x", bits)
	}
	trace = orNop(trace)
	trace.Tag(tag)
	return codec.Decompress(src, dst, trace)
}
