// Package huff compresses and decompresses byte streams with a static
// Huffman code whose tree is stored at the head of the output.
//
// A compressed stream is a 32-bit format tag, a bit-level header from which
// the decoder recovers the tree, and the code of every input byte followed by
// the code of an end-of-stream marker. The final byte is padded with zero
// bits that the decoder never reads.
package huff

import (
	"io"

	"github.com/32bitkid/huff/bitstream"
	"github.com/32bitkid/huff/format"
	"github.com/32bitkid/huff/huffman"
	"github.com/sirupsen/logrus"
)

// DebugLevel selects how much a Processor logs.
type DebugLevel int

const (
	DebugNone DebugLevel = 0
	DebugLow  DebugLevel = 1
	DebugHigh DebugLevel = 4
)

// Processor runs compression and decompression. The zero value is not
// usable; create one with New.
type Processor struct {
	log    logrus.FieldLogger
	debug  DebugLevel
	format format.Tag
	codecs format.LUT
	onTree TreeFunc
}

type Option func(*Processor)

func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Processor) { p.log = log }
}

func WithDebug(level DebugLevel) Option {
	return func(p *Processor) { p.debug = level }
}

// WithFormat picks the header layout Compress writes. Decompress accepts
// every registered layout regardless.
func WithFormat(tag format.Tag) Option {
	return func(p *Processor) { p.format = tag }
}

// TreeFunc receives the tree once its header has been written or read. freq
// is nil when the header does not carry counts.
type TreeFunc func(root huffman.Node, codes huffman.CodeTable, freq *huffman.Frequencies)

func WithTree(fn TreeFunc) Option {
	return func(p *Processor) { p.onTree = fn }
}

func New(opts ...Option) *Processor {
	discard := logrus.New()
	discard.Out = io.Discard

	p := &Processor{
		log:    discard,
		format: format.TreeHeader,
		codecs: format.Codecs,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats counts the bits moved by one operation. BitsWritten excludes the
// padding of the final byte.
type Stats struct {
	BitsRead    int64
	BitsWritten int64
}

// Compress reads src twice, seeking back to its start between the counting
// pass and the encoding pass.
func (p *Processor) Compress(src io.ReadSeeker, dst io.Writer) (Stats, error) {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)
	tr := p.tracer("compress", out.BitsWritten)

	if err := p.codecs.Compress(p.format, in, out, tr); err != nil {
		return p.stats(in, out), err
	}
	if err := out.Close(); err != nil {
		return p.stats(in, out), err
	}

	stats := p.stats(in, out)
	tr.done(stats)
	return stats, nil
}

// Decompress decodes a stream written by Compress. Bytes decoded before a
// truncated or corrupt stream is detected may already have reached dst.
func (p *Processor) Decompress(src io.Reader, dst io.Writer) (Stats, error) {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)
	tr := p.tracer("decompress", in.BitsRead)

	if err := p.codecs.Decompress(in, out, tr); err != nil {
		return p.stats(in, out), err
	}
	if err := out.Close(); err != nil {
		return p.stats(in, out), err
	}

	stats := p.stats(in, out)
	tr.done(stats)
	return stats, nil
}

func (p *Processor) stats(in *bitstream.Reader, out *bitstream.Writer) Stats {
	return Stats{BitsRead: in.BitsRead(), BitsWritten: out.BitsWritten()}
}
