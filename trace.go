package huff

import (
	"sort"

	"github.com/32bitkid/huff/format"
	"github.com/32bitkid/huff/huffman"
	"github.com/32bitkid/huff/render"
	"github.com/sirupsen/logrus"
)

// tracer logs codec progress according to the processor's debug level.
// headerBits reports the bit position that marks the end of the header: bits
// written when compressing, bits read when decompressing.
type tracer struct {
	log        logrus.FieldLogger
	debug      DebugLevel
	headerBits func() int64

	onTree TreeFunc

	freq      *huffman.Frequencies
	root      huffman.Node
	codes     huffman.CodeTable
	header    int64
	leaves    int
	maxLength int
}

func (p *Processor) tracer(op string, headerBits func() int64) *tracer {
	return &tracer{
		log:        p.log.WithField("op", op),
		debug:      p.debug,
		headerBits: headerBits,
		onTree:     p.onTree,
	}
}

func (t *tracer) Tag(tag format.Tag) {
	if t.debug >= DebugLow {
		t.log.Infof("format %s (%#08x)", tag, uint32(tag))
	}
}

func (t *tracer) Frequencies(freq *huffman.Frequencies) {
	t.freq = freq
	if t.debug >= DebugLow {
		t.log.WithFields(logrus.Fields{
			"bytes":    freq.Total(),
			"distinct": freq.Distinct(),
		}).Info("counted symbols")
	}
}

func (t *tracer) Tree(root huffman.Node) {
	t.root = root
	t.leaves = huffman.Leaves(root)
	t.maxLength = huffman.Depth(root)
}

func (t *tracer) Codes(codes huffman.CodeTable) {
	t.codes = codes
	if t.debug < DebugHigh {
		return
	}
	symbols := make([]int, 0, len(codes))
	for sym := range codes {
		symbols = append(symbols, int(sym))
	}
	sort.Ints(symbols)

	for _, sym := range symbols {
		fields := logrus.Fields{"symbol": render.Symbol(huffman.Symbol(sym)), "code": codes[huffman.Symbol(sym)]}
		if t.freq != nil {
			fields["count"] = t.freq[sym]
		}
		t.log.WithFields(fields).Debug("code")
	}
}

func (t *tracer) HeaderDone() {
	t.header = t.headerBits()
	if t.onTree != nil {
		t.onTree(t.root, t.codes, t.freq)
	}
	if t.debug >= DebugLow {
		t.log.WithFields(logrus.Fields{
			"leaves":    t.leaves,
			"maxLength": t.maxLength,
			"bits":      t.header,
		}).Info("header")
	}
}

func (t *tracer) done(stats Stats) {
	if t.debug >= DebugLow {
		t.log.WithFields(logrus.Fields{
			"read":    stats.BitsRead,
			"written": stats.BitsWritten,
		}).Info("bits")
	}
}
