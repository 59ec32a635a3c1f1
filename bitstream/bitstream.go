// Package bitstream adapts byte streams to the bit-granular Source and Sink
// used by the huffman codec. Bits are most significant first within a byte.
package bitstream

import (
	"bufio"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// MaxWidth is the widest single read or write.
const MaxWidth = 32

var ErrNotRewindable = errors.New("bitstream: source cannot be rewound")

type bitReader interface {
	Read1() (bool, error)
	Read8(uint) (uint8, error)
	Read16(uint) (uint16, error)
	Read32(uint) (uint32, error)
}

// Reader reads fixed-width unsigned values from an io.Reader. The source is
// buffered so that bytes delivered together with io.EOF are not lost.
type Reader struct {
	src  io.Reader
	br   bitReader
	bits int64
}

func NewReader(src io.Reader) *Reader {
	return &Reader{
		src: src,
		br:  bitreader.NewReader(bufio.NewReader(src)),
	}
}

// ReadBits reads width bits as an unsigned integer. Running out of input,
// whether on a value boundary or mid-value, is reported as
// io.ErrUnexpectedEOF.
func (r *Reader) ReadBits(width uint) (uint32, error) {
	var (
		value uint32
		err   error
	)

	switch {
	case width == 0:
		return 0, nil
	case width == 1:
		var bit bool
		bit, err = r.br.Read1()
		if bit {
			value = 1
		}
	case width <= 8:
		var v uint8
		v, err = r.br.Read8(width)
		value = uint32(v)
	case width <= 16:
		var v uint16
		v, err = r.br.Read16(width)
		value = uint32(v)
	case width <= MaxWidth:
		value, err = r.br.Read32(width)
	default:
		return 0, errors.Errorf("bitstream: cannot read %d bits at once", width)
	}

	if err != nil {
		return 0, err
	}
	r.bits += int64(width)
	return value, nil
}

// Reset rewinds the underlying reader to its start. It fails with
// ErrNotRewindable unless the reader is an io.Seeker.
func (r *Reader) Reset() error {
	seeker, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotRewindable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return errors.WithStack(err)
	}
	r.br = bitreader.NewReader(bufio.NewReader(r.src))
	return nil
}

// BitsRead is the number of bits returned so far, across resets.
func (r *Reader) BitsRead() int64 { return r.bits }

// Writer packs fixed-width values into an io.Writer.
type Writer struct {
	w    *bitio.Writer
	bits int64
}

func NewWriter(dst io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(dst)}
}

// WriteBits writes the low-order width bits of value.
func (w *Writer) WriteBits(width uint, value uint32) error {
	if width > MaxWidth {
		return errors.Errorf("bitstream: cannot write %d bits at once", width)
	}
	masked := uint64(value) & (1<<width - 1)
	if err := w.w.WriteBits(masked, uint8(width)); err != nil {
		return errors.WithStack(err)
	}
	w.bits += int64(width)
	return nil
}

// Close pads the last byte with zero bits and flushes it. The underlying
// writer is not closed.
func (w *Writer) Close() error {
	return errors.WithStack(w.w.Close())
}

// BitsWritten is the number of bits written so far, padding excluded.
func (w *Writer) BitsWritten() int64 { return w.bits }
