package huff

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
	"testing/iotest"

	"github.com/32bitkid/huff/format"
	"github.com/32bitkid/huff/huffman"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestProcessorRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	data := make([]byte, 64*1024)
	for i := range data {
		data[i] = byte(rnd.NormFloat64()*20 + 128)
	}

	for _, tag := range []format.Tag{format.TreeHeader, format.CountHeader} {
		t.Run(tag.String(), func(t *testing.T) {
			p := New(WithFormat(tag))

			var packed bytes.Buffer
			cs, err := p.Compress(bytes.NewReader(data), &packed)
			require.NoError(t, err)
			require.Less(t, packed.Len(), len(data))
			require.Equal(t, int64(2*8*len(data)), cs.BitsRead)
			require.Equal(t, (cs.BitsWritten+7)/8, int64(packed.Len()))

			var out bytes.Buffer
			ds, err := p.Decompress(bytes.NewReader(packed.Bytes()), &out)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, out.Bytes()))
			require.Equal(t, int64(8*len(data)), ds.BitsWritten)
			require.Equal(t, cs.BitsWritten, ds.BitsRead)
		})
	}
}

func TestProcessorEmpty(t *testing.T) {
	p := New()
	var packed bytes.Buffer
	_, err := p.Compress(bytes.NewReader(nil), &packed)
	require.NoError(t, err)
	require.Equal(t, []byte{0xfa, 0xce, 0x82, 0x01, 0xc0, 0x00}, packed.Bytes())

	var out bytes.Buffer
	_, err = p.Decompress(&packed, &out)
	require.NoError(t, err)
	require.Zero(t, out.Len())
}

func TestProcessorCorruptTag(t *testing.T) {
	var out bytes.Buffer
	_, err := New().Decompress(bytes.NewReader([]byte("not a huffman stream")), &out)
	require.True(t, errors.Is(err, format.ErrFormat), "got %v", err)
	require.Zero(t, out.Len())
}

func TestProcessorTruncated(t *testing.T) {
	p := New()
	var packed bytes.Buffer
	_, err := p.Compress(bytes.NewReader(bytes.Repeat([]byte("truncate me "), 50)), &packed)
	require.NoError(t, err)

	cut := packed.Bytes()[:packed.Len()-1]
	_, err = p.Decompress(bytes.NewReader(cut), &bytes.Buffer{})
	require.True(t, errors.Is(err, huffman.ErrTruncatedStream), "got %v", err)
}

func TestProcessorLogging(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	p := New(WithLogger(log), WithDebug(DebugLow))
	_, err := p.Compress(bytes.NewReader([]byte{0x41, 0x41, 0x42}), &bytes.Buffer{})
	require.NoError(t, err)

	var messages []string
	for _, e := range hook.AllEntries() {
		require.Equal(t, logrus.InfoLevel, e.Level)
		messages = append(messages, e.Message)
	}
	require.Equal(t, []string{"format Tag(TreeHeader) (0xface8201)", "counted symbols", "header", "bits"}, messages)

	header := hook.AllEntries()[2]
	require.Equal(t, int64(32+32), header.Data["bits"])
	require.Equal(t, 3, header.Data["leaves"])

	bits := hook.LastEntry()
	require.Equal(t, int64(2*24), bits.Data["read"])
	require.Equal(t, int64(32+32+6), bits.Data["written"])

	hook.Reset()
	p = New(WithLogger(log), WithDebug(DebugHigh))
	_, err = p.Compress(bytes.NewReader([]byte{0x41, 0x41, 0x42}), &bytes.Buffer{})
	require.NoError(t, err)

	codes := map[interface{}]interface{}{}
	for _, e := range hook.AllEntries() {
		if e.Message == "code" {
			require.Equal(t, logrus.DebugLevel, e.Level)
			codes[e.Data["symbol"]] = e.Data["code"]
		}
	}
	require.Equal(t, map[interface{}]interface{}{"'A'": "0", "'B'": "10", "EOS": "11"}, codes)
}

func TestProcessorQuiet(t *testing.T) {
	log, hook := test.NewNullLogger()
	_, err := New(WithLogger(log)).Compress(bytes.NewReader([]byte("quiet")), &bytes.Buffer{})
	require.NoError(t, err)
	require.Empty(t, hook.AllEntries())
}

func TestProcessorTreeHook(t *testing.T) {
	var seen []huffman.CodeTable
	p := New(WithTree(func(root huffman.Node, codes huffman.CodeTable, freq *huffman.Frequencies) {
		seen = append(seen, codes)
	}))

	var packed bytes.Buffer
	_, err := p.Compress(bytes.NewReader([]byte("hook")), &packed)
	require.NoError(t, err)
	_, err = p.Decompress(&packed, &bytes.Buffer{})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	require.Equal(t, seen[0], seen[1])
}

// lastReadEOF returns its final bytes together with io.EOF, as
// compress/gzip does.
type lastReadEOF struct {
	*bytes.Reader
}

func (r lastReadEOF) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if err == nil && r.Len() == 0 {
		err = io.EOF
	}
	return n, err
}

func TestProcessorDataWithEOF(t *testing.T) {
	data := []byte("hello, data arrives with io.EOF in the same read")
	p := New()

	var packed bytes.Buffer
	_, err := p.Compress(lastReadEOF{bytes.NewReader(data)}, &packed)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = p.Decompress(iotest.DataErrReader(bytes.NewReader(packed.Bytes())), &out)
	require.NoError(t, err)
	require.Equal(t, data, out.Bytes())
}
