package huffman

import (
	"io"

	"github.com/pkg/errors"
)

var (
	ErrTruncatedHeader = errors.New("huffman: truncated tree header")
	ErrTruncatedStream = errors.New("huffman: bad input, no end-of-stream marker")
	ErrMalformedHeader = errors.New("huffman: malformed tree header")
	ErrUnknownSymbol   = errors.New("huffman: symbol has no code")
	ErrCountOverflow   = errors.New("huffman: count does not fit the header")
)

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// truncated maps the end of input onto sentinel and passes any other read
// failure through untouched.
func truncated(err error, sentinel error) error {
	if isEndOfInput(err) {
		return sentinel
	}
	return errors.WithStack(err)
}
