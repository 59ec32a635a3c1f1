package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/32bitkid/huff"
	"github.com/32bitkid/huff/format"
	"github.com/32bitkid/huff/huffman"
	"github.com/32bitkid/huff/render"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var formats = map[string]format.Tag{
	"tree":   format.TreeHeader,
	"counts": format.CountHeader,
}

type options struct {
	decompress bool
	output     string
	printTree  bool
	color      bool
	format     string
	verbose    bool
	logCodes   bool
	input      string
}

func parseFlags(args []string) (options, error) {
	var opts options
	var compress bool

	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.BoolVar(&compress, "c", false, "compress (default)")
	fs.BoolVar(&opts.decompress, "d", false, "decompress")
	fs.StringVar(&opts.output, "o", "", "output file (default stdout)")
	fs.BoolVar(&opts.printTree, "p", false, "print the tree and codes to stderr")
	fs.BoolVar(&opts.color, "color", false, "colour the printed tree by depth")
	fs.StringVar(&opts.format, "format", "tree", "header layout when compressing: tree or counts")
	fs.BoolVar(&opts.verbose, "v", false, "log header and bit counts")
	fs.BoolVar(&opts.logCodes, "vv", false, "also log every code")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if compress && opts.decompress {
		return opts, errors.New("-c and -d are mutually exclusive")
	}
	if _, ok := formats[opts.format]; !ok {
		return opts, errors.Errorf("unknown format %q", opts.format)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.input = fs.Arg(0)
	default:
		return opts, errors.New("at most one input file")
	}
	return opts, nil
}

func newLogger(opts options) (*logrus.Logger, huff.DebugLevel) {
	log := logrus.New()
	log.Out = os.Stderr
	switch {
	case opts.logCodes:
		log.SetLevel(logrus.DebugLevel)
		return log, huff.DebugHigh
	case opts.verbose:
		log.SetLevel(logrus.InfoLevel)
		return log, huff.DebugLow
	}
	log.SetLevel(logrus.WarnLevel)
	return log, huff.DebugNone
}

// openInput returns a seekable view of the input. Stdin cannot be rewound
// for the second compression pass, so it is read into memory.
func openInput(name string) (io.ReadSeeker, func() error, error) {
	if name == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		return bytes.NewReader(data), func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// output writes to a temporary file beside the target and renames it into
// place on commit, so a failed run leaves nothing behind.
type output struct {
	io.Writer
	tmp    *os.File
	target string
}

func createOutput(name string) (*output, error) {
	if name == "" {
		return &output{Writer: os.Stdout}, nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return nil, err
	}
	return &output{Writer: tmp, tmp: tmp, target: name}, nil
}

func (o *output) commit() error {
	if o.tmp == nil {
		return nil
	}
	if err := o.tmp.Close(); err != nil {
		os.Remove(o.tmp.Name())
		return err
	}
	return os.Rename(o.tmp.Name(), o.target)
}

func (o *output) abort() {
	if o.tmp == nil {
		return
	}
	o.tmp.Close()
	os.Remove(o.tmp.Name())
}

func run(opts options) error {
	log, level := newLogger(opts)
	procOpts := []huff.Option{
		huff.WithLogger(log),
		huff.WithDebug(level),
		huff.WithFormat(formats[opts.format]),
	}
	if opts.printTree {
		printer := render.Default
		printer.Color = opts.color
		procOpts = append(procOpts, huff.WithTree(func(root huffman.Node, codes huffman.CodeTable, freq *huffman.Frequencies) {
			printer.Tree(os.Stderr, root)
			printer.Codes(os.Stderr, codes, freq)
		}))
	}
	proc := huff.New(procOpts...)

	in, closeIn, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, err := createOutput(opts.output)
	if err != nil {
		return err
	}

	if opts.decompress {
		_, err = proc.Decompress(in, out)
	} else {
		_, err = proc.Compress(in, out)
	}
	if err != nil {
		out.abort()
		return err
	}
	return out.commit()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "huff: %v\n", err)
		os.Exit(1)
	}
}
