// Package render prints Huffman trees and code tables for people. Depth is
// shown as a colour running from Short (the root) to Long (the deepest leaf).
package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"

	"github.com/32bitkid/huff/huffman"
)

type Printer struct {
	Color bool
	Short color.Color
	Long  color.Color
}

var Default = Printer{
	Short: rgb(0x55, 0xFF, 0x55),
	Long:  rgb(0xFF, 0x55, 0x55),
}

const indent = "    "

type treeWriter struct {
	Printer
	w        *bufio.Writer
	maxDepth int
}

// Tree draws root sideways: left subtrees above their parent, right subtrees
// below.
func (p Printer) Tree(w io.Writer, root huffman.Node) error {
	tw := treeWriter{
		Printer:  p,
		w:        bufio.NewWriter(w),
		maxDepth: huffman.Depth(root),
	}
	tw.node(root, 0, "-")
	return tw.w.Flush()
}

func (tw *treeWriter) node(n huffman.Node, depth int, edge string) {
	switch n := n.(type) {
	case *huffman.Internal:
		tw.node(n.Left, depth+1, "/")
		tw.line(depth, edge+"--<", false)
		tw.node(n.Right, depth+1, "\\")
	case *huffman.Leaf:
		tw.line(depth, edge+"--"+Symbol(n.Symbol), true)
	}
}

func (tw *treeWriter) line(depth int, s string, leaf bool) {
	tw.w.WriteString(strings.Repeat(indent, depth))
	tw.w.WriteString(tw.paint(depth, tw.maxDepth, s, leaf))
	tw.w.WriteByte('\n')
}

func (p Printer) paint(depth, maxDepth int, s string, leaf bool) string {
	if !p.Color {
		return s
	}
	t := 0.0
	if maxDepth > 0 {
		t = float64(depth) / float64(maxDepth)
	}
	c := rgbMix(p.Short, p.Long, t)
	if leaf {
		c = lighten(c, 0.15)
	}
	return ansi(c, s)
}

// Codes lists every coded symbol in ascending order with its count, when freq
// is not nil, and its code. Codes are coloured by length.
func (p Printer) Codes(w io.Writer, codes huffman.CodeTable, freq *huffman.Frequencies) error {
	symbols := make([]int, 0, len(codes))
	maxLen := 0
	for sym, code := range codes {
		symbols = append(symbols, int(sym))
		if len(code) > maxLen {
			maxLen = len(code)
		}
	}
	sort.Ints(symbols)

	bw := bufio.NewWriter(w)
	for _, sym := range symbols {
		code := codes[huffman.Symbol(sym)]
		if freq != nil {
			fmt.Fprintf(bw, "%-6s %10d  ", Symbol(huffman.Symbol(sym)), freq[sym])
		} else {
			fmt.Fprintf(bw, "%-6s  ", Symbol(huffman.Symbol(sym)))
		}
		bw.WriteString(p.paint(len(code), maxLen, code, true))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Symbol formats a symbol for display: printable ASCII quoted, other bytes in
// hex, the end-of-stream marker as EOS.
func Symbol(sym huffman.Symbol) string {
	switch {
	case sym == huffman.Marker:
		return "EOS"
	case sym >= 0x21 && sym < 0x7f:
		return fmt.Sprintf("%q", rune(sym))
	}
	return fmt.Sprintf("0x%02x", uint16(sym))
}
