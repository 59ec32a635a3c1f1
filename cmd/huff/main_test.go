package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/32bitkid/huff/format"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-d", "-o", "out.txt", "-format", "counts", "-v", "in.huf"})
	require.NoError(t, err)
	require.True(t, opts.decompress)
	require.Equal(t, "out.txt", opts.output)
	require.Equal(t, "in.huf", opts.input)
	require.Equal(t, format.CountHeader, formats[opts.format])
	require.True(t, opts.verbose)

	_, err = parseFlags([]string{"-c", "-d"})
	require.Error(t, err)
	_, err = parseFlags([]string{"-format", "lzw"})
	require.Error(t, err)
	_, err = parseFlags([]string{"a", "b"})
	require.Error(t, err)
}

func TestRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	packed := filepath.Join(dir, "plain.huf")
	restored := filepath.Join(dir, "restored.txt")
	data := []byte("a file on disk, compressed and restored through the command line\n")
	require.NoError(t, os.WriteFile(plain, data, 0644))

	require.NoError(t, run(options{input: plain, output: packed, format: "tree"}))
	require.NoError(t, run(options{input: packed, output: restored, format: "tree", decompress: true}))

	out, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestRunFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus.huf")
	target := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(bogus, []byte("definitely not compressed"), 0644))

	require.Error(t, run(options{input: bogus, output: target, format: "tree", decompress: true}))

	_, err := os.Stat(target)
	require.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
