package huffman

import "github.com/pkg/errors"

// Frequencies counts occurrences of every symbol. The Marker slot is always 1
// after CountFrequencies.
type Frequencies [SymbolCount]uint64

// CountFrequencies reads 8-bit words from src until the end of input and
// tallies them. src is left exhausted; rewind it before reading it again.
func CountFrequencies(src Source) (*Frequencies, error) {
	var freq Frequencies
	for {
		word, err := src.ReadBits(BitsPerWord)
		if isEndOfInput(err) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		freq[word]++
	}
	freq[Marker] = 1
	return &freq, nil
}

// Total is the number of literal bytes counted.
func (f *Frequencies) Total() (n uint64) {
	for sym := 0; sym < AlphabetSize; sym++ {
		n += f[sym]
	}
	return n
}

// Distinct is the number of symbols, Marker included, with a nonzero count.
func (f *Frequencies) Distinct() (n int) {
	for _, count := range f {
		if count != 0 {
			n++
		}
	}
	return n
}
