package codec

import (
	"strings"

	"github.com/braillekit/bzp/dict"
	"github.com/braillekit/bzp/encoding"
)

// Compressor applies a contraction dictionary to raw text, producing a
// shorter intermediate string made of braille cells and literal
// characters.
type Compressor struct {
	dict *dict.Dictionary
}

// NewCompressor creates a compressor over the given dictionary.
func NewCompressor(d *dict.Dictionary) *Compressor {
	return &Compressor{dict: d}
}

// Compress substitutes dictionary patterns in text with their cell
// sequences and reports statistics for the invocation.
//
// The text is lower-cased wholesale, then scanned left to right. At each
// position the longest matching pattern is replaced and the scan advances
// by the pattern length; positions with no match emit their character
// unchanged and advance by one. Greedy longest-match-first guarantees no
// pattern is partially consumed by a shorter overlapping one.
//
// Matching is substring-based: a pattern may match inside a larger word
// ("mother" contracts its inner "the"). See dict.Dictionary.LongestMatchAt.
func (c *Compressor) Compress(text string) (string, CompressionStats) {
	lower := strings.ToLower(text)
	runes := []rune(lower)

	var sb strings.Builder
	sb.Grow(len(lower))

	stats := CompressionStats{OriginalSize: len(lower)}

	compressedLen := 0
	for i := 0; i < len(runes); {
		if e := c.dict.LongestMatchAt(runes, i); e != nil {
			sb.WriteString(e.Replacement())
			compressedLen += e.ReplacementLen()
			i += e.PatternLen()
			stats.Replacements++

			continue
		}

		sb.WriteRune(runes[i])
		compressedLen++
		i++
	}

	stats.CompressedSize = compressedLen
	stats.BinarySize = encoding.PackedSize(compressedLen)

	return sb.String(), stats
}
