package codec

import (
	"strings"

	"github.com/braillekit/bzp/cell"
	"github.com/braillekit/bzp/dict"
)

// Decompressor restores original text from the intermediate form produced
// by a Compressor over the same dictionary.
type Decompressor struct {
	dict *dict.Dictionary
}

// NewDecompressor creates a decompressor over the given dictionary.
func NewDecompressor(d *dict.Dictionary) *Decompressor {
	return &Decompressor{dict: d}
}

// Decompress scans the intermediate text left to right and inverts each
// codepoint class:
//
//   - a contraction replacement sequence emits its pattern and advances
//     past the full replacement length (multi-cell contractions span more
//     than one codepoint)
//   - a literal braille cell emits the character it renders
//   - anything else passes through unchanged
//
// For input produced by Compress over the same dictionary the result is
// the lower-cased original text; case folding makes this a near-round-trip
// rather than a strict one.
func (d *Decompressor) Decompress(compressed string) string {
	runes := []rune(compressed)

	var sb strings.Builder
	sb.Grow(len(runes))

	for i := 0; i < len(runes); {
		if e := d.dict.InverseAt(runes, i); e != nil {
			sb.WriteString(e.Pattern)
			i += e.ReplacementLen()

			continue
		}

		if s, ok := cell.FromRune(runes[i]); ok {
			if r, ok := cell.LiteralRune(s); ok {
				sb.WriteRune(r)
				i++

				continue
			}
		}

		sb.WriteRune(runes[i])
		i++
	}

	return sb.String()
}
