package codec

import (
	"fmt"
	"strings"

	"github.com/braillekit/bzp/cell"
	"github.com/braillekit/bzp/dict"
	"github.com/braillekit/bzp/encoding"
	"github.com/braillekit/bzp/errs"
	"github.com/braillekit/bzp/format"
)

// Pipeline orchestrates substitution and packing in both directions and
// carries the container configuration.
//
// A pipeline holds only read-only state (the dictionary and options) and
// is safe for concurrent use. The dictionary is injected, never a process
// global; tests construct private dictionaries to stay isolated.
type Pipeline struct {
	dict         *dict.Dictionary
	compressor   *Compressor
	decompressor *Decompressor
	compression  format.CompressionType
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithCompression selects the byte-level compression applied to container
// payloads. The default is format.CompressionNone.
func WithCompression(t format.CompressionType) Option {
	return func(p *Pipeline) error {
		if !t.Valid() {
			return fmt.Errorf("invalid payload compression: %s", t)
		}
		p.compression = t

		return nil
	}
}

// NewPipeline creates a pipeline over the given dictionary.
func NewPipeline(d *dict.Dictionary, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		dict:         d,
		compressor:   NewCompressor(d),
		decompressor: NewDecompressor(d),
		compression:  format.CompressionNone,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Compress applies dictionary substitution to text. See Compressor.Compress.
func (p *Pipeline) Compress(text string) (string, CompressionStats) {
	return p.compressor.Compress(text)
}

// Decompress restores text from its intermediate form. See
// Decompressor.Decompress.
func (p *Pipeline) Decompress(compressed string) string {
	return p.decompressor.Decompress(compressed)
}

// ToBinary compresses text and packs the result into a 6-bit-per-symbol
// buffer, returning the buffer and the symbol count the caller must retain
// to unpack it (see encoding.Unpack for why the count cannot be inferred).
//
// Every codepoint of the intermediate form must map to a cell: braille
// codepoints map directly, literal characters through the literal table.
// A character with neither mapping (digits, most symbols) yields
// errs.ErrUnsupportedRune.
func (p *Pipeline) ToBinary(text string) ([]byte, int, error) {
	intermediate, _ := p.compressor.Compress(text)

	symbols, err := intermediateToSymbols(intermediate)
	if err != nil {
		return nil, 0, err
	}

	return encoding.Pack(symbols), len(symbols), nil
}

// FromBinary unpacks symbolCount cells from buf and restores the original
// (lower-cased) text.
func (p *Pipeline) FromBinary(buf []byte, symbolCount int) (string, error) {
	symbols, err := encoding.Unpack(buf, symbolCount)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteRune(s.Rune())
	}

	return p.decompressor.Decompress(sb.String()), nil
}

// Analyze compresses text and returns its statistics without retaining the
// compressed form. Reporting only; never used for control flow.
func (p *Pipeline) Analyze(text string) CompressionStats {
	_, stats := p.compressor.Compress(text)
	return stats
}

// intermediateToSymbols converts an intermediate string to its cell
// sequence: braille codepoints directly, literal characters through the
// literal table.
func intermediateToSymbols(intermediate string) ([]cell.Symbol, error) {
	runes := []rune(intermediate)

	symbols := make([]cell.Symbol, len(runes))
	for i, r := range runes {
		if s, ok := cell.FromRune(r); ok {
			symbols[i] = s
			continue
		}

		s, ok := cell.LiteralCell(r)
		if !ok {
			return nil, fmt.Errorf("%q at codepoint %d: %w", r, i, errs.ErrUnsupportedRune)
		}
		symbols[i] = s
	}

	return symbols, nil
}
