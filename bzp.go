// Package bzp implements the Braille Binary Encoding codec: dictionary-
// driven contraction of natural-language text into braille cells, and
// tightly packed 6-bit-per-symbol binary serialization of the result, with
// full reversibility back to the (lower-cased) original text.
//
// # Core features
//
//   - Contraction dictionary with greedy longest-match-first substitution
//     and fail-fast construction (duplicate or ambiguous entries are
//     rejected, never silently overwritten)
//   - Bit-level cell packing: n cells occupy exactly ceil(n*6/8) bytes
//   - Self-describing BZP container with symbol count, xxHash64 payload
//     checksum, and optional payload compression (Zstd, S2, LZ4)
//   - Digest rendering: hex fingerprint digests as braille cell sequences
//
// # Basic usage
//
// Compressing and restoring text:
//
//	compressed, stats := bzp.Compress("the cat and the dog")
//	fmt.Printf("%s (%d replacements)\n", compressed, stats.Replacements)
//
//	text := bzp.Decompress(compressed) // "the cat and the dog"
//
// Binary round trip:
//
//	buf, symbolCount, _ := bzp.ToBinary("hello world")
//	text, _ := bzp.FromBinary(buf, symbolCount)
//
// Self-describing containers (no symbol count bookkeeping):
//
//	data, _ := bzp.Encode("hello world", codec.WithCompression(format.CompressionZstd))
//	text, _ := bzp.Decode(data)
//
// # Package structure
//
// This package provides convenient top-level wrappers over a shared
// default dictionary. For private dictionaries (isolated tests, custom
// contraction tables, YAML pattern sources) use the codec and dict
// packages directly.
package bzp

import (
	"sync"

	"github.com/braillekit/bzp/codec"
	"github.com/braillekit/bzp/dict"
	"github.com/braillekit/bzp/digest"
)

var (
	defaultOnce     sync.Once
	defaultPipeline *codec.Pipeline
)

// Default returns the process-wide pipeline over the built-in contraction
// dictionary. It is built lazily on first use and read-only afterwards, so
// it is safe to share across concurrent callers.
func Default() *codec.Pipeline {
	defaultOnce.Do(func() {
		p, err := codec.NewPipeline(dict.Default())
		if err != nil {
			// NewPipeline without options cannot fail; reaching this means
			// the default configuration itself is broken.
			panic("bzp: default pipeline: " + err.Error())
		}
		defaultPipeline = p
	})

	return defaultPipeline
}

// Compress substitutes dictionary contractions in text and returns the
// compressed form with its statistics. The input is case-folded; see
// codec.Compressor.Compress.
func Compress(text string) (string, codec.CompressionStats) {
	return Default().Compress(text)
}

// Decompress restores text from its compressed form. For output of
// Compress the result is the lower-cased original.
func Decompress(compressed string) string {
	return Default().Decompress(compressed)
}

// ToBinary compresses text and packs it into a 6-bit-per-symbol buffer,
// returning the buffer and its symbol count. The count is required to
// unpack; callers that do not want to track it should use Encode instead.
func ToBinary(text string) ([]byte, int, error) {
	return Default().ToBinary(text)
}

// FromBinary unpacks symbolCount cells from buf and restores the original
// (lower-cased) text.
func FromBinary(buf []byte, symbolCount int) (string, error) {
	return Default().FromBinary(buf, symbolCount)
}

// AnalyzeCompression reports compression statistics for text without
// retaining the compressed form.
func AnalyzeCompression(text string) codec.CompressionStats {
	return Default().Analyze(text)
}

// Encode compresses text into a self-describing BZP container. Options
// configure the container, e.g. codec.WithCompression.
func Encode(text string, opts ...codec.Option) ([]byte, error) {
	if len(opts) == 0 {
		return Default().Encode(text)
	}

	p, err := codec.NewPipeline(dict.Default(), opts...)
	if err != nil {
		return nil, err
	}

	return p.Encode(text)
}

// Decode validates a BZP container and restores the original (lower-cased)
// text.
func Decode(data []byte) (string, error) {
	return Default().Decode(data)
}

// EncodeDigest renders a hex fingerprint digest as braille cells. Non-hex
// characters pass through unchanged.
func EncodeDigest(hexDigest string) string {
	return digest.Encode(hexDigest)
}

// DecodeDigest restores the lower-case hex digest from its braille
// rendering, rejecting sequences outside the digest table.
func DecodeDigest(cells string) (string, error) {
	return digest.Decode(cells)
}
