package bzp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braillekit/bzp/codec"
	"github.com/braillekit/bzp/errs"
	"github.com/braillekit/bzp/format"
)

func TestCompressDecompress(t *testing.T) {
	compressed, stats := Compress("the cat and the dog")

	require.Equal(t, 3, stats.Replacements)
	require.Less(t, len([]rune(compressed)), len("the cat and the dog"))
	require.Equal(t, "the cat and the dog", Decompress(compressed))
}

func TestCompress_NoMatches(t *testing.T) {
	compressed, stats := Compress("xyz")

	require.Equal(t, "xyz", compressed)
	require.Zero(t, stats.Replacements)
	require.InDelta(t, 1.0, stats.CompressionRatio(), 1e-9)
}

func TestBinaryRoundTrip(t *testing.T) {
	buf, symbolCount, err := ToBinary("hello world")
	require.NoError(t, err)

	restored, err := FromBinary(buf, symbolCount)
	require.NoError(t, err)
	require.Equal(t, "hello world", restored)
}

func TestBinaryRoundTrip_CaseFolded(t *testing.T) {
	text := "The Mother Nation Stands With The People"

	buf, symbolCount, err := ToBinary(text)
	require.NoError(t, err)

	restored, err := FromBinary(buf, symbolCount)
	require.NoError(t, err)
	require.Equal(t, strings.ToLower(text), restored)
}

func TestAnalyzeCompression(t *testing.T) {
	stats := AnalyzeCompression("the cat and the dog")

	require.Equal(t, 19, stats.OriginalSize)
	require.Equal(t, 3, stats.Replacements)
	require.Greater(t, stats.SavingsPercent(), 0.0)
}

func TestEncodeDecode_Container(t *testing.T) {
	data, err := Encode("the cat and the dog")
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, "the cat and the dog", restored)
}

func TestEncodeDecode_WithCompression(t *testing.T) {
	data, err := Encode("the cat and the dog", codec.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, "the cat and the dog", restored)
}

func TestEncode_InvalidOption(t *testing.T) {
	_, err := Encode("hello", codec.WithCompression(format.CompressionType(0x7F)))
	require.Error(t, err)
}

func TestDigestRoundTrip(t *testing.T) {
	rendered := EncodeDigest("d41d8cd98f00b204e9800998ecf8427e")
	require.Equal(t, rendered, EncodeDigest("d41d8cd98f00b204e9800998ecf8427e"))

	restored, err := DecodeDigest(rendered)
	require.NoError(t, err)
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", restored)
}

func TestDecodeDigest_Unparseable(t *testing.T) {
	_, err := DecodeDigest("⠺") // the cell for "w", not in the digest table
	require.ErrorIs(t, err, errs.ErrUnknownSequence)
}

func TestDefault_Shared(t *testing.T) {
	require.Same(t, Default(), Default())
}
