package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braillekit/bzp/encoding"
	"github.com/braillekit/bzp/errs"
	"github.com/braillekit/bzp/format"
)

func TestToBinary_PurePackingRoundTrip(t *testing.T) {
	p := defaultPipeline(t)

	// No dictionary entry matches "hello world", so this exercises the
	// literal table and the packer alone.
	buf, symbolCount, err := p.ToBinary("hello world")
	require.NoError(t, err)
	require.Equal(t, 11, symbolCount)
	require.Len(t, buf, encoding.PackedSize(11))

	restored, err := p.FromBinary(buf, symbolCount)
	require.NoError(t, err)
	require.Equal(t, "hello world", restored)
}

func TestToBinary_WithContractions(t *testing.T) {
	p := defaultPipeline(t)

	text := "the cat and the dog"
	buf, symbolCount, err := p.ToBinary(text)
	require.NoError(t, err)
	require.Less(t, symbolCount, len(text))

	restored, err := p.FromBinary(buf, symbolCount)
	require.NoError(t, err)
	require.Equal(t, text, restored)
}

func TestToBinary_RoundTripCaseFolded(t *testing.T) {
	p := defaultPipeline(t)

	tests := []string{
		"Hello World",
		"The Nation's Motherhood Movement!",
		"what you see is what you get",
		"",
	}

	for _, text := range tests {
		buf, symbolCount, err := p.ToBinary(text)
		require.NoError(t, err)

		restored, err := p.FromBinary(buf, symbolCount)
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(text), restored, "text %q", text)
	}
}

func TestToBinary_UnsupportedRune(t *testing.T) {
	p := defaultPipeline(t)

	for _, text := range []string{"room 101", "a@b", "snow☃man"} {
		_, _, err := p.ToBinary(text)
		require.ErrorIs(t, err, errs.ErrUnsupportedRune, "text %q", text)
	}
}

func TestFromBinary_TruncatedBuffer(t *testing.T) {
	p := defaultPipeline(t)

	buf, symbolCount, err := p.ToBinary("hello")
	require.NoError(t, err)

	_, err = p.FromBinary(buf[:len(buf)-1], symbolCount)
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}

func TestAnalyze(t *testing.T) {
	p := defaultPipeline(t)

	stats := p.Analyze("the cat and the dog")

	require.Equal(t, 19, stats.OriginalSize)
	require.Equal(t, 13, stats.CompressedSize)
	require.Equal(t, encoding.PackedSize(13), stats.BinarySize)
	require.Equal(t, 3, stats.Replacements)
	require.Greater(t, stats.SavingsPercent(), 0.0)
	require.Less(t, stats.BinaryRatio(), stats.CompressionRatio())
}

func TestNewPipeline_InvalidOption(t *testing.T) {
	_, err := NewPipeline(defaultPipeline(t).dict, WithCompression(format.CompressionType(0x7F)))
	require.Error(t, err)
}
