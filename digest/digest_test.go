package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braillekit/bzp/cell"
	"github.com/braillekit/bzp/errs"
)

func TestEncode_Deterministic(t *testing.T) {
	out := Encode("a1")
	require.Equal(t, out, Encode("a1"))
	// "a" is a two-cell sequence, "1" a single cell.
	require.Equal(t, 3, len([]rune(out)))
}

func TestEncode_CaseInsensitive(t *testing.T) {
	require.Equal(t, Encode("deadbeef"), Encode("DEADBEEF"))
}

func TestEncode_PassThrough(t *testing.T) {
	// Non-hex characters survive unchanged, e.g. separator colons.
	out := Encode("a1:b2")
	require.Contains(t, out, ":")

	restored, err := Decode(out)
	require.NoError(t, err)
	require.Equal(t, "a1:b2", restored)
}

func TestDecode_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"0",
		"a1",
		"0123456789abcdef",
		"d41d8cd98f00b204e9800998ecf8427e",
		"FFFF",
		"A1B2C3",
	}

	for _, digest := range tests {
		restored, err := Decode(Encode(digest))
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(digest), restored, "digest %q", digest)
	}
}

func TestDecode_UnknownSingleCell(t *testing.T) {
	// The cell for "w" is not in the digest table.
	_, err := Decode(cell.Symbol(0x3A).String())
	require.ErrorIs(t, err, errs.ErrUnknownSequence)
}

func TestDecode_DanglingNumberSign(t *testing.T) {
	_, err := Decode(numberSign.String())
	require.ErrorIs(t, err, errs.ErrUnknownSequence)
}

func TestDecode_NumberSignBeforeInvalidCell(t *testing.T) {
	// Number sign followed by a cell outside a-f.
	seq := numberSign.String() + cell.Symbol(0x3A).String()
	_, err := Decode(seq)
	require.ErrorIs(t, err, errs.ErrUnknownSequence)

	// Number sign followed by a non-braille rune.
	_, err = Decode(numberSign.String() + "x")
	require.ErrorIs(t, err, errs.ErrUnknownSequence)
}

func TestDecode_PassThrough(t *testing.T) {
	restored, err := Decode("::")
	require.NoError(t, err)
	require.Equal(t, "::", restored)
}

func TestNibbleTable_Injective(t *testing.T) {
	seen := make(map[string]int, 16)
	for n, cells := range nibbleCells {
		var sb strings.Builder
		for _, s := range cells {
			sb.WriteRune(s.Rune())
		}

		prev, dup := seen[sb.String()]
		require.False(t, dup, "nibbles %x and %x share a sequence", prev, n)
		seen[sb.String()] = n
	}
}
