package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braillekit/bzp/cell"
	"github.com/braillekit/bzp/errs"
)

const samplePatternSource = `
contractions:
  - pattern: the
    dots: ["2346"]
  - pattern: and
    dots: ["12346"]
  - pattern: tion
    dots: ["56", "1345"]
`

func TestLoadYAML_MatchesCodeTable(t *testing.T) {
	loaded, err := LoadYAML(strings.NewReader(samplePatternSource))
	require.NoError(t, err)

	built, err := New([]Entry{
		{Pattern: "the", Cells: []cell.Symbol{0x2E}},
		{Pattern: "and", Cells: []cell.Symbol{0x2F}},
		{Pattern: "tion", Cells: []cell.Symbol{0x30, 0x1D}},
	})
	require.NoError(t, err)

	require.Equal(t, built.Len(), loaded.Len())
	for i, e := range built.Entries() {
		le := loaded.Entries()[i]
		require.Equal(t, e.Pattern, le.Pattern)
		require.Equal(t, e.Cells, le.Cells)
	}
}

func TestLoadYAML_InvalidDots(t *testing.T) {
	src := `
contractions:
  - pattern: the
    dots: ["8"]
`
	_, err := LoadYAML(strings.NewReader(src))
	require.ErrorIs(t, err, errs.ErrInvalidDots)
}

func TestLoadYAML_ValidationApplies(t *testing.T) {
	src := `
contractions:
  - pattern: the
    dots: ["2346"]
  - pattern: the
    dots: ["12346"]
`
	_, err := LoadYAML(strings.NewReader(src))
	require.ErrorIs(t, err, errs.ErrDuplicatePattern)
}

func TestLoadYAML_Malformed(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("contractions: [not a mapping"))
	require.Error(t, err)
}
