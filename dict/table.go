package dict

import (
	"sync"

	"github.com/braillekit/bzp/cell"
)

// suffixPrefix is the dots-56 cell that introduces every two-cell suffix
// contraction. It is not a literal cell and never appears as a standalone
// replacement, which is what keeps the inverse scan unambiguous.
const suffixPrefix cell.Symbol = 0x30

// builtinEntries is the default contraction table: the UEB strong
// contractions and groupsigns as single cells, plus a few two-cell suffix
// contractions. Every single-cell replacement is disjoint from the literal
// table; New verifies this on every build.
var builtinEntries = []Entry{
	{Pattern: "and", Cells: []cell.Symbol{0x2F}},  // dots 12346
	{Pattern: "ar", Cells: []cell.Symbol{0x1C}},   // dots 345
	{Pattern: "ch", Cells: []cell.Symbol{0x21}},   // dots 16
	{Pattern: "ed", Cells: []cell.Symbol{0x2B}},   // dots 1246
	{Pattern: "en", Cells: []cell.Symbol{0x22}},   // dots 26
	{Pattern: "er", Cells: []cell.Symbol{0x3B}},   // dots 12456
	{Pattern: "for", Cells: []cell.Symbol{0x3F}},  // dots 123456
	{Pattern: "gh", Cells: []cell.Symbol{0x23}},   // dots 126
	{Pattern: "in", Cells: []cell.Symbol{0x14}},   // dots 35
	{Pattern: "ing", Cells: []cell.Symbol{0x2C}},  // dots 346
	{Pattern: "of", Cells: []cell.Symbol{0x37}},   // dots 12356
	{Pattern: "ou", Cells: []cell.Symbol{0x33}},   // dots 1256
	{Pattern: "ow", Cells: []cell.Symbol{0x2A}},   // dots 246
	{Pattern: "sh", Cells: []cell.Symbol{0x29}},   // dots 146
	{Pattern: "st", Cells: []cell.Symbol{0x0C}},   // dots 34
	{Pattern: "th", Cells: []cell.Symbol{0x39}},   // dots 1456
	{Pattern: "the", Cells: []cell.Symbol{0x2E}},  // dots 2346
	{Pattern: "wh", Cells: []cell.Symbol{0x31}},   // dots 156
	{Pattern: "with", Cells: []cell.Symbol{0x3E}}, // dots 23456

	{Pattern: "ment", Cells: []cell.Symbol{suffixPrefix, 0x1E}},
	{Pattern: "ness", Cells: []cell.Symbol{suffixPrefix, 0x0E}},
	{Pattern: "tion", Cells: []cell.Symbol{suffixPrefix, 0x1D}},
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the process-wide dictionary built from the built-in
// contraction table. It is constructed lazily on first use and shared
// read-only afterwards; callers that need an isolated table build their
// own with New.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := New(builtinEntries)
		if err != nil {
			// The built-in table is validated by tests; failing here means
			// the table itself was edited into an invalid state.
			panic("dict: built-in contraction table is invalid: " + err.Error())
		}
		defaultDict = d
	})

	return defaultDict
}
