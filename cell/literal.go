package cell

// literalCells maps the characters that may appear literally in compressed
// text to their standard braille cells: lowercase a-z, space, and the
// punctuation signs of literary braille. Digits are deliberately absent;
// braille renders them with a number-sign prefix, which belongs to the
// digest encoder, not to literal text.
var literalCells = map[rune]Symbol{
	' ': 0x00,

	'a': 0x01, 'b': 0x03, 'c': 0x09, 'd': 0x19, 'e': 0x11,
	'f': 0x0B, 'g': 0x1B, 'h': 0x13, 'i': 0x0A, 'j': 0x1A,
	'k': 0x05, 'l': 0x07, 'm': 0x0D, 'n': 0x1D, 'o': 0x15,
	'p': 0x0F, 'q': 0x1F, 'r': 0x17, 's': 0x0E, 't': 0x1E,
	'u': 0x25, 'v': 0x27, 'w': 0x3A, 'x': 0x2D, 'y': 0x3D,
	'z': 0x35,

	',': 0x02, ';': 0x06, '\'': 0x04, ':': 0x12,
	'-': 0x24, '.': 0x32, '!': 0x16, '?': 0x26,
}

// literalRunes is the exact inverse of literalCells, indexed by symbol
// value. A zero entry means the cell is not a literal cell, except index 0
// which is the space character.
var literalRunes = func() [AlphabetSize]rune {
	var inv [AlphabetSize]rune
	for r, s := range literalCells {
		inv[s] = r
	}

	return inv
}()

// LiteralCell returns the braille cell for a literal character.
//
// ok is false when the character has no cell in the literal table; such a
// character can survive text-level compression unchanged but cannot be
// packed into binary form.
func LiteralCell(r rune) (Symbol, bool) {
	s, ok := literalCells[r]
	return s, ok
}

// LiteralRune returns the literal character rendered by cell s.
//
// ok is false when s is not a literal cell. The cell may still be
// meaningful as a contraction replacement; that lookup belongs to the
// dictionary, not to this table.
func LiteralRune(s Symbol) (rune, bool) {
	if s > Max {
		return 0, false
	}
	if s == Blank {
		return ' ', true
	}

	r := literalRunes[s]
	if r == 0 {
		return 0, false
	}

	return r, true
}
