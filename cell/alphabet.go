// Package cell defines the 64-value braille symbol alphabet used throughout bzp.
//
// A Symbol is one 6-dot braille cell, backed by 6 bits of information.
// Bit n of the value corresponds to braille dot n+1 (dot 1 = 0x01 through
// dot 6 = 0x20), matching the layout of the Unicode braille block: symbol
// value v renders as codepoint U+2800+v.
//
// The package provides three mappings:
//
//   - Symbol <-> braille codepoint (Rune / FromRune), a total bijection over
//     the 64 contiguous codepoints U+2800..U+283F
//   - Symbol <-> literal character (LiteralCell / LiteralRune), covering the
//     characters that may appear literally in compressed text: lowercase
//     a-z, space, and common punctuation
//   - Symbol <-> dot-number notation (Dots / FromDots), used by external
//     dictionary tables and tests
//
// All mappings are fixed tables with no state; every function in this
// package is safe for concurrent use.
package cell

import (
	"fmt"

	"github.com/braillekit/bzp/errs"
)

// Symbol is one braille cell: an integer in [0, 63] of which only the low
// 6 bits are meaningful.
type Symbol uint8

const (
	// Base is the first codepoint of the Unicode 6-dot braille block.
	Base rune = 0x2800

	// Max is the largest valid symbol value.
	Max Symbol = 0x3F

	// AlphabetSize is the number of symbols in the alphabet.
	AlphabetSize = 64

	// Blank is the empty cell; it renders the space character.
	Blank Symbol = 0x00
)

// Rune returns the braille codepoint for s.
//
// Bits above the low six are masked off before conversion, so Rune is total
// over all Symbol values and always produces a codepoint inside the block.
func (s Symbol) Rune() rune {
	return Base + rune(s&Max)
}

// Valid reports whether s lies within the 6-bit alphabet.
func (s Symbol) Valid() bool {
	return s <= Max
}

// String returns the cell rendered as its braille codepoint.
func (s Symbol) String() string {
	return string(s.Rune())
}

// FromRune returns the symbol for a braille codepoint.
//
// ok is false for codepoints outside [Base, Base+63]. Callers decide whether
// an out-of-range codepoint is a literal character (pass-through) or a
// malformed-input error; this function never guesses.
func FromRune(r rune) (Symbol, bool) {
	if r < Base || r > Base+rune(Max) {
		return 0, false
	}

	return Symbol(r - Base), true
}

// Dots returns the ascending dot-number notation for s, e.g. "2346" for the
// cell rendering U+282E. The blank cell returns "0".
func (s Symbol) Dots() string {
	s &= Max
	if s == 0 {
		return "0"
	}

	var buf [6]byte
	n := 0
	for d := 0; d < 6; d++ {
		if s&(1<<d) != 0 {
			buf[n] = '1' + byte(d)
			n++
		}
	}

	return string(buf[:n])
}

// FromDots parses dot-number notation into a symbol.
//
// The input lists the raised dots in any order using digits 1-6, e.g. "145"
// for the letter d. The string "0" denotes the blank cell. Empty strings,
// digits outside 1-6, and repeated dots yield errs.ErrInvalidDots.
func FromDots(dots string) (Symbol, error) {
	if dots == "" {
		return 0, fmt.Errorf("empty dot string: %w", errs.ErrInvalidDots)
	}
	if dots == "0" {
		return Blank, nil
	}

	var s Symbol
	for i := 0; i < len(dots); i++ {
		c := dots[i]
		if c < '1' || c > '6' {
			return 0, fmt.Errorf("dot %q in %q: %w", c, dots, errs.ErrInvalidDots)
		}

		bit := Symbol(1) << (c - '1')
		if s&bit != 0 {
			return 0, fmt.Errorf("repeated dot %q in %q: %w", c, dots, errs.ErrInvalidDots)
		}
		s |= bit
	}

	return s, nil
}
