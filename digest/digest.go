// Package digest renders hexadecimal hash digests as braille cell
// sequences for compact or tactile display of device and session
// fingerprints.
//
// The mapping is a fixed 16-entry table over the same 64-cell alphabet the
// compression codec uses, but it is independent of the contraction
// dictionary: no matching or search is involved. Decimal nibbles follow
// the braille digit convention (1-9 are the letters a-i, 0 is j); nibbles
// A-F are two-cell sequences introduced by the braille number sign, which
// keeps every sequence self-delimiting for the inverse scan.
//
// Digests are produced by an external hashing collaborator; this package
// only renders them.
package digest

import (
	"fmt"
	"strings"

	"github.com/braillekit/bzp/cell"
	"github.com/braillekit/bzp/errs"
)

// numberSign is the dots-3456 cell introducing every A-F sequence.
const numberSign cell.Symbol = 0x3C

// nibbleCells maps each hex nibble to its fixed cell sequence.
var nibbleCells = [16][]cell.Symbol{
	0x0: {0x1A},             // j
	0x1: {0x01},             // a
	0x2: {0x03},             // b
	0x3: {0x09},             // c
	0x4: {0x19},             // d
	0x5: {0x11},             // e
	0x6: {0x0B},             // f
	0x7: {0x1B},             // g
	0x8: {0x13},             // h
	0x9: {0x0A},             // i
	0xA: {numberSign, 0x01}, // #a
	0xB: {numberSign, 0x03}, // #b
	0xC: {numberSign, 0x09}, // #c
	0xD: {numberSign, 0x19}, // #d
	0xE: {numberSign, 0x11}, // #e
	0xF: {numberSign, 0x0B}, // #f
}

// singleNibbles is the inverse of the one-cell rows of nibbleCells.
var singleNibbles = func() map[cell.Symbol]byte {
	inv := make(map[cell.Symbol]byte, 10)
	for n := 0; n <= 9; n++ {
		inv[nibbleCells[n][0]] = byte(n)
	}

	return inv
}()

// prefixedNibbles is the inverse of the second cell of the number-sign
// rows of nibbleCells.
var prefixedNibbles = func() map[cell.Symbol]byte {
	inv := make(map[cell.Symbol]byte, 6)
	for n := 0xA; n <= 0xF; n++ {
		inv[nibbleCells[n][1]] = byte(n)
	}

	return inv
}()

// Encode renders a hex digest as braille cells.
//
// Hex digits are case-insensitive. Characters that are not hex digits pass
// through unchanged; this mirrors the source behavior for digests carrying
// separators (e.g. "a1:b2"). The output is deterministic: equal inputs
// produce byte-identical output.
func Encode(hexDigest string) string {
	var sb strings.Builder
	sb.Grow(len(hexDigest) * 3)

	for _, r := range hexDigest {
		n, ok := nibbleValue(r)
		if !ok {
			sb.WriteRune(r)
			continue
		}

		for _, s := range nibbleCells[n] {
			sb.WriteRune(s.Rune())
		}
	}

	return sb.String()
}

// Decode is the exact inverse of Encode, restoring the lower-case hex
// digest.
//
// Non-braille runes pass through unchanged, mirroring Encode's handling of
// separators. A braille cell outside the digest table, or a number sign
// not followed by a valid a-f cell, yields errs.ErrUnknownSequence; the
// caller should surface this as an unparseable digest.
func Decode(cells string) (string, error) {
	runes := []rune(cells)

	var sb strings.Builder
	sb.Grow(len(runes))

	for i := 0; i < len(runes); i++ {
		s, ok := cell.FromRune(runes[i])
		if !ok {
			sb.WriteRune(runes[i])
			continue
		}

		if s == numberSign {
			if i+1 >= len(runes) {
				return "", fmt.Errorf("dangling number sign: %w", errs.ErrUnknownSequence)
			}

			next, ok := cell.FromRune(runes[i+1])
			if !ok {
				return "", fmt.Errorf("number sign followed by %q: %w", runes[i+1], errs.ErrUnknownSequence)
			}
			n, ok := prefixedNibbles[next]
			if !ok {
				return "", fmt.Errorf("number sign followed by cell %s: %w", next, errs.ErrUnknownSequence)
			}

			sb.WriteByte(hexDigit(n))
			i++

			continue
		}

		n, ok := singleNibbles[s]
		if !ok {
			return "", fmt.Errorf("cell %s: %w", s, errs.ErrUnknownSequence)
		}
		sb.WriteByte(hexDigit(n))
	}

	return sb.String(), nil
}

func nibbleValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}

	return 'a' + (n - 10)
}
