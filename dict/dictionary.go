// Package dict implements the contraction dictionary driving bzp's text
// compression.
//
// A dictionary is an ordered collection of entries mapping a text fragment
// (the pattern) to one or more braille cells (the replacement). Matching is
// longest-first so a short pattern can never shadow a longer one sharing a
// prefix, and substring-based: a pattern may match inside a larger word.
//
// Dictionaries are built once and read-only thereafter. Construction is
// fail-fast: any violation of the uniqueness invariants that would make
// decompression ambiguous is rejected with a typed error instead of being
// silently overwritten. A built dictionary is safe to share across
// concurrent callers.
package dict

import (
	"fmt"
	"sort"
	"strings"

	"github.com/braillekit/bzp/cell"
	"github.com/braillekit/bzp/errs"
)

// Entry is one contraction: a non-empty lowercase text fragment and the
// cell sequence that replaces it.
type Entry struct {
	// Pattern is the text fragment to replace. Stored lowercase; matching
	// is case-insensitive because input text is folded before matching.
	Pattern string

	// Cells is the replacement sequence, one or more braille cells.
	Cells []cell.Symbol

	patternRunes []rune
	replacement  string
}

// Replacement returns the replacement rendered as braille codepoints.
func (e *Entry) Replacement() string {
	return e.replacement
}

// PatternLen returns the pattern length in runes.
func (e *Entry) PatternLen() int {
	return len(e.patternRunes)
}

// ReplacementLen returns the replacement length in cells.
func (e *Entry) ReplacementLen() int {
	return len(e.Cells)
}

// Dictionary holds the substitution table and its exact inverse.
type Dictionary struct {
	entries []Entry

	// byFirst indexes entries by the first rune of their pattern, each
	// bucket ordered by descending pattern length. Patterns are short
	// lowercase fragments, so one-rune dispatch removes almost all
	// candidates per position.
	byFirst map[rune][]*Entry

	// inverse maps a replacement (rendered as braille codepoints) back to
	// its entry. Injective by construction.
	inverse map[string]*Entry

	maxReplacementLen int
}

// New builds a dictionary from the given entries, validating the invariants
// that make compression reversible:
//
//   - patterns are non-empty and unique after case folding
//     (errs.ErrDuplicatePattern)
//   - replacements are non-empty sequences of valid cells
//   - no two entries share a replacement sequence, no replacement is a
//     prefix of another, and no replacement starts with a literal-table
//     cell (errs.ErrAmbiguousReplacement)
//
// The prefix-freeness rules are what make the greedy left-to-right inverse
// scan of decompression unambiguous: any cell stream produced by the
// compressor parses back into exactly one pattern/literal sequence.
//
// The input slice is copied; the caller may reuse it. The returned
// dictionary is immutable and safe for concurrent use.
func New(entries []Entry) (*Dictionary, error) {
	d := &Dictionary{
		entries: make([]Entry, 0, len(entries)),
		byFirst: make(map[rune][]*Entry, len(entries)),
		inverse: make(map[string]*Entry, len(entries)),
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		pattern := strings.ToLower(e.Pattern)
		if pattern == "" {
			return nil, errs.ErrEmptyPattern
		}
		if len(e.Cells) == 0 {
			return nil, fmt.Errorf("pattern %q: %w", pattern, errs.ErrEmptyReplacement)
		}
		if _, dup := seen[pattern]; dup {
			return nil, fmt.Errorf("pattern %q: %w", pattern, errs.ErrDuplicatePattern)
		}
		seen[pattern] = struct{}{}

		cells := make([]cell.Symbol, len(e.Cells))
		var sb strings.Builder
		for i, s := range e.Cells {
			if !s.Valid() {
				return nil, fmt.Errorf("pattern %q: cell %d value 0x%02X: %w",
					pattern, i, uint8(s), errs.ErrInvalidCell)
			}
			cells[i] = s
			sb.WriteRune(s.Rune())
		}

		d.entries = append(d.entries, Entry{
			Pattern:      pattern,
			Cells:        cells,
			patternRunes: []rune(pattern),
			replacement:  sb.String(),
		})
	}

	if err := d.validateReplacements(); err != nil {
		return nil, err
	}

	for i := range d.entries {
		e := &d.entries[i]
		d.inverse[e.replacement] = e
		if len(e.Cells) > d.maxReplacementLen {
			d.maxReplacementLen = len(e.Cells)
		}

		first := e.patternRunes[0]
		d.byFirst[first] = append(d.byFirst[first], e)
	}

	for _, bucket := range d.byFirst {
		sort.SliceStable(bucket, func(i, j int) bool {
			return len(bucket[i].patternRunes) > len(bucket[j].patternRunes)
		})
	}

	return d, nil
}

// validateReplacements enforces injectivity and prefix-freeness of the
// replacement set, including against the literal cell table.
func (d *Dictionary) validateReplacements() error {
	for i := range d.entries {
		a := &d.entries[i]

		if _, literal := cell.LiteralRune(a.Cells[0]); literal {
			return fmt.Errorf("pattern %q: replacement starts with literal cell %s: %w",
				a.Pattern, a.Cells[0], errs.ErrAmbiguousReplacement)
		}

		for j := i + 1; j < len(d.entries); j++ {
			b := &d.entries[j]
			if strings.HasPrefix(a.replacement, b.replacement) ||
				strings.HasPrefix(b.replacement, a.replacement) {
				return fmt.Errorf("patterns %q and %q: %w",
					a.Pattern, b.Pattern, errs.ErrAmbiguousReplacement)
			}
		}
	}

	return nil
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the dictionary's entries.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)

	return out
}

// LongestMatchAt returns the entry whose pattern matches text at position i,
// preferring the longest pattern, or nil when no entry matches.
//
// The text must already be lower-cased; patterns are stored folded and no
// folding happens here. Matching is substring-based: word boundaries are
// not consulted, so a pattern may match inside a larger word. Callers that
// need stricter matching can swap this method without touching the packer
// or pipeline.
func (d *Dictionary) LongestMatchAt(text []rune, i int) *Entry {
	bucket := d.byFirst[text[i]]
	remaining := len(text) - i

	for _, e := range bucket {
		n := len(e.patternRunes)
		if n > remaining {
			continue
		}

		match := true
		for k := 1; k < n; k++ {
			if text[i+k] != e.patternRunes[k] {
				match = false
				break
			}
		}
		if match {
			return e
		}
	}

	return nil
}

// InverseAt returns the entry whose replacement sequence starts at position
// i of the intermediate text, preferring the longest replacement, or nil
// when no replacement matches.
func (d *Dictionary) InverseAt(intermediate []rune, i int) *Entry {
	maxLen := d.maxReplacementLen
	if remaining := len(intermediate) - i; maxLen > remaining {
		maxLen = remaining
	}

	for n := maxLen; n >= 1; n-- {
		if e, ok := d.inverse[string(intermediate[i:i+n])]; ok {
			return e
		}
	}

	return nil
}
