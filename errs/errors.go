// Package errs defines the sentinel errors shared across bzp packages.
//
// Call sites wrap these with fmt.Errorf("...: %w", err) to add context;
// callers match them with errors.Is to distinguish malformed input from
// configuration mistakes.
package errs

import "errors"

// Dictionary construction errors. These are fatal to pipeline
// initialization and must never be swallowed.
var (
	ErrEmptyPattern         = errors.New("empty contraction pattern")
	ErrEmptyReplacement     = errors.New("empty contraction replacement")
	ErrDuplicatePattern     = errors.New("duplicate contraction pattern")
	ErrAmbiguousReplacement = errors.New("ambiguous contraction replacement")
)

// Cell and packing errors.
var (
	ErrInvalidCell        = errors.New("cell value outside 6-bit alphabet")
	ErrInvalidDots        = errors.New("invalid braille dot notation")
	ErrInvalidSymbolCount = errors.New("invalid symbol count")
	ErrTruncatedBuffer    = errors.New("packed buffer too short for symbol count")
	ErrUnsupportedRune    = errors.New("rune has no braille cell")
)

// Container decoding errors. All are recoverable: the caller should treat
// the input as corrupt and reject it.
var (
	ErrShortContainer      = errors.New("container shorter than header")
	ErrBadMagic            = errors.New("invalid container magic")
	ErrUnsupportedVersion  = errors.New("unsupported container version")
	ErrChecksumMismatch    = errors.New("container payload checksum mismatch")
	ErrSymbolCountMismatch = errors.New("payload size does not match symbol count")
)

// Digest decoding errors.
var (
	ErrUnknownSequence = errors.New("unknown digest cell sequence")
)
