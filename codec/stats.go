package codec

// CompressionStats reports the outcome of one compression invocation. It
// is a derived, read-only record used for reporting only, never for
// control flow.
type CompressionStats struct {
	// OriginalSize is the UTF-8 byte length of the lower-cased input text.
	OriginalSize int

	// CompressedSize is the length of the compressed text in codepoints.
	CompressedSize int

	// BinarySize is the byte length of the 6-bit packed form,
	// ceil(CompressedSize*6/8). For text containing characters outside the
	// braille literal table this is an estimate: such text compresses at
	// the string level but cannot actually be packed.
	BinarySize int

	// Replacements is the number of dictionary substitutions performed.
	Replacements int
}

// CompressionRatio returns CompressedSize over OriginalSize at the text
// level. 1.0 means no dictionary entry matched; values below 1.0 indicate
// substitution savings. Returns 0 for empty input.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// BinaryRatio returns BinarySize over OriginalSize: the end-to-end density
// of the packed form against the raw text.
func (s CompressionStats) BinaryRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.BinarySize) / float64(s.OriginalSize)
}

// SavingsPercent returns the end-to-end space savings of the packed form
// as a percentage (0-100).
func (s CompressionStats) SavingsPercent() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1.0 - s.BinaryRatio()) * 100.0
}
