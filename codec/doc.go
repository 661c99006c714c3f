// Package codec orchestrates bzp's compression pipeline: dictionary-driven
// substitution of text fragments with braille cells, 6-bit packing of the
// resulting cell stream, and the self-describing BZP container format.
//
// The pipeline has two symmetric halves:
//
//	text --Compress--> intermediate --ToBinary--> packed bytes --Encode--> container
//	container --Decode--> packed bytes --FromBinary--> intermediate --Decompress--> text
//
// Compression lower-cases its input before matching, so the round trip
// restores the lower-cased original rather than the exact original. This
// is a documented lossy property of the format, not a defect: the braille
// literal table has no capitalization and the source behavior is
// preserved.
//
// Every pipeline operates over an injected read-only dictionary; there is
// no package-level mutable state, and a pipeline is safe for concurrent
// use.
package codec
