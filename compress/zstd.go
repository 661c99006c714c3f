package compress

// ZstdCompressor compresses payloads with Zstandard, trading speed for the
// best ratio of the supported codecs. Suited to archived lesson content
// where containers are written once and read rarely.
//
// Two implementations back this type, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - pure-Go builds fall back to klauspost/compress/zstd
//
// Both produce standard Zstd frames, so containers written by one build
// decode under the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
