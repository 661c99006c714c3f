package compress

import (
	"fmt"

	"github.com/braillekit/bzp/format"
)

// Compressor compresses a complete bzp payload.
//
// The input is a packed cell buffer: a dense 6-bit-per-symbol bitstream.
// Such payloads are small (a page of contracted text packs to under 2KB)
// and already denser than plain text, so codecs here are tuned for low
// overhead rather than deep search.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a compressed bzp payload.
//
// The input must have been produced by the matching Compressor. The
// decompressor validates the data format and returns an error if the data
// is corrupted or uses an incompatible format; it never panics on
// malformed input.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// All built-in codecs are stateless or internally pooled, so the returned
// value is safe for concurrent use.
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	codec, ok := builtinCodecs[compressionType]
	if !ok {
		return nil, fmt.Errorf("invalid payload compression: %s", compressionType)
	}

	return codec, nil
}
