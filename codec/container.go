package codec

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/braillekit/bzp/compress"
	"github.com/braillekit/bzp/encoding"
	"github.com/braillekit/bzp/endian"
	"github.com/braillekit/bzp/errs"
	"github.com/braillekit/bzp/format"
)

// The BZP container wraps a packed cell payload with the bookkeeping the
// raw buffer lacks: a headerless .bzp stream cannot be decoded without
// externally tracked symbol count, and offers no way to detect corruption.
//
// Layout (all multi-byte fields little-endian):
//
//	offset 0  magic 0xB2 0x50            2 bytes
//	offset 2  version (0x01)             1 byte
//	offset 3  payload compression code   1 byte
//	offset 4  symbol count               4 bytes (uint32)
//	offset 8  xxHash64 of packed cells   8 bytes
//	offset 16 payload                    n bytes
//
// The checksum covers the packed cells before payload compression, so it
// also verifies the decompression step on read.
const (
	containerMagic0  = 0xB2
	containerMagic1  = 0x50
	containerVersion = 0x01

	// ContainerHeaderSize is the fixed header size in bytes.
	ContainerHeaderSize = 16
)

// Encode compresses text into a self-describing BZP container using the
// pipeline's payload compression setting.
//
// Returns errs.ErrUnsupportedRune if the text contains characters with no
// braille cell; see ToBinary.
func (p *Pipeline) Encode(text string) ([]byte, error) {
	packed, symbolCount, err := p.ToBinary(text)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(p.compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(packed)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	engine := endian.GetLittleEndianEngine()

	out := make([]byte, 0, ContainerHeaderSize+len(payload))
	out = append(out, containerMagic0, containerMagic1, containerVersion, byte(p.compression))
	out = engine.AppendUint32(out, uint32(symbolCount)) //nolint:gosec
	out = engine.AppendUint64(out, xxhash.Sum64(packed))
	out = append(out, payload...)

	return out, nil
}

// Decode validates a BZP container and restores the original (lower-cased)
// text.
//
// All failure modes are recoverable and mean the input should be rejected
// as corrupt or foreign: errs.ErrShortContainer, errs.ErrBadMagic,
// errs.ErrUnsupportedVersion, errs.ErrSymbolCountMismatch,
// errs.ErrChecksumMismatch, plus payload decompression errors.
func (p *Pipeline) Decode(data []byte) (string, error) {
	if len(data) < ContainerHeaderSize {
		return "", fmt.Errorf("%d bytes: %w", len(data), errs.ErrShortContainer)
	}
	if data[0] != containerMagic0 || data[1] != containerMagic1 {
		return "", fmt.Errorf("0x%02X%02X: %w", data[0], data[1], errs.ErrBadMagic)
	}
	if data[2] != containerVersion {
		return "", fmt.Errorf("version %d: %w", data[2], errs.ErrUnsupportedVersion)
	}

	compression := format.CompressionType(data[3])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return "", err
	}

	engine := endian.GetLittleEndianEngine()
	symbolCount := int(engine.Uint32(data[4:8]))
	checksum := engine.Uint64(data[8:16])

	packed, err := codec.Decompress(data[ContainerHeaderSize:])
	if err != nil {
		return "", fmt.Errorf("decompress payload: %w", err)
	}

	if len(packed) != encoding.PackedSize(symbolCount) {
		return "", fmt.Errorf("%d payload bytes for %d symbols: %w",
			len(packed), symbolCount, errs.ErrSymbolCountMismatch)
	}
	if xxhash.Sum64(packed) != checksum {
		return "", errs.ErrChecksumMismatch
	}

	return p.FromBinary(packed, symbolCount)
}
