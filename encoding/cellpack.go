// Package encoding implements bit-level packing of braille cell sequences.
//
// Each cell carries 6 bits, so packing is not byte-aligned: cells are
// written most-significant-bit-first and split across byte boundaries
// whenever fewer than 6 bits remain in the current byte. A sequence of n
// cells packs into exactly ceil(n*6/8) bytes, with up to 5 trailing zero
// bits of padding in the final byte.
//
// A packed buffer alone under-determines its content: trailing padding is
// indistinguishable from trailing blank cells. Unpack therefore requires
// the symbol count as an explicit parameter; persisted buffers should
// carry it in a header (the codec package's container format does).
package encoding

import (
	"fmt"

	"github.com/braillekit/bzp/cell"
	"github.com/braillekit/bzp/errs"
	"github.com/braillekit/bzp/internal/pool"
)

const cellBits = 6

// PackedSize returns the number of bytes needed to pack n cells:
// ceil(n*6/8).
func PackedSize(n int) int {
	return (n*cellBits + 7) / 8
}

// CellWriter packs cells incrementally into a pooled byte buffer.
//
// Bits accumulate in a 64-bit staging word and flush to the byte buffer a
// whole byte at a time; a final partial byte is materialized only by
// Bytes. The zero value is not usable; create writers with NewCellWriter
// and release them with Finish.
type CellWriter struct {
	bitBuf   uint64 // staging word; low bitCount bits are pending
	bitCount int    // number of pending bits, always < 8 between writes
	count    int    // cells written
	buf      *pool.ByteBuffer
}

// NewCellWriter creates a new cell writer backed by a pooled buffer.
func NewCellWriter() *CellWriter {
	return &CellWriter{
		buf: pool.GetPackBuffer(),
	}
}

// Write packs a single cell.
//
// Panics if s is outside the 6-bit alphabet: the substitution compressor
// is the only producer of cells, so an out-of-range value is an upstream
// bug, not a recoverable input condition.
func (w *CellWriter) Write(s cell.Symbol) {
	if w.buf == nil {
		panic("cell writer already finished - cannot write after Finish()")
	}
	if !s.Valid() {
		panic(fmt.Sprintf("cell value 0x%02X outside 6-bit alphabet", uint8(s)))
	}

	w.bitBuf = (w.bitBuf << cellBits) | uint64(s)
	w.bitCount += cellBits
	w.count++

	for w.bitCount >= 8 {
		w.bitCount -= 8
		_ = w.buf.WriteByte(byte(w.bitBuf >> w.bitCount))
	}
}

// WriteSlice packs a slice of cells, pre-growing the buffer once for the
// whole slice.
func (w *CellWriter) WriteSlice(symbols []cell.Symbol) {
	if len(symbols) == 0 {
		return
	}

	w.buf.Grow(PackedSize(len(symbols)))
	for _, s := range symbols {
		w.Write(s)
	}
}

// Len returns the number of cells written so far.
func (w *CellWriter) Len() int {
	return w.count
}

// Size returns the packed size in bytes, including the pending partial
// byte.
func (w *CellWriter) Size() int {
	return PackedSize(w.count)
}

// Bytes returns the packed buffer.
//
// The result is a fresh copy: the pending partial byte (if any) is
// appended MSB-aligned with zero padding, and the writer remains usable
// for further cells afterwards.
func (w *CellWriter) Bytes() []byte {
	out := make([]byte, 0, w.Size())
	out = append(out, w.buf.Bytes()...)
	if w.bitCount > 0 {
		out = append(out, byte(w.bitBuf<<(8-w.bitCount)))
	}

	return out
}

// Finish releases the internal buffer back to the pool. The writer must
// not be used afterwards.
func (w *CellWriter) Finish() {
	if w.buf == nil {
		return
	}

	pool.PutPackBuffer(w.buf)
	w.buf = nil
}

// Pack packs a cell sequence into a minimal byte buffer.
//
// The buffer length is exactly PackedSize(len(symbols)). Panics if any
// value lies outside [0, 63]; see CellWriter.Write.
func Pack(symbols []cell.Symbol) []byte {
	w := NewCellWriter()
	defer w.Finish()

	w.WriteSlice(symbols)

	return w.Bytes()
}

// Unpack reconstructs symbolCount cells from a packed buffer.
//
// The count must be supplied externally: the buffer alone cannot
// distinguish trailing padding bits from trailing blank cells. Unpack
// consumes exactly symbolCount*6 bits and ignores any padding after them.
//
// Returns errs.ErrInvalidSymbolCount for a negative count and
// errs.ErrTruncatedBuffer when the buffer holds fewer than symbolCount*6
// bits; the latter means the input is corrupt and should be rejected.
func Unpack(buf []byte, symbolCount int) ([]cell.Symbol, error) {
	if symbolCount < 0 {
		return nil, fmt.Errorf("symbol count %d: %w", symbolCount, errs.ErrInvalidSymbolCount)
	}
	if need := symbolCount * cellBits; need > len(buf)*8 {
		return nil, fmt.Errorf("%d symbols need %d bits, buffer has %d: %w",
			symbolCount, need, len(buf)*8, errs.ErrTruncatedBuffer)
	}

	out := make([]cell.Symbol, symbolCount)
	bit := 0
	for i := range out {
		byteIdx := bit >> 3
		off := bit & 7

		var v uint
		if off <= 2 {
			// Whole cell inside one byte.
			v = uint(buf[byteIdx]>>(2-off)) & 0x3F
		} else {
			// Cell straddles two bytes.
			hi := uint(buf[byteIdx]) << (off - 2)
			lo := uint(buf[byteIdx+1]) >> (10 - off)
			v = (hi | lo) & 0x3F
		}

		out[i] = cell.Symbol(v)
		bit += cellBits
	}

	return out, nil
}
