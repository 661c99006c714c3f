package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.MustWrite([]byte{1, 2, 3})
	require.NoError(t, bb.WriteByte(4))
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	require.Equal(t, 4, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	initialCap := bb.Cap()

	bb.Grow(initialCap + 1)
	require.GreaterOrEqual(t, bb.Cap(), initialCap+1)

	// Growing within capacity is a no-op.
	capAfter := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capAfter, bb.Cap())
}

func TestByteBuffer_GrowPreservesContent(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{9, 8, 7})

	bb.Grow(PackBufferDefaultSize * 8)
	require.Equal(t, []byte{9, 8, 7}, bb.Bytes())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // exceeds threshold, dropped

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 1024)
}

func TestByteBufferPool_NilPut(t *testing.T) {
	p := NewByteBufferPool(16, 1024)
	require.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestPackBufferPool(t *testing.T) {
	bb := GetPackBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutPackBuffer(bb)
}
