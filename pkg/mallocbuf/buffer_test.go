package mallocbuf_test

import (
	"encoding/binary"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SSheldon/malloc-buf-go/pkg/mallocbuf"
	"github.com/SSheldon/malloc-buf-go/pkg/mallocbuf/mockalloc"
)

func TestNewBufferNullPointer(t *testing.T) {
	heap := mockalloc.New()

	buf, err := mallocbuf.NewBufferWithDeallocator(nil, 4, heap)
	require.ErrorIs(t, err, mallocbuf.ErrNullPointer)
	require.Nil(t, buf)

	// Rejection takes no ownership and must not free anything.
	assert.Equal(t, 0, heap.TotalFrees())
}

func TestNewBufferNegativeLength(t *testing.T) {
	heap := mockalloc.New()

	buf, err := mallocbuf.NewBufferWithDeallocator(nil, -1, heap)
	require.ErrorIs(t, err, mallocbuf.ErrInvalidLength)
	require.Nil(t, buf)
	assert.Equal(t, 0, heap.TotalFrees())
}

func TestNewBufferNilDeallocator(t *testing.T) {
	_, err := mallocbuf.NewBufferWithDeallocator(nil, 0, nil)
	require.ErrorIs(t, err, mallocbuf.ErrNilDeallocator)
}

func TestBufferViewRoundTrip(t *testing.T) {
	heap := mockalloc.New()
	data := []byte{1, 2, 3, 4}
	ptr := heap.Alloc(data)

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, len(data), heap)
	require.NoError(t, err)

	view := buf.Bytes()
	require.Len(t, view, 4)
	assert.Equal(t, data, view)
	assert.Equal(t, 4, buf.Len())

	buf.Free()
	assert.Equal(t, 1, heap.FreeCount(ptr))
	assert.Empty(t, heap.Misuse())
}

func TestBufferZeroLengthNilAddress(t *testing.T) {
	heap := mockalloc.New()

	buf, err := mallocbuf.NewBufferWithDeallocator(nil, 0, heap)
	require.NoError(t, err)
	assert.Nil(t, buf.Bytes())
	assert.Equal(t, 0, buf.Len())

	buf.Free()
	assert.Equal(t, 0, heap.TotalFrees())
}

func TestBufferZeroLengthSkipsFree(t *testing.T) {
	heap := mockalloc.New()
	// A non-nil sentinel address with zero length must never be freed;
	// the policy is length-zero-skip, not free-if-non-nil.
	ptr := heap.Alloc(nil)

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 0, heap)
	require.NoError(t, err)

	buf.Free()
	assert.Equal(t, 0, heap.FreeCount(ptr))
	assert.Equal(t, 1, heap.LiveCount())
}

func TestBufferFreeIdempotent(t *testing.T) {
	heap := mockalloc.New()
	ptr := heap.Alloc([]byte{42})

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 1, heap)
	require.NoError(t, err)

	buf.Free()
	buf.Free()
	buf.Free()

	assert.Equal(t, 1, heap.FreeCount(ptr))
	assert.Empty(t, heap.Misuse())
	assert.Nil(t, buf.Bytes())
	assert.Equal(t, 0, buf.Len())
}

func TestBufferCloneBytesIndependent(t *testing.T) {
	heap := mockalloc.New()
	ptr := heap.Alloc([]byte{9, 8, 7})

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 3, heap)
	require.NoError(t, err)
	defer buf.Free()

	clone := buf.CloneBytes()
	for i := range clone {
		clone[i] = 0xFF
	}

	assert.Equal(t, []byte{9, 8, 7}, buf.Bytes())
}

func TestBufferZeroize(t *testing.T) {
	heap := mockalloc.New()
	ptr := heap.Alloc([]byte{0xAA, 0xBB, 0xCC, 0xDD})

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 4, heap)
	require.NoError(t, err)

	buf.Zeroize()
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())

	buf.Free()
	assert.Equal(t, 1, heap.FreeCount(ptr))
}

func TestViewAs(t *testing.T) {
	heap := mockalloc.New()
	data := make([]byte, 8)
	binary.NativeEndian.PutUint32(data[0:4], 0xDEADBEEF)
	binary.NativeEndian.PutUint32(data[4:8], 0xCAFEBABE)
	ptr := heap.Alloc(data)

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, len(data), heap)
	require.NoError(t, err)
	defer buf.Free()

	words := mallocbuf.ViewAs[uint32](buf)
	require.Len(t, words, 2)
	assert.Equal(t, uint32(0xDEADBEEF), words[0])
	assert.Equal(t, uint32(0xCAFEBABE), words[1])

	// Length not divisible by the element size yields no view.
	odd, err := mallocbuf.NewBufferWithDeallocator(heap.Alloc(data[:6]), 6, heap)
	require.NoError(t, err)
	defer odd.Free()
	assert.Nil(t, mallocbuf.ViewAs[uint32](odd))
}

func TestBufferFinalizerFreesOnce(t *testing.T) {
	heap := mockalloc.New()
	ptr := heap.Alloc([]byte{1, 2, 3})

	func() {
		buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 3, heap)
		require.NoError(t, err)
		_ = buf.Len()
	}()

	// The wrapper is unreachable; the finalizer must release the memory
	// exactly once.
	deadline := time.Now().Add(5 * time.Second)
	for heap.FreeCount(ptr) == 0 && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}

	assert.Equal(t, 1, heap.FreeCount(ptr))
	assert.Empty(t, heap.Misuse())
}

func TestBufferEndToEnd(t *testing.T) {
	heap := mockalloc.New()
	ptr := heap.Alloc([]byte{10, 20, 30, 40})

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 4, heap)
	require.NoError(t, err)

	view := buf.Bytes()
	require.Len(t, view, 4)
	for i, want := range []byte{10, 20, 30, 40} {
		assert.Equal(t, want, view[i])
	}

	buf.Free()
	assert.Equal(t, 1, heap.FreeCount(ptr))
	assert.Equal(t, 1, heap.TotalFrees())
	assert.Empty(t, heap.Misuse())
}

func TestBufferDefaultDeallocatorIsCHeap(t *testing.T) {
	// NewBuffer with length 0 succeeds even without cgo: nothing will ever
	// be dereferenced or freed.
	buf, err := mallocbuf.NewBuffer(nil, 0)
	require.NoError(t, err)
	buf.Free()
}
