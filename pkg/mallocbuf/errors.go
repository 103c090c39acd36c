package mallocbuf

import "errors"

var (
	// ErrNullPointer indicates a constructor received a null address for
	// memory it would have to dereference or free. No ownership is taken and
	// nothing is freed.
	ErrNullPointer = errors.New("mallocbuf: null pointer")

	// ErrInvalidEncoding indicates the bytes before a C string's terminator
	// are not valid UTF-8. No ownership is taken and nothing is freed; the
	// caller keeps responsibility for the raw memory.
	ErrInvalidEncoding = errors.New("mallocbuf: invalid UTF-8")

	// ErrInvalidLength indicates a negative length was passed to a buffer
	// constructor.
	ErrInvalidLength = errors.New("mallocbuf: negative length")

	// ErrNilDeallocator indicates a WithDeallocator constructor received a
	// nil deallocator.
	ErrNilDeallocator = errors.New("mallocbuf: deallocator must not be nil")
)
