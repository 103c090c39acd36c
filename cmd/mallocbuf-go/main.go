package main

import (
	"fmt"
	"log"

	"github.com/SSheldon/malloc-buf-go/pkg/mallocbuf"
	"github.com/SSheldon/malloc-buf-go/pkg/mallocbuf/mockalloc"
)

func main() {
	log.Printf("malloc-buf-go version: %s", mallocbuf.WrapperVersion())
	log.Printf("C heap bindings available: %v", mallocbuf.Available())

	// Exercise the ownership cycle on a mock heap so the binary works in
	// both cgo and pure-Go builds.
	heap := mockalloc.New()
	ptr := heap.Alloc([]byte{1, 2, 3, 4})

	buf, err := mallocbuf.NewBufferWithDeallocator(ptr, 4, heap)
	if err != nil {
		log.Fatalf("wrap buffer: %v", err)
	}

	fmt.Printf("wrapped %d bytes: %v\n", buf.Len(), buf.CloneBytes())
	buf.Free()
	fmt.Printf("free calls for address: %d\n", heap.FreeCount(ptr))

	if misuse := heap.Misuse(); len(misuse) > 0 {
		log.Fatalf("heap misuse: %v", misuse)
	}
	fmt.Println("ownership cycle completed cleanly")
}
