// Package unsafewx manages memory that is either writeable or executable,
// the host-side half of running emitted PowerPC code in place.
//
// W^X memory as implemented here is writeable exactly until it becomes
// executable. Once execute permission is added, write permission is removed,
// and there is no way to transition back. The emitter itself never touches
// page permissions or the instruction cache; copy its output into a Block,
// call Exec, and jump in.
//
// The "unsafe" part of unsafewx is there because using this package is
// inherently unsafe: it lets you run arbitrary code with no safety checks,
// and calling into a Block only makes sense on a PowerPC host whose byte
// order matches the one the code was emitted with. Be mindful.
package unsafewx

import (
	"errors"
	"io"
	"log"
	"reflect"
	"unsafe"
)

// A Block is a page-aligned region of writeable or executable memory.
type Block struct {
	mem []byte // the mapped region; nil after Close
	n   int    // bytes written
	x   bool   // executable flag
}

// MustAlloc is like Alloc but panics if the block could not be allocated.
func MustAlloc(n int) *Block {
	b, err := Alloc(n)
	if err != nil {
		panic(err)
	}
	return b
}

// IsValid reports whether the block refers to committed memory.
func (b *Block) IsValid() bool {
	return b != nil && b.mem != nil
}

// Available returns the number of unwritten bytes in the block. Panics if
// the block is not valid.
func (b *Block) Available() int {
	if !b.IsValid() {
		panic("wx: use of invalid block")
	}
	return len(b.mem) - b.n
}

// Len returns the number of bytes written to the block. Panics if the block
// is not valid.
func (b *Block) Len() int {
	if !b.IsValid() {
		panic("wx: use of invalid block")
	}
	return b.n
}

// Cursor returns the offset the next write lands at, useful for tracking
// entry points when assembling several functions into one block. Panics if
// the block is not valid.
func (b *Block) Cursor() int {
	if !b.IsValid() {
		panic("wx: use of invalid block")
	}
	return b.n
}

// Addr returns the address of the block's first byte: the address emitted
// code will execute at, and hence the base any absolute branch targets were
// assembled against. Panics if the block is not valid.
func (b *Block) Addr() uintptr {
	if !b.IsValid() {
		panic("wx: use of invalid block")
	}
	return uintptr(unsafe.Pointer(&b.mem[0]))
}

// Write appends bytes to the block. If p exceeds the remaining capacity,
// Write copies the prefix that fits and returns ErrCapacity. Panics if the
// block is not valid or has been marked executable.
func (b *Block) Write(p []byte) (n int, err error) {
	if b.x {
		panic("wx: attempted to write to executable memory")
	}
	n = len(p)
	if c := b.Available(); n > c {
		n = c
		err = ErrCapacity
	}
	copy(b.mem[b.n:], p[:n])
	b.n += n
	return n, err
}

// WriteTo copies the written contents of the block out to w.
func (b *Block) WriteTo(w io.Writer) (int64, error) {
	if !b.IsValid() {
		panic("wx: use of invalid block")
	}
	n, err := w.Write(b.mem[:b.n])
	return int64(n), err
}

// Func returns a function value that executes the code at the given byte
// offset within the block, with the type given by typ. The caller is
// responsible for the code being ABI-compatible with that type and for the
// host actually being a PowerPC that can run it. Panics if the block is
// invalid, still writeable, or addr is out of bounds.
func (b *Block) Func(addr uintptr, typ reflect.Type) interface{} {
	if !b.IsValid() {
		panic("wx: attempted to create function without committed memory")
	}
	if !b.x {
		panic("wx: attempted to create function in writeable memory")
	}
	if addr >= uintptr(b.n) {
		panic("wx: function pointer out of bounds")
	}
	// Build a zero function value of the right type, then aim it at the
	// code. In gc, a function value is a pointer to a pointer to code; see
	// https://golang.org/s/go11func.
	// KEEP IN SYNC WITH reflect.Value:
	// https://github.com/golang/go/blob/master/src/reflect/value.go
	type rvalue struct {
		rtype unsafe.Pointer
		ptr   unsafe.Pointer
		flag  uintptr
	}
	z := reflect.Zero(typ)
	x := b.Addr() + addr
	(*rvalue)(unsafe.Pointer(&z)).ptr = unsafe.Pointer(&x)
	return z.Interface()
}

// ErrCapacity is the error returned when a write does not fit the block.
var ErrCapacity = errors.New("wx: write exceeded block availability")

// ErrInvalidClose is the error returned when closing a block that is nil or
// already closed.
var ErrInvalidClose = errors.New("wx: close on invalid block")

// Verbose, if non-nil, is used to log every memory operation.
var Verbose *log.Logger

func logv(args ...interface{}) {
	if Verbose != nil {
		Verbose.Println(args...)
	}
}
